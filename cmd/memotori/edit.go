package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id> [content...]",
	Short: "Replace the content of a note",
	Long:  `Replace the content of a note. Content comes from the remaining arguments or stdin.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		content, err := readContent(os.Stdin, args[1:])
		if err != nil {
			fatal("Failed to read content", err)
		}

		svc := openService()
		defer svc.Close()
		ctx := context.Background()

		if _, found, err := svc.GetNoteContent(ctx, id); err != nil {
			fatal("Failed to look up note", err)
		} else if !found {
			fmt.Fprintf(os.Stderr, "No note with id %s\n", id)
			os.Exit(1)
		}

		if err := svc.UpdateNoteContent(ctx, id, content); err != nil {
			fatal("Failed to update note", err)
		}
		fmt.Printf("Updated %s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
