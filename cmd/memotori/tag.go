package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/memotori/pkg/capture"
)

var tagCmd = &cobra.Command{
	Use:   "tag <id> [tags...]",
	Short: "Replace the tags of a note",
	Long: `Replace the whole tag set of a note with the given comma separated tags.
Passing no tags clears them.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		tags := capture.ParseTags(strings.Join(args[1:], ","))

		svc := openService()
		defer svc.Close()
		ctx := context.Background()

		if _, found, err := svc.GetNoteContent(ctx, id); err != nil {
			fatal("Failed to look up note", err)
		} else if !found {
			fmt.Fprintf(os.Stderr, "No note with id %s\n", id)
			os.Exit(1)
		}

		if err := svc.ReplaceNoteTags(ctx, id, tags); err != nil {
			fatal("Failed to update tags", err)
		}

		current, err := svc.GetNoteTags(ctx, id)
		if err != nil {
			fatal("Failed to read tags", err)
		}
		fmt.Printf("%s: %s\n", id, strings.Join(current, ", "))
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)
}
