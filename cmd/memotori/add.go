package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/memotori/pkg/capture"
)

var addTags string

var errBlankNote = errors.New("note is empty")

var addCmd = &cobra.Command{
	Use:   "add [content...]",
	Short: "Capture a new note",
	Long: `Capture a new note. Content is taken from the arguments, or from stdin
when no argument (or "-") is given. Tags are comma separated.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && !stdinIsPipe() {
			cmd.Usage()
			os.Exit(1)
		}
		content, err := readContent(os.Stdin, args)
		if err != nil {
			fatal("Failed to read content", err)
		}
		if strings.TrimSpace(content) == "" {
			fatal("Nothing to save", errBlankNote)
		}

		svc := openService()
		defer svc.Close()

		id, err := svc.InsertNote(context.Background(), content, capture.ParseTags(addTags))
		if err != nil {
			fatal("Failed to save note", err)
		}

		fmt.Printf("Saved %s (%s)\n", id, capture.NoteTitle(content))
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTags, "tags", "t", "", "Comma separated tags")
}
