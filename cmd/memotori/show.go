package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a note",
	Long:  `Print a note's content. With --json the full record (tags, timestamps) is printed.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		defer svc.Close()

		note, found, err := svc.GetNote(context.Background(), args[0])
		if err != nil {
			fatal("Failed to read note", err)
		}
		if !found {
			fmt.Fprintf(os.Stderr, "No note with id %s\n", args[0])
			os.Exit(1)
		}

		if showJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(note); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		if len(note.Tags) > 0 {
			fmt.Printf("tags: %s\n\n", strings.Join(note.Tags, ", "))
		}
		fmt.Println(note.Content)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output the note as JSON")
}
