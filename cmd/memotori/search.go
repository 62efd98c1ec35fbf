package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aretw0/memotori"
	"github.com/aretw0/memotori/pkg/capture"
)

var (
	searchTags  []string
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search the library",
	Long: `Search notes by text and tags. Without a query every note is listed, most
recently updated first. Every --tag must be present on a note for it to match.`,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		defer svc.Close()

		hits, err := svc.SearchNotes(context.Background(), strings.Join(args, " "), searchTags, searchLimit)
		if err != nil {
			fatal("Search failed", err)
		}

		if searchJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(hits); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		if len(hits) == 0 {
			fmt.Println("No notes found.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, h := range hits {
			fmt.Fprintf(w, "%s\t%s\n", h.ID, capture.NoteTitle(h.Preview))
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringArrayVarP(&searchTags, "tag", "t", nil, "Require a tag (repeatable)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", memotori.DefaultSearchLimit, "Maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output results as JSON")
}
