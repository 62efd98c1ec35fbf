package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/memotori"
	"github.com/aretw0/memotori/pkg/capture"
)

var (
	suggestLimit int
	suggestApply bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <tag entry>",
	Short: "Complete the tag being typed",
	Long: `Print known tags that complete the last comma separated fragment of the
entry. With --apply the entry is printed completed with the first suggestion.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		defer svc.Close()

		suggestions, err := capture.Suggest(context.Background(), svc, args[0], suggestLimit)
		if err != nil {
			fatal("Failed to list tags", err)
		}

		if suggestApply {
			if len(suggestions) == 0 {
				fmt.Println(args[0])
				return
			}
			fmt.Println(capture.ApplyTagCompletion(args[0], suggestions[0]))
			return
		}
		for _, s := range suggestions {
			fmt.Println(s)
		}
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", memotori.DefaultSuggestLimit, "Maximum number of suggestions")
	suggestCmd.Flags().BoolVar(&suggestApply, "apply", false, "Print the entry completed with the first suggestion")
}
