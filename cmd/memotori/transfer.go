package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aretw0/memotori/pkg/adapters/lifecycle"
	"github.com/aretw0/memotori/pkg/core"
	"github.com/aretw0/memotori/pkg/transfer"
)

var (
	importPattern  string
	importProgress bool
)

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Write every note to a directory of Markdown files",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		defer svc.Close()

		n, err := transfer.Export(context.Background(), svc, args[0])
		if err != nil {
			fatal("Export failed", err)
		}
		fmt.Printf("Exported %d notes to %s\n", n, args[0])
	},
}

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Create notes from Markdown files",
	Long: `Create a new note for every file under dir matching --pattern.
Frontmatter tags are applied; files with a blank body are skipped.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		svc := openService()
		defer svc.Close()

		if importProgress {
			if err := reportProgress(ctx, svc); err != nil {
				fatal("Failed to watch progress", err)
			}
		}

		res, err := transfer.Import(ctx, svc, args[0], importPattern)
		if err != nil {
			fatal("Import failed", err)
		}

		failed := make([]string, 0, len(res.Failed))
		for name := range res.Failed {
			failed = append(failed, name)
		}
		sort.Strings(failed)
		for _, name := range failed {
			slog.Warn("file not imported", "file", name, "reason", res.Failed[name])
		}

		fmt.Printf("Imported %d notes, skipped %d blank files, %d failed\n",
			len(res.Imported), len(res.Skipped), len(res.Failed))
	},
}

// reportProgress prints a line for every note created while ctx is alive.
func reportProgress(ctx context.Context, svc *core.Service) error {
	events, err := svc.Watch(ctx)
	if err != nil {
		return err
	}
	src := lifecycle.NewSource(events, core.EventCreate)
	if err := src.Start(ctx); err != nil {
		return err
	}
	go func() {
		for e := range src.Events() {
			fmt.Fprintf(os.Stderr, "  %s\n", e)
		}
	}()
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVarP(&importPattern, "pattern", "p", transfer.DefaultPattern, "Glob of files to import (doublestar syntax)")
	importCmd.Flags().BoolVar(&importProgress, "progress", false, "Print each note as it is created")
}
