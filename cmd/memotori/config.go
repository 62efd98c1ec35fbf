package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/aretw0/memotori/internal/settings"
	"github.com/aretw0/memotori/pkg/capture"
)

var configFollow bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the settings file",
	Long: `Print the settings file location and its effective values, creating it with
defaults when missing. With --follow, changes are printed until interrupted.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := settingsPath()
		s, err := settings.Load(path)
		if err != nil {
			fatal("Failed to load settings", err)
		}

		fmt.Printf("# %s\n", path)
		printSettings(s)

		if !configFollow {
			return
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		w := settings.NewWatcher(settings.WatcherConfig{
			Path:   path,
			Logger: slog.Default(),
			OnChange: func(s settings.Settings) {
				fmt.Printf("\n# reloaded at %s\n", time.Now().Format(time.TimeOnly))
				printSettings(s)
			},
			OnError: func(err error) {
				slog.Warn("settings reload failed", "error", err)
			},
		})
		if err := w.Start(ctx); err != nil {
			fatal("Failed to watch settings", err)
		}
		<-ctx.Done()
	},
}

var hintCmd = &cobra.Command{
	Use:   "hint",
	Short: "Print a capture prompt from the settings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := settings.Load(settingsPath())
		if err != nil {
			fatal("Failed to load settings", err)
		}
		fmt.Println(capture.PickHint(s.Hints(), uint64(time.Now().UnixNano())))
	},
}

func printSettings(s settings.Settings) {
	data, err := toml.Marshal(s)
	if err != nil {
		fatal("Failed to encode settings", err)
	}
	fmt.Print(string(data))
}

func init() {
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(hintCmd)
	configCmd.Flags().BoolVarP(&configFollow, "follow", "f", false, "Keep running and print changes")
}
