package main

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/memotori"
	"github.com/aretw0/memotori/internal/logging"
	"github.com/aretw0/memotori/pkg/core"
)

var (
	verbose    bool
	dbPath     string
	configPath string
	logFile    string

	logCloser io.Closer
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "memotori",
	Short: "Capture quick notes and search them later",
	Long: `memotori stores short notes with free-form tags in a local SQLite database
and finds them again with full-text search, tag filters and recency ordering.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger, closer, err := logging.New(logging.Config{
			Verbose: verbose,
			File:    logFile,
		})
		if err != nil {
			fatal("Failed to configure logging", err)
		}
		logCloser = closer
		slog.SetDefault(logger)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the note database (default: per-user data dir)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the settings file (default: per-user config dir)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to a rotating file instead of stderr")
}

func openService(opts ...memotori.Option) *core.Service {
	opts = append([]memotori.Option{memotori.WithLogger(slog.Default())}, opts...)
	svc, err := memotori.Open(dbPath, opts...)
	if err != nil {
		fatal("Failed to open note database", err)
	}
	return svc
}

func settingsPath() string {
	if configPath != "" {
		return configPath
	}
	paths, err := memotori.DefaultPaths()
	if err != nil {
		fatal("Failed to resolve settings path", err)
	}
	return paths.SettingsPath()
}

// readContent joins args, or reads stdin when no args (or "-") are given.
func readContent(in io.Reader, args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}

// stdinIsPipe reports whether stdin is not a terminal.
func stdinIsPipe() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&fs.ModeCharDevice == 0
}
