package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/stickies"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	notesFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stickies",
	Short: "Desktop sticky notes that follow your game's focus",
	Long: `Stickies keeps a small collection of on-screen notes in an XML file
next to the executable and hides them whenever the watched application
loses the foreground.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// openService builds a service against the configured notes file and
// loads the collection. Every subcommand goes through here.
func openService(ctx context.Context) (*stickies.Service, error) {
	service, err := stickies.New(notesFile, stickies.WithLogger(slog.Default()))
	if err != nil {
		return nil, err
	}
	if err := service.Load(ctx); err != nil {
		return nil, err
	}
	return service, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&notesFile, "file", "f", "", "Notes file (defaults to <executable>.xml)")
}
