package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the overlay until interrupted",
	Long: `Run shows a window for every note, starts the foreground watcher and
reloads the collection when the notes file is edited externally.
The process stops on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		service, err := openService(ctx)
		if err != nil {
			fatal("Failed to open notes", err)
		}

		if err := service.StartWatcher(ctx); err != nil {
			fatal("Failed to start foreground watcher", err)
		}

		events, err := service.WatchFile(ctx)
		if err != nil {
			fatal("Failed to watch notes file", err)
		}
		go func() {
			for range events {
				slog.Info("Notes file changed on disk, reloading")
				if err := service.Load(ctx); err != nil {
					slog.Error("Reload failed", "error", err)
					continue
				}
				if err := service.ShowAll(ctx); err != nil {
					slog.Error("Refresh failed", "error", err)
				}
			}
		}()

		// The loop is not running yet; queue the initial ShowAll from
		// the side so Run can start draining on this goroutine.
		go func() {
			if err := service.ShowAll(ctx); err != nil {
				slog.Error("Initial show failed", "error", err)
			}
		}()

		service.Loop().Run(ctx)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := service.Stop(shutdownCtx); err != nil {
			slog.Warn("Watcher shutdown incomplete", "error", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
