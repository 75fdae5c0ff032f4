package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a note from the collection",
	Long:  `Remove permanently deletes a note and saves the collection. The default note cannot be removed.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		service, err := openService(ctx)
		if err != nil {
			fatal("Failed to open notes", err)
		}
		if loop := service.Loop(); loop != nil {
			go loop.Run(ctx)
		}

		note := service.Store().Get(args[0])
		if note == nil {
			fatal("Unknown note", fmt.Errorf("no note with id %q", args[0]))
		}
		if note.IsDefault {
			fatal("Refusing removal", fmt.Errorf("note %q is the default note", args[0]))
		}

		if err := service.RemoveNote(ctx, note); err != nil {
			fatal("Failed to remove note", err)
		}
		if err := service.Save(ctx); err != nil {
			fatal("Failed to save notes", err)
		}

		fmt.Printf("Note removed: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
