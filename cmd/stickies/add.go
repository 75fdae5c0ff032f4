package main

import (
	"context"
	"fmt"

	"github.com/aretw0/stickies"
	"github.com/spf13/cobra"
)

var addNear string

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new note to the collection",
	Long:  `Add creates a note styled after the default note and saves the collection.`,
	Args:  cobra.NoArgs,
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

		var parent *stickies.Note
		if addNear != "" {
			parent = service.Store().Get(addNear)
			if parent == nil {
				fatal("Unknown note", fmt.Errorf("no note with id %q", addNear))
			}
		}

		note, err := service.AddNote(ctx, parent)
		if err != nil {
			fatal("Failed to add note", err)
		}
		// AddNote persists in the background; flush before exiting.
		if err := service.Save(ctx); err != nil {
			fatal("Failed to save notes", err)
		}

		fmt.Printf("Note added: %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addNear, "near", "", "Place the new note next to this note ID")
}
