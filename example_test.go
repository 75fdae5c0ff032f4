package stickies_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/stickies"
)

// Example_basic demonstrates how to initialize the service, load the
// collection, and add a note next to nothing in particular.
func Example_basic() {
	// Create a temporary directory for the example
	tmpDir, err := os.MkdirTemp("", "stickies-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	// Initialize the service against an explicit notes file. Without a
	// path the file is derived from the running executable.
	service, err := stickies.New(filepath.Join(tmpDir, "notes.xml"))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The UI loop is owned by the caller's main goroutine; for a
	// headless embedding a plain goroutine does.
	go service.Loop().Run(ctx)

	// 1. Load the collection. A missing file yields the default note.
	if err := service.Load(ctx); err != nil {
		log.Fatal(err)
	}
	fmt.Println("notes after load:", len(service.Notes()))

	// 2. Add a note, styled after the default note.
	if _, err := service.AddNote(ctx, nil); err != nil {
		log.Fatal(err)
	}
	fmt.Println("notes after add:", len(service.Notes()))

	// 3. Persist explicitly before exiting.
	if err := service.Save(ctx); err != nil {
		log.Fatal(err)
	}
	fmt.Println("default kept:", service.DefaultNote() != nil)

	// Output:
	// notes after load: 1
	// notes after add: 2
	// default kept: true
}
