// Package stickies is the Composition Root for the stickies overlay core.
//
// It connects the core domain (notes, views, foreground detection) with
// the platform wiring (persistence path, OS inspection, UI loop) using
// the Hexagonal Architecture pattern.
//
// Philosophy:
//
// stickies is the headless heart of a desktop overlay: persistent
// freestanding notes that follow a target application's input focus.
// The rendering frontend is pluggable; the core owns the collection,
// its persistence, and the concurrency-sensitive lifecycle around it.
//
// Features:
//
//   - **One default note**: the collection always carries exactly one
//     style-template entity, restored on every load.
//   - **Locked persistence**: load/save serialize the whole collection
//     under one coarse lock, written atomically.
//   - **Foreground watcher**: a supervised polling loop hides and shows
//     every note window as the target application gains or loses focus.
//   - **UI loop**: a task queue owned by one goroutine stands in for
//     the UI thread; all window mutation is marshalled onto it.
//   - **Pluggable collaborators**: View, ViewFactory, Dispatcher and
//     Inspector are small interfaces injected via options.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := stickies.New("",
//		stickies.WithViewFactory(frontend),
//		stickies.WithLogger(logger),
//	)
//
//	// Load notes and start following the game's focus
//	err = svc.Load(ctx)
//	err = svc.StartWatcher(ctx)
package stickies
