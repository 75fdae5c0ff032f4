package core

import "context"

// Visibility is the display state of a View.
type Visibility int

const (
	Shown Visibility = iota
	Hidden
)

// View is an on-screen window bound to exactly one note. Implementations
// are owned by the UI loop: Show, Close and SetVisibility must only be
// called from a closure running on the Dispatcher.
type View interface {
	// ID matches the bound note's ID.
	ID() string

	// Model returns the bound note. The View holds a non-owning
	// reference; the store owns the entity.
	Model() *Note

	Show()
	Close()

	SetVisibility(v Visibility)
	Visibility() Visibility

	Bounds() (x, y, w, h float64)
	SetBounds(x, y, w, h float64)
}

// ViewFactory creates Views for notes. New must only be called from the
// UI loop.
type ViewFactory interface {
	New(n *Note) View

	// ScreenSize reports the primary screen dimensions for centered
	// placement. A zero size means unknown; callers fall back to
	// origin placement.
	ScreenSize() (w, h float64)
}

// Dispatcher marshals closures onto the UI loop. It replaces a
// framework dispatcher with a task queue owned by one goroutine; other
// goroutines post closures to it.
type Dispatcher interface {
	// Invoke runs fn on the UI loop and blocks until it completed.
	Invoke(ctx context.Context, fn func()) error

	// InvokeAsync schedules fn on the UI loop and returns a channel
	// closed once fn completed.
	InvokeAsync(ctx context.Context, fn func()) (<-chan struct{}, error)

	// InvokeIdle runs fn on the UI loop at low priority, after pending
	// regular work has drained, and blocks until it completed.
	InvokeIdle(ctx context.Context, fn func()) error
}

// Inspector resolves the executable file name of the process owning the
// OS input-focused top-level window (e.g. "ffxiv_dx11.exe").
type Inspector interface {
	ForegroundProcess() (string, error)
}
