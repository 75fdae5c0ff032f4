package views

import (
	"log/slog"
	"sync"

	"github.com/aretw0/stickies/pkg/core"
)

// HeadlessFactory creates views without any real window behind them.
// It backs the CLI and any embedding that runs the core before a
// rendering frontend is attached; state changes are logged instead of
// drawn.
type HeadlessFactory struct {
	Logger *slog.Logger
}

// New implements core.ViewFactory.
func (f *HeadlessFactory) New(n *core.Note) core.View {
	return &HeadlessView{note: n, logger: f.Logger}
}

// ScreenSize implements core.ViewFactory. Headless mode has no screen.
func (f *HeadlessFactory) ScreenSize() (w, h float64) {
	return 0, 0
}

// HeadlessView is a window-less core.View, tracking the state a real
// window would have.
type HeadlessView struct {
	note   *core.Note
	logger *slog.Logger

	mu     sync.Mutex
	vis    core.Visibility
	closed bool
}

func (v *HeadlessView) ID() string        { return v.note.ID }
func (v *HeadlessView) Model() *core.Note { return v.note }

func (v *HeadlessView) Show() {
	v.mu.Lock()
	v.vis = core.Shown
	v.mu.Unlock()
	if v.logger != nil {
		v.logger.Debug("view shown", "id", v.note.ID)
	}
}

func (v *HeadlessView) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
	if v.logger != nil {
		v.logger.Debug("view closed", "id", v.note.ID)
	}
}

func (v *HeadlessView) SetVisibility(vis core.Visibility) {
	v.mu.Lock()
	v.vis = vis
	v.mu.Unlock()
	if v.logger != nil {
		v.logger.Debug("view visibility changed", "id", v.note.ID, "shown", vis == core.Shown)
	}
}

func (v *HeadlessView) Visibility() core.Visibility {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.vis
}

// Closed reports whether Close was called.
func (v *HeadlessView) Closed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}

func (v *HeadlessView) Bounds() (x, y, w, h float64) {
	return v.note.X, v.note.Y, v.note.W, v.note.H
}

func (v *HeadlessView) SetBounds(x, y, w, h float64) {
	v.note.X, v.note.Y, v.note.W, v.note.H = x, y, w, h
}

var _ core.ViewFactory = (*HeadlessFactory)(nil)
var _ core.View = (*HeadlessView)(nil)
