// Package views manages the mapping between stored notes and their
// on-screen windows. All window mutation happens on the UI loop; the
// manager only posts closures to it.
package views

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/stickies/pkg/core"
	"github.com/aretw0/stickies/pkg/store"
)

const (
	// DefaultStagger is the delay between successive window creations
	// in ShowAll, so the windowing system is not hit with a creation
	// storm.
	DefaultStagger = 100 * time.Millisecond

	// placementGap is the horizontal gap between a parent note and a
	// note created next to it.
	placementGap = 10.0
)

// Config wires a Manager to its collaborators.
type Config struct {
	Store      *store.Store
	Dispatcher core.Dispatcher
	Factory    core.ViewFactory
	Logger     *slog.Logger

	// Stagger overrides DefaultStagger.
	Stagger time.Duration
}

// Manager opens and closes one View per non-default note and keeps the
// tracked set consistent with the store under concurrent add, remove and
// close operations.
type Manager struct {
	store   *store.Store
	disp    core.Dispatcher
	factory core.ViewFactory
	logger  *slog.Logger
	stagger time.Duration

	mu      sync.RWMutex
	tracked []core.View
}

// NewManager creates a Manager.
func NewManager(cfg Config) *Manager {
	stagger := cfg.Stagger
	if stagger <= 0 {
		stagger = DefaultStagger
	}
	return &Manager{
		store:   cfg.Store,
		disp:    cfg.Dispatcher,
		factory: cfg.Factory,
		logger:  cfg.Logger,
		stagger: stagger,
	}
}

// Views returns a snapshot of the currently tracked views.
func (m *Manager) Views() []core.View {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]core.View, len(m.tracked))
	copy(out, m.tracked)
	return out
}

// ShowAll clears any tracked views, then creates and shows a View for
// every non-default note, staggering successive creations.
func (m *Manager) ShowAll(ctx context.Context) error {
	return m.disp.Invoke(ctx, func() {
		m.closeTracked()
		for _, n := range m.store.Notes() {
			if n.IsDefault {
				continue
			}
			v := m.factory.New(n)
			m.track(v)
			v.Show()
			time.Sleep(m.stagger)
		}
	})
}

// CloseAll closes and untracks every currently tracked view.
func (m *Manager) CloseAll(ctx context.Context) error {
	return m.disp.Invoke(ctx, m.closeTracked)
}

// AddNote creates a new non-default note styled from the default note,
// appends it to the store, shows its window and persists asynchronously.
// With a parent the window lands immediately to its right; without one
// it is centered on screen when the screen size is known.
func (m *Manager) AddNote(ctx context.Context, parent *core.Note) (*core.Note, error) {
	n := core.NewNote()
	if d := m.store.DefaultNote(); d != nil {
		n.W, n.H = d.W, d.H
		n.Content = d.Content
	}

	if parent != nil {
		n.X = parent.X + parent.W + placementGap
		n.Y = parent.Y
	} else if w, h := m.factory.ScreenSize(); w > 0 && h > 0 {
		n.X = (w - n.W) / 2
		n.Y = (h - n.H) / 2
	}

	if err := m.store.Add(n); err != nil {
		return nil, fmt.Errorf("failed to add note: %w", err)
	}

	if err := m.disp.Invoke(ctx, func() {
		v := m.factory.New(n)
		m.track(v)
		v.Show()
	}); err != nil {
		return nil, err
	}

	m.persistAsync()
	return n, nil
}

// RemoveNote closes and untracks the note's view, removes the entity
// from the store and persists asynchronously. Removing a note that is
// not present is a no-op; removing the default note is disallowed.
func (m *Manager) RemoveNote(ctx context.Context, n *core.Note) error {
	if n == nil {
		return nil
	}
	if n.IsDefault {
		if m.logger != nil {
			m.logger.Warn("refusing to remove the default note", "id", n.ID)
		}
		return nil
	}

	if err := m.disp.Invoke(ctx, func() {
		if v := m.untrack(n.ID); v != nil {
			v.Close()
		}
	}); err != nil {
		return err
	}

	m.store.Remove(n.ID)
	m.persistAsync()
	return nil
}

// persistAsync saves the store on a worker goroutine so the UI loop is
// never blocked by disk I/O. Saves run to completion once started.
func (m *Manager) persistAsync() {
	lifecycle.Go(context.Background(), func(ctx context.Context) error {
		return m.store.Save(ctx)
	}, lifecycle.WithErrorHandler(func(err error) {
		if m.logger != nil {
			m.logger.Error("failed to persist notes", "error", err)
		}
	}))
}

// closeTracked runs on the UI loop.
func (m *Manager) closeTracked() {
	m.mu.Lock()
	tracked := m.tracked
	m.tracked = nil
	m.mu.Unlock()

	for _, v := range tracked {
		v.Close()
	}
}

func (m *Manager) track(v core.View) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tracked = append(m.tracked, v)
}

func (m *Manager) untrack(id string) core.View {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, v := range m.tracked {
		if v.ID() == id {
			m.tracked = append(m.tracked[:i], m.tracked[i+1:]...)
			return v
		}
	}
	return nil
}
