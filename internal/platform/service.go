package platform

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/stickies/pkg/core"
	"github.com/aretw0/stickies/pkg/foreground"
	"github.com/aretw0/stickies/pkg/store"
	"github.com/aretw0/stickies/pkg/uiloop"
	"github.com/aretw0/stickies/pkg/views"
)

// Service is the top-level orchestrator: it owns the note store, the
// foreground watcher and the view lifecycle manager, and exposes the
// operations an embedding application composes against. There is no
// package-level instance; callers construct and hold their own.
type Service struct {
	store    *store.Store
	watcher  *foreground.Watcher
	views    *views.Manager
	loop     *uiloop.Loop
	disp     core.Dispatcher
	settings Settings
	logger   *slog.Logger
}

// New wires a Service. An empty path derives the notes file from the
// running executable.
func New(path string, opts ...Option) (*Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.tempDir {
		dir, err := os.MkdirTemp("", "stickies-*")
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "notes.xml")
	}

	st, err := store.New(store.Config{Path: path, Logger: o.logger})
	if err != nil {
		return nil, err
	}

	settings := DefaultSettings()
	if o.settings != nil {
		settings = *o.settings
	} else {
		loaded, err := LoadSettings(SettingsPathFor(st.Path()))
		if err != nil {
			if o.logger != nil {
				o.logger.Warn("settings unreadable, using defaults", "error", err)
			}
		} else {
			settings = loaded
		}
	}
	if o.hideOverride != nil {
		settings.HideWhenInactive = *o.hideOverride
	}
	if o.pollOverride != nil {
		settings.PollInterval = *o.pollOverride
	}

	disp := o.dispatcher
	var loop *uiloop.Loop
	if disp == nil {
		loop = uiloop.New()
		disp = loop
	}

	factory := o.factory
	if factory == nil {
		factory = &views.HeadlessFactory{Logger: o.logger}
	}

	inspector := o.inspector
	if inspector == nil {
		inspector = newInspector(o.logger)
	}

	mgr := views.NewManager(views.Config{
		Store:      st,
		Dispatcher: disp,
		Factory:    factory,
		Logger:     o.logger,
		Stagger:    settings.StaggerDelay,
	})

	svc := &Service{
		store:    st,
		views:    mgr,
		loop:     loop,
		disp:     disp,
		settings: settings,
		logger:   o.logger,
	}

	svc.watcher = foreground.New(foreground.Config{
		Inspector:        inspector,
		Dispatcher:       disp,
		Views:            mgr.Views,
		HideWhenInactive: func() bool { return svc.settings.HideWhenInactive },
		Targets:          settings.TargetProcesses,
		Interval:         settings.PollInterval,
		Logger:           o.logger,
	})

	return svc, nil
}

// Loop returns the service-owned UI loop, or nil when a dispatcher was
// injected. The embedding application's main goroutine calls Run on it.
func (s *Service) Loop() *uiloop.Loop {
	return s.loop
}

// Store exposes the underlying note store.
func (s *Service) Store() *store.Store {
	return s.store
}

// Settings returns the effective configuration.
func (s *Service) Settings() Settings {
	return s.settings
}

// Load reads the persisted notes.
func (s *Service) Load(ctx context.Context) error {
	return s.store.Load(ctx)
}

// Save persists the notes.
func (s *Service) Save(ctx context.Context) error {
	return s.store.Save(ctx)
}

// Notes returns a snapshot of the collection.
func (s *Service) Notes() []*core.Note {
	return s.store.Notes()
}

// DefaultNote returns the style template entity.
func (s *Service) DefaultNote() *core.Note {
	return s.store.DefaultNote()
}

// AddNote creates, stores, shows and persists a new note. See
// views.Manager.AddNote for placement rules.
func (s *Service) AddNote(ctx context.Context, parent *core.Note) (*core.Note, error) {
	return s.views.AddNote(ctx, parent)
}

// RemoveNote closes the note's window and removes it from the store.
func (s *Service) RemoveNote(ctx context.Context, n *core.Note) error {
	return s.views.RemoveNote(ctx, n)
}

// ShowAll opens one window per non-default note.
func (s *Service) ShowAll(ctx context.Context) error {
	return s.views.ShowAll(ctx)
}

// CloseAll closes every open window.
func (s *Service) CloseAll(ctx context.Context) error {
	return s.views.CloseAll(ctx)
}

// StartWatcher launches the foreground polling loop. Idempotent.
func (s *Service) StartWatcher(ctx context.Context) error {
	return s.watcher.Start(ctx)
}

// Stop terminates the watcher cooperatively.
func (s *Service) Stop(ctx context.Context) error {
	return s.watcher.Stop(ctx)
}

// Active reports the watcher's last computed foreground state.
func (s *Service) Active() bool {
	return s.watcher.Active()
}

// WatchFile starts the on-disk reload worker and returns its event
// channel, so an embedding application can reload on external edits.
func (s *Service) WatchFile(ctx context.Context) (<-chan store.ReloadEvent, error) {
	return s.store.Watch(ctx)
}
