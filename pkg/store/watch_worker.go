package store

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"
)

// ReloadEvent signals that the persisted file changed on disk outside
// this store, so a running overlay can reload it.
type ReloadEvent struct {
	At time.Time
}

const reloadDebounce = 200 * time.Millisecond

// reloadWorker watches the directory containing the notes file and emits
// a debounced ReloadEvent when the file is replaced by an external
// writer. Events caused by the store's own Save are suppressed.
type reloadWorker struct {
	*worker.BaseWorker
	store     *Store
	events    chan<- ReloadEvent
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

func newReloadWorker(store *Store, events chan<- ReloadEvent) *reloadWorker {
	return &reloadWorker{
		BaseWorker: worker.NewBaseWorker("notes-reload"),
		store:      store,
		events:     events,
	}
}

// Watch starts a reload worker bound to the store's file. The worker
// runs until ctx is cancelled; the returned channel is closed on exit.
func (s *Store) Watch(ctx context.Context) (<-chan ReloadEvent, error) {
	events := make(chan ReloadEvent, 1)
	w := newReloadWorker(s, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

func (w *reloadWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("reload worker already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// The file itself may not exist yet and is atomically replaced on
	// save, so the parent directory is watched instead.
	if err := watcher.Add(filepath.Dir(w.store.Path())); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch notes directory: %w", err)
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(reloadDebounce)
	w.store.setWatcherActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *reloadWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

func (w *reloadWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

func (w *reloadWorker) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("reload worker panic: %v", recovered)

			if w.store.logger != nil {
				if w.store.logger.Enabled(ctx, slog.LevelDebug) {
					w.store.logger.Error("reload worker panic", "error", panicErr, "stack", string(debug.Stack()))
				} else {
					w.store.logger.Error("reload worker panic", "error", panicErr)
				}
			}
		}
	}()
	defer close(w.events)
	defer w.store.setWatcherActive(false)
	defer w.watcher.Close()

	err = w.loop(ctx)

	// Stop the debouncer before the events channel goes away, waiting
	// for in-flight timers.
	w.debouncer.stopAndWait(5 * time.Second)

	return err
}

func (w *reloadWorker) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.handleEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			if w.store.logger != nil {
				w.store.logger.Error("fsnotify error", "error", wErr)
			}
		}
	}
}

func (w *reloadWorker) handleEvent(ctx context.Context, event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.store.Path() {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	if w.store.isSelfWrite() {
		if w.store.logger != nil {
			w.store.logger.Debug("ignoring own save", "path", event.Name)
		}
		return
	}

	w.debouncer.add(func() {
		// Recover in case the send races worker shutdown.
		defer func() { _ = recover() }()
		select {
		case w.events <- ReloadEvent{At: time.Now()}:
		case <-ctx.Done():
		}
	})
}
