// Package foreground implements the background polling loop that tracks
// whether the target application owns the OS input focus, and toggles
// note window visibility on transitions.
package foreground

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"

	"github.com/aretw0/stickies/pkg/core"
)

const (
	// DefaultInterval is the poll interval between ticks.
	DefaultInterval = 3 * time.Second

	// toggleYield is the pause between per-view visibility flips, so a
	// long row of windows does not starve the UI loop.
	toggleYield = 10 * time.Millisecond
)

// Config wires a Watcher to its collaborators.
type Config struct {
	Inspector  core.Inspector
	Dispatcher core.Dispatcher

	// Views returns the currently open views. It is called inside the
	// dispatched closure, i.e. on the UI loop.
	Views func() []core.View

	// HideWhenInactive is read every tick; when it returns false the
	// watcher forces the active state without inspecting anything.
	HideWhenInactive func() bool

	// Targets are the process-name patterns to follow. Empty means
	// DefaultTargets(). The host process name is always allowed.
	Targets []string

	// Host overrides the detected host process name (tests).
	Host string

	// Interval overrides DefaultInterval.
	Interval time.Duration

	Logger *slog.Logger
}

// Watcher is the single long-lived polling loop. Start is idempotent;
// Stop cancels cooperatively. Only the watcher goroutine writes the
// active flag; the dispatched visibility closure reads it indirectly
// through the transition it was created for.
type Watcher struct {
	*worker.BaseWorker
	cfg      Config
	matcher  *Matcher
	interval time.Duration

	active atomic.Bool
	ticks  atomic.Int64
	cancel context.CancelFunc

	mu      sync.RWMutex
	lastErr error
}

// New creates a Watcher. Inspector, Dispatcher and Views are required.
func New(cfg Config) *Watcher {
	targets := cfg.Targets
	if len(targets) == 0 {
		targets = DefaultTargets()
	}
	host := cfg.Host
	if host == "" {
		host = HostProcessName()
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	w := &Watcher{
		BaseWorker: worker.NewBaseWorker("foreground-watcher"),
		cfg:        cfg,
		matcher:    NewMatcher(targets, host),
		interval:   interval,
	}
	// Views start out visible; the first tick computes the real state.
	w.active.Store(true)
	return w
}

// Active reports the last computed state: true while the target (or the
// host) owns the input focus.
func (w *Watcher) Active() bool {
	return w.active.Load()
}

// Start launches the polling loop. Starting an already-running watcher
// is a no-op.
func (w *Watcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

// Stop requests cooperative termination and waits for the loop to exit.
func (w *Watcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

func (w *Watcher) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

func (w *Watcher) run(ctx context.Context) error {
	// Startup delay: avoid racing the host application's own startup.
	if !sleep(ctx, 2*w.interval) {
		return nil
	}

	for {
		if err := w.safeTick(ctx); err != nil {
			w.recordErr(err)
			if w.cfg.Logger != nil {
				w.cfg.Logger.Error("watcher tick failed", "error", err)
			}
			// Backoff: one doubled sleep before retrying.
			if !sleep(ctx, 2*w.interval) {
				return nil
			}
		}

		if !sleep(ctx, w.interval) {
			return nil
		}
	}
}

// safeTick runs one tick, converting panics into errors so the loop
// survives them.
func (w *Watcher) safeTick(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("tick panic: %v", recovered)
			if w.cfg.Logger != nil && w.cfg.Logger.Enabled(ctx, slog.LevelDebug) {
				w.cfg.Logger.Debug("tick panic stack", "stack", string(debug.Stack()))
			}
		}
	}()
	return w.tick(ctx)
}

// tick samples the foreground state and applies a transition if it
// changed. Inspection failures leave the state untouched and do not
// count as tick errors.
func (w *Watcher) tick(ctx context.Context) error {
	w.ticks.Add(1)

	active := true
	if w.cfg.HideWhenInactive == nil || w.cfg.HideWhenInactive() {
		name, err := w.cfg.Inspector.ForegroundProcess()
		if err != nil {
			// Transient: process exited mid-query, access denied.
			// No state change this tick.
			if w.cfg.Logger != nil {
				w.cfg.Logger.Debug("foreground inspection failed", "error", err)
			}
			return nil
		}
		active = w.matcher.Matches(name)
	}

	if active == w.active.Load() {
		return nil
	}
	w.active.Store(active)

	if w.cfg.Logger != nil {
		w.cfg.Logger.Debug("foreground state changed", "active", active)
	}
	return w.applyVisibility(ctx, active)
}

// applyVisibility toggles every open view on the UI loop. The idle
// priority lets pending UI work drain first; the per-item yield keeps
// the loop responsive while a long row of windows flips.
func (w *Watcher) applyVisibility(ctx context.Context, active bool) error {
	vis := core.Hidden
	if active {
		vis = core.Shown
	}

	return w.cfg.Dispatcher.InvokeIdle(ctx, func() {
		for _, v := range w.cfg.Views() {
			v.SetVisibility(vis)
			time.Sleep(toggleYield)
		}
	})
}

func (w *Watcher) recordErr(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastErr = err
}

// sleep waits for d, returning false if ctx was cancelled first.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
