package foreground

import (
	"github.com/aretw0/introspection"
	"github.com/aretw0/lifecycle/pkg/core/worker"
)

// WatcherState exposes internal state for observability.
type WatcherState struct {
	Status  string `json:"status"`
	Active  bool   `json:"active"`
	Ticks   int64  `json:"ticks"`
	LastErr string `json:"last_error,omitempty"`
}

// Snapshot implements introspection.Introspectable. The name State is
// taken by the worker contract, which returns worker.State.
func (w *Watcher) Snapshot() any {
	w.mu.RLock()
	lastErr := ""
	if w.lastErr != nil {
		lastErr = w.lastErr.Error()
	}
	w.mu.RUnlock()

	return WatcherState{
		Status:  string(w.State().Status),
		Active:  w.active.Load(),
		Ticks:   w.ticks.Load(),
		LastErr: lastErr,
	}
}

// ComponentType implements introspection.Component.
func (w *Watcher) ComponentType() string {
	return "watcher"
}

var _ introspection.Component = (*Watcher)(nil)
var _ worker.Worker = (*Watcher)(nil)
