package store

import (
	"github.com/aretw0/introspection"
)

// State exposes internal state for observability.
type State struct {
	Path          string `json:"path"`
	NoteCount     int    `json:"note_count"`
	HasDefault    bool   `json:"has_default"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.Lock()
	count := s.coll.Len()
	hasDefault := s.coll.FirstDefault() != nil
	s.mu.Unlock()

	s.stateMu.RLock()
	watcherActive := s.watcherActive
	s.stateMu.RUnlock()

	return State{
		Path:          s.path,
		NoteCount:     count,
		HasDefault:    hasDefault,
		WatcherActive: watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
