package platform

import (
	"github.com/aretw0/introspection"

	"github.com/aretw0/stickies/pkg/foreground"
	"github.com/aretw0/stickies/pkg/store"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Store   store.State             `json:"store"`
	Watcher foreground.WatcherState `json:"watcher"`
	Open    int                     `json:"open_views"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	return ServiceState{
		Store:   s.store.State().(store.State),
		Watcher: s.watcher.Snapshot().(foreground.WatcherState),
		Open:    len(s.views.Views()),
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
