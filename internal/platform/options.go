package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/stickies/pkg/core"
)

// options holds the internal configuration for the stickies service.
type options struct {
	logger     *slog.Logger
	dispatcher core.Dispatcher
	factory    core.ViewFactory
	inspector  core.Inspector
	settings   *Settings
	tempDir    bool

	// Single-flag overlays, applied after the settings file is read so
	// they never shadow the rest of it.
	hideOverride *bool
	pollOverride *time.Duration
}

// Option defines a functional option for configuring the service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger for the service and its workers.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDispatcher injects the UI dispatch queue. By default the service
// creates its own uiloop, exposed via Service.Loop.
func WithDispatcher(d core.Dispatcher) Option {
	return func(o *options) {
		o.dispatcher = d
	}
}

// WithViewFactory injects the window factory. Defaults to headless
// views that only log.
func WithViewFactory(f core.ViewFactory) Option {
	return func(o *options) {
		o.factory = f
	}
}

// WithInspector injects the foreground-process resolver. Defaults to
// the platform-specific implementation.
func WithInspector(i core.Inspector) Option {
	return func(o *options) {
		o.inspector = i
	}
}

// WithSettings bypasses the settings file and uses the given values.
func WithSettings(s Settings) Option {
	return func(o *options) {
		normalized := s.normalize()
		o.settings = &normalized
	}
}

// WithHideWhenInactive overrides the single flag without replacing the
// rest of the settings.
func WithHideWhenInactive(hide bool) Option {
	return func(o *options) {
		o.hideOverride = &hide
	}
}

// WithPollInterval overrides the watcher tick interval.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) {
		o.pollOverride = &d
	}
}

// WithForceTemp persists into a temporary directory (useful for
// testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.tempDir = force
	}
}
