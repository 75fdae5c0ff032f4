package stickies

import (
	_ "embed"
	"log/slog"
	"time"

	"github.com/aretw0/stickies/internal/platform"
	"github.com/aretw0/stickies/pkg/core"
)

// Version exposes the version of the library.
//
//go:embed VERSION
var Version string

// --- Types ---

// Note is a public alias for the domain entity.
type Note = core.Note

// View is a public alias for the window capability.
type View = core.View

// ViewFactory is a public alias for the window factory capability.
type ViewFactory = core.ViewFactory

// Dispatcher is a public alias for the UI dispatch capability.
type Dispatcher = core.Dispatcher

// Inspector is a public alias for the foreground-process capability.
type Inspector = core.Inspector

// Service is a public alias for the composed overlay service.
type Service = platform.Service

// Settings is a public alias for the user-tunable configuration.
type Settings = platform.Settings

// --- Configuration ---

// Option defines a functional option for configuring the service.
type Option = platform.Option

// WithLogger sets the logger for the service and its workers.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithDispatcher injects the UI dispatch queue.
func WithDispatcher(d core.Dispatcher) Option {
	return platform.WithDispatcher(d)
}

// WithViewFactory injects the window factory.
func WithViewFactory(f core.ViewFactory) Option {
	return platform.WithViewFactory(f)
}

// WithInspector injects the foreground-process resolver.
func WithInspector(i core.Inspector) Option {
	return platform.WithInspector(i)
}

// WithSettings bypasses the settings file and uses the given values.
func WithSettings(s Settings) Option {
	return platform.WithSettings(s)
}

// WithHideWhenInactive overrides the hide-on-focus-loss flag.
func WithHideWhenInactive(hide bool) Option {
	return platform.WithHideWhenInactive(hide)
}

// WithPollInterval overrides the watcher tick interval.
func WithPollInterval(d time.Duration) Option {
	return platform.WithPollInterval(d)
}

// WithForceTemp persists into a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// --- Factory ---

// New creates a new stickies Service. An empty path derives the notes
// file from the running executable: same directory, same base name,
// .xml extension.
func New(path string, opts ...Option) (*Service, error) {
	return platform.New(path, opts...)
}

// --- Utils ---

// DefaultSettings returns the stock configuration.
func DefaultSettings() Settings {
	return platform.DefaultSettings()
}

// LoadSettings reads a settings file, yielding defaults when missing.
func LoadSettings(path string) (Settings, error) {
	return platform.LoadSettings(path)
}

// SaveSettings writes a settings file.
func SaveSettings(path string, s Settings) error {
	return platform.SaveSettings(path, s)
}

// SettingsPathFor derives the settings file location from a notes file.
func SettingsPathFor(notesPath string) string {
	return platform.SettingsPathFor(notesPath)
}
