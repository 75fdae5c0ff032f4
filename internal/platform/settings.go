package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/stickies/pkg/foreground"
)

// Settings holds the user-tunable behavior of the overlay core.
type Settings struct {
	// HideWhenInactive hides all note windows while the target
	// application does not own the input focus.
	HideWhenInactive bool `yaml:"hide_when_inactive"`

	// TargetProcesses are the process-name patterns the watcher
	// follows. Glob syntax is allowed.
	TargetProcesses []string `yaml:"target_processes"`

	// PollInterval is the watcher tick interval.
	PollInterval time.Duration `yaml:"poll_interval"`

	// StaggerDelay is the pause between successive window creations.
	StaggerDelay time.Duration `yaml:"stagger_delay"`
}

// DefaultSettings returns the stock configuration.
func DefaultSettings() Settings {
	return Settings{
		HideWhenInactive: true,
		TargetProcesses:  foreground.DefaultTargets(),
		PollInterval:     foreground.DefaultInterval,
		StaggerDelay:     100 * time.Millisecond,
	}
}

// normalize fills zero fields with defaults.
func (s Settings) normalize() Settings {
	def := DefaultSettings()
	if len(s.TargetProcesses) == 0 {
		s.TargetProcesses = def.TargetProcesses
	}
	if s.PollInterval <= 0 {
		s.PollInterval = def.PollInterval
	}
	if s.StaggerDelay <= 0 {
		s.StaggerDelay = def.StaggerDelay
	}
	return s
}

// SettingsPathFor derives the settings file location from the notes
// file: same directory, same base name, .settings.yaml extension.
func SettingsPathFor(notesPath string) string {
	base := strings.TrimSuffix(notesPath, filepath.Ext(notesPath))
	return base + ".settings.yaml"
}

// LoadSettings reads the settings file. A missing file yields defaults;
// a malformed one is an error.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	// hide_when_inactive defaults to true, so absence must be told
	// apart from an explicit false.
	var raw struct {
		HideWhenInactive *bool         `yaml:"hide_when_inactive"`
		TargetProcesses  []string      `yaml:"target_processes"`
		PollInterval     time.Duration `yaml:"poll_interval"`
		StaggerDelay     time.Duration `yaml:"stagger_delay"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Settings{}, fmt.Errorf("invalid settings file: %w", err)
	}

	s := Settings{
		HideWhenInactive: raw.HideWhenInactive == nil || *raw.HideWhenInactive,
		TargetProcesses:  raw.TargetProcesses,
		PollInterval:     raw.PollInterval,
		StaggerDelay:     raw.StaggerDelay,
	}
	return s.normalize(), nil
}

// SaveSettings writes the settings file.
func SaveSettings(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
