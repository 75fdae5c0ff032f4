package foreground

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultTargets returns the process names the overlay follows out of
// the box: the 32-bit and DirectX 11 game clients.
func DefaultTargets() []string {
	return []string{"ffxiv.exe", "ffxiv_dx11.exe"}
}

// Matcher decides whether a foreground process name counts as "target
// focused". The allow-list holds the configured target patterns plus the
// host process's own name, so the overlay's notes stay visible while the
// overlay itself is focused. Matching is case-insensitive; patterns may
// use glob syntax (e.g. "ffxiv*.exe").
type Matcher struct {
	patterns []string
}

// NewMatcher builds a matcher from target patterns and the host process
// name. Empty entries are dropped.
func NewMatcher(targets []string, host string) *Matcher {
	patterns := make([]string, 0, len(targets)+1)
	for _, t := range targets {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			patterns = append(patterns, t)
		}
	}
	if host = strings.ToLower(strings.TrimSpace(host)); host != "" {
		patterns = append(patterns, host)
	}
	return &Matcher{patterns: patterns}
}

// Matches reports whether the executable name is on the allow-list.
func (m *Matcher) Matches(exe string) bool {
	name := strings.ToLower(strings.TrimSpace(exe))
	if name == "" {
		return false
	}

	for _, p := range m.patterns {
		if p == name {
			return true
		}
		if ok, err := doublestar.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}

// HostProcessName returns the running program's own executable file
// name, for the matcher's allow-list.
func HostProcessName() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Base(exe)
}
