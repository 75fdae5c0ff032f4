//go:build darwin

package platform

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/aretw0/stickies/pkg/core"
)

func newInspector(logger *slog.Logger) core.Inspector {
	return darwinInspector{}
}

type darwinInspector struct{}

// ForegroundProcess resolves the frontmost application via System
// Events.
func (darwinInspector) ForegroundProcess() (string, error) {
	script := `tell application "System Events" to get name of first application process whose frontmost is true`
	out, err := exec.Command("osascript", "-e", script).Output()
	if err != nil {
		return "", fmt.Errorf("osascript failed: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
