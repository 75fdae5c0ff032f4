//go:build linux

package platform

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/aretw0/stickies/pkg/core"
)

// newInspector returns an X11 inspector backed by xdotool. Wayland
// sessions without XWayland report errors, which the watcher tolerates.
func newInspector(logger *slog.Logger) core.Inspector {
	if _, err := exec.LookPath("xdotool"); err != nil && logger != nil {
		logger.Warn("xdotool not installed, foreground detection disabled")
	}
	return linuxInspector{}
}

type linuxInspector struct{}

// ForegroundProcess resolves the active window's owning process via
// xdotool and /proc.
func (linuxInspector) ForegroundProcess() (string, error) {
	out, err := exec.Command("xdotool", "getactivewindow", "getwindowpid").Output()
	if err != nil {
		return "", fmt.Errorf("xdotool failed: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return "", fmt.Errorf("unexpected xdotool output %q: %w", out, err)
	}

	comm, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", pid))
	if err != nil {
		return "", fmt.Errorf("failed to resolve process %d: %w", pid, err)
	}
	return strings.TrimSpace(string(comm)), nil
}
