//go:build !windows && !linux && !darwin

package platform

import (
	"log/slog"

	"github.com/aretw0/stickies/pkg/core"
)

// newInspector returns a null inspector on platforms without
// foreground-window introspection. Every tick reports an error, which
// the watcher treats as "no state change".
func newInspector(logger *slog.Logger) core.Inspector {
	if logger != nil {
		logger.Warn("foreground inspection not supported on this platform")
	}
	return nullInspector{}
}

type nullInspector struct{}

func (nullInspector) ForegroundProcess() (string, error) {
	return "", core.ErrUnsupported
}
