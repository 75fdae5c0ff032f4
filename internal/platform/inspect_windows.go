//go:build windows

package platform

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"syscall"
	"unsafe"

	"github.com/aretw0/stickies/pkg/core"
)

var (
	user32                       = syscall.NewLazyDLL("user32.dll")
	kernel32                     = syscall.NewLazyDLL("kernel32.dll")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procOpenProcess              = kernel32.NewProc("OpenProcess")
	procCloseHandle              = kernel32.NewProc("CloseHandle")
	procQueryFullProcessImage    = kernel32.NewProc("QueryFullProcessImageNameW")
)

const processQueryLimitedInformation = 0x1000

func newInspector(logger *slog.Logger) core.Inspector {
	return windowsInspector{}
}

type windowsInspector struct{}

// ForegroundProcess resolves the executable file name of the process
// owning the focused top-level window.
func (windowsInspector) ForegroundProcess() (string, error) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return "", fmt.Errorf("no foreground window")
	}

	var pid uint32
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	if pid == 0 {
		return "", fmt.Errorf("foreground window has no owning process")
	}

	handle, _, err := procOpenProcess.Call(processQueryLimitedInformation, 0, uintptr(pid))
	if handle == 0 {
		return "", fmt.Errorf("failed to open process %d: %w", pid, err)
	}
	defer procCloseHandle.Call(handle)

	buf := make([]uint16, syscall.MAX_PATH)
	size := uint32(len(buf))
	ret, _, err := procQueryFullProcessImage.Call(handle, 0, uintptr(unsafe.Pointer(&buf[0])), uintptr(unsafe.Pointer(&size)))
	if ret == 0 {
		return "", fmt.Errorf("failed to query process image for %d: %w", pid, err)
	}

	return filepath.Base(syscall.UTF16ToString(buf[:size])), nil
}
