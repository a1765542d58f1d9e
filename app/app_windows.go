//go:build windows

package app

import (
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// App wraps an open process handle with query and terminate rights.
// Close releases the handle; it never terminates the process.
type App struct {
	pid    int32
	handle windows.Handle
	self   bool
}

// FromPID opens the process with the given id. Reports false when no
// such process exists or it cannot be opened for querying.
func FromPID(pid int32) (*App, bool) {
	h, err := windows.OpenProcess(
		windows.PROCESS_QUERY_LIMITED_INFORMATION|windows.PROCESS_TERMINATE,
		false, uint32(pid))
	if err != nil {
		// Retry without terminate rights; protected processes
		// still allow limited queries.
		h, err = windows.OpenProcess(
			windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
		if err != nil {
			return nil, false
		}
	}
	return &App{pid: pid, handle: h}, true
}

var (
	currentOnce sync.Once
	currentApp  *App
)

// Current returns the handle for the calling process itself: a
// process-wide singleton, initialized at most once and never released.
func Current() *App {
	currentOnce.Do(func() {
		currentApp = &App{
			pid:    int32(windows.GetCurrentProcessId()),
			handle: windows.CurrentProcess(),
			self:   true,
		}
	})
	return currentApp
}

// PID returns the process id. Reports false once the process exited.
func (a *App) PID() (int32, bool) {
	if a.Terminated() {
		return 0, false
	}
	return a.pid, true
}

// Hidden always reports false: Windows has no per-process hidden
// state equivalent.
func (a *App) Hidden() bool {
	return false
}

// Active reports whether a window of this process is in the
// foreground.
func (a *App) Active() bool {
	hwnd := getForegroundWindow()
	if hwnd == 0 {
		return false
	}
	var pid uint32
	getWindowThreadProcessID(hwnd, &pid)
	return int32(pid) == a.pid
}

// Terminated reports whether the process has exited.
func (a *App) Terminated() bool {
	ev, err := windows.WaitForSingleObject(a.handle, 0)
	return err == nil && ev == windows.WAIT_OBJECT_0
}

// SetHidden is unsupported on Windows and always reports false.
func (a *App) SetHidden(hidden bool) bool {
	return false
}

// Activate brings the process's foreground-eligible window forward.
// Returns whether a window was found and raised.
func (a *App) Activate(opts ActivationOptions) bool {
	hwnd := findMainWindow(uint32(a.pid))
	if hwnd == 0 {
		return false
	}
	return setForegroundWindow(hwnd)
}

// Terminate ends the process. Windows has no graceful per-process
// quit request, so both modes call TerminateProcess. Returns whether
// the call succeeded.
func (a *App) Terminate(force bool) bool {
	return windows.TerminateProcess(a.handle, 1) == nil
}

// Architecture reports the architecture for the current process only;
// remote processes report ArchUnknown.
func (a *App) Architecture() Architecture {
	if !a.self {
		return ArchUnknown
	}
	switch runtime.GOARCH {
	case "amd64":
		return ArchX8664
	case "arm64":
		return ArchARM64
	case "386":
		return ArchI386
	default:
		return ArchUnknown
	}
}

// BundleIdentifier is unavailable on Windows.
func (a *App) BundleIdentifier() (string, bool) {
	return "", false
}

// ExecutablePath returns the full image path of the process.
func (a *App) ExecutablePath() (string, bool) {
	buf := make([]uint16, windows.MAX_PATH)
	size := uint32(len(buf))
	err := windows.QueryFullProcessImageName(a.handle, 0, &buf[0], &size)
	if err != nil {
		return "", false
	}
	return windows.UTF16ToString(buf[:size]), true
}

// LocalizedName returns the executable base name.
func (a *App) LocalizedName() (string, bool) {
	path, ok := a.ExecutablePath()
	if !ok {
		return "", false
	}
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '\\' || path[i] == '/' {
			return path[i+1:], true
		}
	}
	return path, true
}

// Close releases the process handle. Do not close the Current
// singleton; it lives for the process lifetime.
func (a *App) Close() {
	if a.self {
		return
	}
	windows.CloseHandle(a.handle)
}

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procSetForegroundWindow      = user32.NewProc("SetForegroundWindow")
	procGetWindowThreadProcessID = user32.NewProc("GetWindowThreadProcessId")
	procEnumWindows              = user32.NewProc("EnumWindows")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procGetWindow                = user32.NewProc("GetWindow")
)

// getForegroundWindow returns the hwnd of the foreground window.
func getForegroundWindow() uintptr {
	ret, _, _ := procGetForegroundWindow.Call()
	return ret
}

// setForegroundWindow raises hwnd to the foreground.
func setForegroundWindow(hwnd uintptr) bool {
	ret, _, _ := procSetForegroundWindow.Call(hwnd)
	return ret != 0
}

// getWindowThreadProcessID fills pid with the owning process of hwnd.
func getWindowThreadProcessID(hwnd uintptr, pid *uint32) {
	procGetWindowThreadProcessID.Call(hwnd, uintptr(unsafe.Pointer(pid)))
}

// findMainWindow enumerates top-level windows and returns the first
// visible unowned window belonging to pid.
func findMainWindow(pid uint32) uintptr {
	const gwOwner = 4
	var found uintptr
	cb := windows.NewCallback(func(hwnd uintptr, _ uintptr) uintptr {
		var owner uint32
		getWindowThreadProcessID(hwnd, &owner)
		if owner != pid {
			return 1
		}
		if vis, _, _ := procIsWindowVisible.Call(hwnd); vis == 0 {
			return 1
		}
		if own, _, _ := procGetWindow.Call(hwnd, gwOwner); own != 0 {
			return 1
		}
		found = hwnd
		return 0
	})
	procEnumWindows.Call(cb, 0)
	return found
}
