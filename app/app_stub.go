//go:build !darwin && !windows

package app

import (
	"os"
	"sync"
)

// App is a minimal process handle on platforms without an
// application-object API. Only the Current singleton is available.
type App struct {
	pid  int32
	self bool
}

// FromPID reports false: no application lookup exists here.
func FromPID(pid int32) (*App, bool) {
	return nil, false
}

var (
	currentOnce sync.Once
	currentApp  *App
)

// Current returns the handle for the calling process itself: a
// process-wide singleton.
func Current() *App {
	currentOnce.Do(func() {
		currentApp = &App{pid: int32(os.Getpid()), self: true}
	})
	return currentApp
}

// PID returns the process id.
func (a *App) PID() (int32, bool) {
	return a.pid, true
}

// Hidden always reports false.
func (a *App) Hidden() bool { return false }

// Active always reports false.
func (a *App) Active() bool { return false }

// Terminated reports false for the current process.
func (a *App) Terminated() bool { return false }

// SetHidden is unsupported and reports false.
func (a *App) SetHidden(hidden bool) bool { return false }

// Activate is unsupported and reports false.
func (a *App) Activate(opts ActivationOptions) bool { return false }

// Terminate is unsupported and reports false.
func (a *App) Terminate(force bool) bool { return false }

// Architecture reports ArchUnknown.
func (a *App) Architecture() Architecture { return ArchUnknown }

// BundleIdentifier is unavailable.
func (a *App) BundleIdentifier() (string, bool) { return "", false }

// ExecutablePath returns the current executable path when known.
func (a *App) ExecutablePath() (string, bool) {
	if !a.self {
		return "", false
	}
	path, err := os.Executable()
	if err != nil {
		return "", false
	}
	return path, true
}

// LocalizedName is unavailable.
func (a *App) LocalizedName() (string, bool) { return "", false }

// Close is a no-op here.
func (a *App) Close() {}
