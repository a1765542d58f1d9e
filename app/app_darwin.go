//go:build darwin

package app

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit

#import <AppKit/AppKit.h>
#include <stdlib.h>
#include <string.h>

// Lookup helpers return retained objects; the Go side owns one
// reference each.

static void *inputkit_app_from_pid(int pid) {
	@autoreleasepool {
		return [[NSRunningApplication
			runningApplicationWithProcessIdentifier:(pid_t)pid] retain];
	}
}

static void *inputkit_app_current(void) {
	@autoreleasepool {
		return [[NSRunningApplication currentApplication] retain];
	}
}

static int inputkit_app_pid(void *app) {
	return (int)[(NSRunningApplication *)app processIdentifier];
}

static int inputkit_app_hidden(void *app) {
	return [(NSRunningApplication *)app isHidden] ? 1 : 0;
}

static int inputkit_app_active(void *app) {
	return [(NSRunningApplication *)app isActive] ? 1 : 0;
}

static int inputkit_app_terminated(void *app) {
	return [(NSRunningApplication *)app isTerminated] ? 1 : 0;
}

static int inputkit_app_set_hidden(void *app, int hidden) {
	NSRunningApplication *a = (NSRunningApplication *)app;
	return (hidden ? [a hide] : [a unhide]) ? 1 : 0;
}

static int inputkit_app_activate(void *app, unsigned long long opts) {
	NSRunningApplication *a = (NSRunningApplication *)app;
	return [a activateWithOptions:(NSApplicationActivationOptions)opts] ? 1 : 0;
}

static int inputkit_app_terminate(void *app, int force) {
	NSRunningApplication *a = (NSRunningApplication *)app;
	return (force ? [a forceTerminate] : [a terminate]) ? 1 : 0;
}

static long long inputkit_app_arch(void *app) {
	return (long long)[(NSRunningApplication *)app executableArchitecture];
}

static char *inputkit_app_bundle_id(void *app) {
	@autoreleasepool {
		NSString *s = [(NSRunningApplication *)app bundleIdentifier];
		return s ? strdup([s UTF8String]) : NULL;
	}
}

static char *inputkit_app_exec_path(void *app) {
	@autoreleasepool {
		NSURL *u = [(NSRunningApplication *)app executableURL];
		return u ? strdup([[u path] UTF8String]) : NULL;
	}
}

static char *inputkit_app_name(void *app) {
	@autoreleasepool {
		NSString *s = [(NSRunningApplication *)app localizedName];
		return s ? strdup([s UTF8String]) : NULL;
	}
}
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/seezol/inputkit/internal/native"
)

// App wraps one owned reference to a running process's application
// object. Dropping the wrapper releases the reference; it never
// terminates the process.
type App struct {
	ref *native.Ref
}

// FromPID looks up the running application with the given process id.
// Reports false when no running process has that id.
func FromPID(pid int32) (*App, bool) {
	ref, ok := native.NS(unsafe.Pointer(C.inputkit_app_from_pid(C.int(pid))))
	if !ok {
		return nil, false
	}
	return &App{ref: ref}, true
}

var (
	currentOnce sync.Once
	currentApp  *App
)

// Current returns the handle for the calling process itself: a
// process-wide singleton, initialized at most once and never released.
func Current() *App {
	currentOnce.Do(func() {
		if ref, ok := native.NS(unsafe.Pointer(C.inputkit_app_current())); ok {
			currentApp = &App{ref: ref}
		}
	})
	return currentApp
}

// ns returns the wrapped application object for native calls.
func (a *App) ns() unsafe.Pointer {
	return a.ref.Ptr()
}

// PID returns the application's process id. Reports false once the
// process has exited and the OS no longer carries an id for it.
func (a *App) PID() (int32, bool) {
	pid := int32(C.inputkit_app_pid(a.ns()))
	if pid < 0 {
		return 0, false
	}
	return pid, true
}

// Hidden reports whether the application is currently hidden.
func (a *App) Hidden() bool {
	return C.inputkit_app_hidden(a.ns()) != 0
}

// Active reports whether the application is frontmost.
func (a *App) Active() bool {
	return C.inputkit_app_active(a.ns()) != 0
}

// Terminated reports whether the application has exited.
func (a *App) Terminated() bool {
	return C.inputkit_app_terminated(a.ns()) != 0
}

// SetHidden hides or unhides the application. Returns whether the OS
// reports success; this can fail when the app already quit or cannot
// be hidden.
func (a *App) SetHidden(hidden bool) bool {
	flag := C.int(0)
	if hidden {
		flag = 1
	}
	return C.inputkit_app_set_hidden(a.ns(), flag) != 0
}

// Activate brings the application forward. Returns whether activation
// succeeded. See ActivateIgnoringOtherApps before using it: it steals
// input focus from the user.
func (a *App) Activate(opts ActivationOptions) bool {
	return C.inputkit_app_activate(a.ns(), C.ulonglong(opts)) != 0
}

// Terminate asks the application to quit, forcefully when force is
// set. Returns whether the request was accepted, not whether the
// process actually exited.
func (a *App) Terminate(force bool) bool {
	flag := C.int(0)
	if force {
		flag = 1
	}
	return C.inputkit_app_terminate(a.ns(), flag) != 0
}

// Architecture returns the executable architecture of the application.
func (a *App) Architecture() Architecture {
	return Architecture(C.inputkit_app_arch(a.ns()))
}

// BundleIdentifier returns the application's bundle id. Reports false
// when the OS has no bundle metadata for the process.
func (a *App) BundleIdentifier() (string, bool) {
	return goString(C.inputkit_app_bundle_id(a.ns()))
}

// ExecutablePath returns the path of the application's executable.
// Reports false when unavailable.
func (a *App) ExecutablePath() (string, bool) {
	return goString(C.inputkit_app_exec_path(a.ns()))
}

// LocalizedName returns the application's display name. Reports false
// when unavailable.
func (a *App) LocalizedName() (string, bool) {
	return goString(C.inputkit_app_name(a.ns()))
}

// Close releases the owned native reference. Do not close the Current
// singleton; it lives for the process lifetime.
func (a *App) Close() {
	a.ref.Release()
}

// goString adopts a malloc'd C string, freeing it.
func goString(cs *C.char) (string, bool) {
	if cs == nil {
		return "", false
	}
	defer C.free(unsafe.Pointer(cs))
	return C.GoString(cs), true
}
