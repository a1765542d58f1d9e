// Package native owns references to reference-counted OS objects.
package native

import (
	"runtime"
	"sync/atomic"
	"unsafe"
)

// RetainFunc acquires an additional reference to a native object and
// returns the retained pointer.
type RetainFunc func(unsafe.Pointer) unsafe.Pointer

// ReleaseFunc gives up one reference to a native object.
type ReleaseFunc func(unsafe.Pointer)

// Ref owns exactly one reference to a native object. The zero value is
// not usable; construct through Wrap or a platform helper.
type Ref struct {
	ptr      unsafe.Pointer
	retain   RetainFunc
	release  ReleaseFunc
	released atomic.Bool
}

// Wrap takes ownership of one existing reference to ptr. It reports
// false for a nil pointer so failed native constructors surface as
// absence instead of a wrapped nil.
func Wrap(ptr unsafe.Pointer, retain RetainFunc, release ReleaseFunc) (*Ref, bool) {
	if ptr == nil {
		return nil, false
	}
	r := &Ref{ptr: ptr, retain: retain, release: release}
	// Backstop for refs dropped without an explicit Release.
	runtime.SetFinalizer(r, (*Ref).Release)
	return r, true
}

// Ptr returns the wrapped pointer, or nil once the ref is released.
func (r *Ref) Ptr() unsafe.Pointer {
	if r.released.Load() {
		return nil
	}
	return r.ptr
}

// Retain produces an independent Ref through the native retain
// primitive. A bit-copy would leave the OS reference count short, so
// this is the only sanctioned duplication path. Returns nil when the
// ref is already released or the family has no retain primitive.
func (r *Ref) Retain() *Ref {
	if r.released.Load() || r.retain == nil {
		return nil
	}
	dup, ok := Wrap(r.retain(r.ptr), r.retain, r.release)
	if !ok {
		return nil
	}
	return dup
}

// Release gives up the owned reference. The first call runs the native
// release; later calls and the finalizer are no-ops.
func (r *Ref) Release() {
	if r.released.Swap(true) {
		return
	}
	runtime.SetFinalizer(r, nil)
	if r.release != nil {
		r.release(r.ptr)
	}
}

// Released reports whether the owned reference has been given up.
func (r *Ref) Released() bool {
	return r.released.Load()
}
