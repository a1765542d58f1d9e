//go:build darwin

package event

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation

#include <CoreGraphics/CoreGraphics.h>

static CGEventRef inputkit_keyboard_event(uint16_t key, bool down) {
	return CGEventCreateKeyboardEvent(NULL, (CGKeyCode)key, down);
}

static CGEventRef inputkit_mouse_event(uint32_t type, double x, double y, uint32_t button) {
	return CGEventCreateMouseEvent(NULL, (CGEventType)type,
		CGPointMake(x, y), (CGMouseButton)button);
}

// The scroll wheel constructor is variadic over the wheel count, so
// each arity gets its own entry point.
static CGEventRef inputkit_wheel_event1(uint32_t unit, int32_t w1) {
	return CGEventCreateScrollWheelEvent(NULL, (CGScrollEventUnit)unit, 1, w1);
}

static CGEventRef inputkit_wheel_event2(uint32_t unit, int32_t w1, int32_t w2) {
	return CGEventCreateScrollWheelEvent(NULL, (CGScrollEventUnit)unit, 2, w1, w2);
}

static CGEventRef inputkit_wheel_event3(uint32_t unit, int32_t w1, int32_t w2, int32_t w3) {
	return CGEventCreateScrollWheelEvent(NULL, (CGScrollEventUnit)unit, 3, w1, w2, w3);
}

static double inputkit_main_display_height(void) {
	return CGDisplayBounds(CGMainDisplayID()).size.height;
}
*/
import "C"

import (
	"unsafe"

	"github.com/seezol/inputkit/internal/native"
)

// Event wraps one owned native event reference. It is safe to move
// between goroutines and to read concurrently; concurrent mutation
// needs external synchronization.
type Event struct {
	ref *native.Ref
}

// wrapEvent takes ownership of a freshly created CGEventRef.
func wrapEvent(ptr unsafe.Pointer) (*Event, error) {
	ref, ok := native.CF(ptr)
	if !ok {
		return nil, ErrEventCreate
	}
	return &Event{ref: ref}, nil
}

// cg returns the wrapped event reference for native calls.
func (e *Event) cg() C.CGEventRef {
	return C.CGEventRef(e.ref.Ptr())
}

// Flags reads the current modifier flags from the native event.
func (e *Event) Flags() Flags {
	return Flags(C.CGEventGetFlags(e.cg()))
}

// SetFlags overwrites the modifier flags on the native event. The
// change only affects this in-process event until it is posted.
func (e *Event) SetFlags(f Flags) {
	C.CGEventSetFlags(e.cg(), C.CGEventFlags(f))
}

// EnableFlags ORs the given flags into the current set. The
// read-modify-write is not atomic; events are not meant to be mutated
// from two goroutines at once.
func (e *Event) EnableFlags(f Flags) {
	e.SetFlags(e.Flags() | f)
}

// Post submits the event to the OS event stream at the given tap. The
// side effect is global; the event stays valid and may be posted again.
func (e *Event) Post(tap Tap) error {
	C.CGEventPost(C.CGEventTapLocation(tap), e.cg())
	return nil
}

// Clone copies the native event, producing an Event that shares no
// reference with the source.
func (e *Event) Clone() (*Event, error) {
	return wrapEvent(unsafe.Pointer(C.CGEventCreateCopy(e.cg())))
}

// Close releases the owned native reference. Safe to call more than
// once; clones stay valid.
func (e *Event) Close() {
	e.ref.Release()
}

// location reads the event location, top-left origin.
func (e *Event) location() (float64, float64) {
	p := C.CGEventGetLocation(e.cg())
	return float64(p.x), float64(p.y)
}

// setLocation writes the event location, top-left origin.
func (e *Event) setLocation(x, y float64) {
	var p C.CGPoint
	p.x = C.CGFloat(x)
	p.y = C.CGFloat(y)
	C.CGEventSetLocation(e.cg(), p)
}

// locationUnflipped converts the event location into the bottom-left
// origin space of the main display.
func (e *Event) locationUnflipped() (float64, float64) {
	x, y := e.location()
	return x, float64(C.inputkit_main_display_height()) - y
}

// newKeyboardEvent creates a native keyboard event.
func newKeyboardEvent(key uint16, down bool) (*Event, error) {
	return wrapEvent(unsafe.Pointer(C.inputkit_keyboard_event(C.uint16_t(key), C.bool(down))))
}

// newMouseEvent creates a native mouse event of a known type code.
func newMouseEvent(t eventType, button Button, x, y float64) (*Event, error) {
	return wrapEvent(unsafe.Pointer(C.inputkit_mouse_event(
		C.uint32_t(t), C.double(x), C.double(y), C.uint32_t(button))))
}

// newWheelEvent creates a native scroll event, selecting the native
// arity by delta count. The caller has already validated the length.
func newWheelEvent(unit ScrollUnit, deltas []int32) (*Event, error) {
	u := C.uint32_t(unit)
	var ptr unsafe.Pointer
	switch len(deltas) {
	case 1:
		ptr = unsafe.Pointer(C.inputkit_wheel_event1(u, C.int32_t(deltas[0])))
	case 2:
		ptr = unsafe.Pointer(C.inputkit_wheel_event2(u, C.int32_t(deltas[0]), C.int32_t(deltas[1])))
	default:
		ptr = unsafe.Pointer(C.inputkit_wheel_event3(u, C.int32_t(deltas[0]), C.int32_t(deltas[1]), C.int32_t(deltas[2])))
	}
	return wrapEvent(ptr)
}
