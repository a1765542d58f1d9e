//go:build windows

package event

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
)

// wheelDelta is the WinAPI line-scroll quantum.
const wheelDelta = 120

// Event is a deferred input description materialized as SendInput
// records at post time. Windows has no retained native event object,
// so clones are plain value copies and flags are in-process only.
type Event struct {
	kind   eventType
	button Button
	x      float64
	y      float64
	key    uint16
	keyUp  bool
	unit   ScrollUnit
	deltas []int32
	flags  Flags
}

// Flags returns the in-process modifier flags.
func (e *Event) Flags() Flags {
	return e.flags
}

// SetFlags overwrites the in-process modifier flags. SendInput does
// not carry a modifier mask, so flags only round-trip locally here.
func (e *Event) SetFlags(f Flags) {
	e.flags = f
}

// EnableFlags ORs the given flags into the current set.
func (e *Event) EnableFlags(f Flags) {
	e.flags |= f
}

// Post dispatches the event through SendInput. Windows exposes a
// single injection point, so the tap is accepted and ignored. Posting
// reads the deferred description without mutating it, so the same
// event posts repeatedly.
func (e *Event) Post(tap Tap) error {
	_ = tap
	for _, rec := range e.buildRecords() {
		if err := sendRecord(rec); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns an independent copy. No native reference exists on
// Windows, so a value copy is already safe.
func (e *Event) Clone() (*Event, error) {
	dup := *e
	dup.deltas = make([]int32, len(e.deltas))
	copy(dup.deltas, e.deltas)
	return &dup, nil
}

// Close releases nothing on Windows; present for API symmetry.
func (e *Event) Close() {}

// location returns the stored event location.
func (e *Event) location() (float64, float64) {
	return e.x, e.y
}

// setLocation updates the stored event location.
func (e *Event) setLocation(x, y float64) {
	e.x = x
	e.y = y
}

// locationUnflipped flips the vertical axis against the primary
// screen height.
func (e *Event) locationUnflipped() (float64, float64) {
	return e.x, float64(win.GetSystemMetrics(win.SM_CYSCREEN)) - e.y
}

// newKeyboardEvent builds a deferred keyboard event.
func newKeyboardEvent(key uint16, down bool) (*Event, error) {
	t := etKeyDown
	if !down {
		t = etKeyUp
	}
	return &Event{kind: t, key: key, keyUp: !down}, nil
}

// newMouseEvent builds a deferred mouse event.
func newMouseEvent(t eventType, button Button, x, y float64) (*Event, error) {
	return &Event{kind: t, button: button, x: x, y: y}, nil
}

// newWheelEvent builds a deferred scroll event. Windows has no third
// scroll axis; a third delta is carried but not posted.
func newWheelEvent(unit ScrollUnit, deltas []int32) (*Event, error) {
	held := make([]int32, len(deltas))
	copy(held, deltas)
	return &Event{kind: etScrollWheel, unit: unit, deltas: held}, nil
}

// inputRecord is one deferred SendInput record. lxn/win has no INPUT
// union type, so the record stays backend-neutral here and picks
// win.MOUSE_INPUT or win.KEYBD_INPUT at send time.
type inputRecord struct {
	keyboard bool
	mi       win.MOUSEINPUT
	ki       win.KEYBDINPUT
}

// buildRecords renders the event into SendInput records without
// touching the OS.
func (e *Event) buildRecords() []inputRecord {
	switch e.kind {
	case etKeyDown, etKeyUp:
		ki := win.KEYBDINPUT{WVk: e.key}
		if e.keyUp {
			ki.DwFlags = win.KEYEVENTF_KEYUP
		}
		return []inputRecord{{keyboard: true, ki: ki}}
	case etScrollWheel:
		return e.buildWheelRecords()
	default:
		return e.buildMouseRecords()
	}
}

// buildMouseRecords renders button and motion records. Button events
// lead with an absolute move so the click lands at the event location,
// matching the retained-location semantics of the darwin backend.
func (e *Event) buildMouseRecords() []inputRecord {
	dx, dy := mapAbsolute(int(e.x), int(e.y))
	move := inputRecord{mi: win.MOUSEINPUT{
		Dx:      dx,
		Dy:      dy,
		DwFlags: win.MOUSEEVENTF_MOVE | win.MOUSEEVENTF_ABSOLUTE | win.MOUSEEVENTF_VIRTUALDESK,
	}}

	var buttonFlag uint32
	switch e.kind {
	case etLeftMouseDown:
		buttonFlag = win.MOUSEEVENTF_LEFTDOWN
	case etLeftMouseUp:
		buttonFlag = win.MOUSEEVENTF_LEFTUP
	case etRightMouseDown:
		buttonFlag = win.MOUSEEVENTF_RIGHTDOWN
	case etRightMouseUp:
		buttonFlag = win.MOUSEEVENTF_RIGHTUP
	default:
		// Moves and drags are a bare motion record; the held
		// button state lives in the OS, not the event.
		return []inputRecord{move}
	}

	press := inputRecord{mi: win.MOUSEINPUT{DwFlags: buttonFlag}}
	return []inputRecord{move, press}
}

// buildWheelRecords renders vertical and horizontal wheel records.
func (e *Event) buildWheelRecords() []inputRecord {
	scale := int32(1)
	if e.unit == UnitLine {
		scale = wheelDelta
	}

	var records []inputRecord
	if len(e.deltas) >= 1 && e.deltas[0] != 0 {
		records = append(records, inputRecord{mi: win.MOUSEINPUT{
			MouseData: uint32(e.deltas[0] * scale),
			DwFlags:   win.MOUSEEVENTF_WHEEL,
		}})
	}
	if len(e.deltas) >= 2 && e.deltas[1] != 0 {
		records = append(records, inputRecord{mi: win.MOUSEINPUT{
			MouseData: uint32(e.deltas[1] * scale),
			DwFlags:   win.MOUSEEVENTF_HWHEEL,
		}})
	}
	return records
}

// sendRecord dispatches a single record through SendInput with the
// concrete lxn/win input struct for its device.
func sendRecord(rec inputRecord) error {
	var sent uint32
	if rec.keyboard {
		input := win.KEYBD_INPUT{Type: win.INPUT_KEYBOARD, Ki: rec.ki}
		sent = win.SendInput(1, unsafe.Pointer(&input), int32(unsafe.Sizeof(input)))
	} else {
		input := win.MOUSE_INPUT{Type: win.INPUT_MOUSE, Mi: rec.mi}
		sent = win.SendInput(1, unsafe.Pointer(&input), int32(unsafe.Sizeof(input)))
	}
	if sent != 1 {
		return fmt.Errorf("SendInput failed: %w", syscall.GetLastError())
	}
	return nil
}

// mapAbsolute converts screen coordinates to the WinAPI absolute range.
func mapAbsolute(x, y int) (int32, int32) {
	vx := win.GetSystemMetrics(win.SM_XVIRTUALSCREEN)
	vy := win.GetSystemMetrics(win.SM_YVIRTUALSCREEN)
	vw := win.GetSystemMetrics(win.SM_CXVIRTUALSCREEN)
	vh := win.GetSystemMetrics(win.SM_CYVIRTUALSCREEN)
	if vw <= 1 {
		vw = 2
	}
	if vh <= 1 {
		vh = 2
	}
	dx := (int64(x) - int64(vx)) * 65535 / int64(vw-1)
	dy := (int64(y) - int64(vy)) * 65535 / int64(vh-1)
	return int32(dx), int32(dy)
}
