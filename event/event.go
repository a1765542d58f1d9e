// Package event builds and posts synthetic input events.
package event

import "errors"

// ErrUnsupported indicates event synthesis is not available on this platform.
var ErrUnsupported = errors.New("event synthesis is not supported on this platform")

// ErrEventCreate indicates the native event constructor returned no event.
var ErrEventCreate = errors.New("native event creation failed")

// ErrWheelCount indicates a scroll wheel delta count outside 1-3.
var ErrWheelCount = errors.New("wheel event requires 1 to 3 deltas")

// ErrBadMouseSpec indicates an unmapped button/kind pair or a
// non-finite location.
var ErrBadMouseSpec = errors.New("invalid mouse event parameters")

// Tap selects the injection point in the OS event pipeline. Values
// match CGEventTapLocation.
type Tap uint32

const (
	// TapHID posts at the HID system level, before session filtering.
	TapHID Tap = 0
	// TapSession posts into the current login session.
	TapSession Tap = 1
	// TapAnnotatedSession posts into the session, annotated as
	// coming from this process.
	TapAnnotatedSession Tap = 2
)

// Flags is a bit-set of modifier and state indicators attached to an
// event. Bit layout matches CGEventFlags.
type Flags uint64

const (
	// FlagNonCoalesced marks the event as exempt from coalescing.
	FlagNonCoalesced Flags = 1 << 8
	// FlagAlphaShift indicates Caps Lock.
	FlagAlphaShift Flags = 1 << 16
	// FlagShift indicates a Shift key.
	FlagShift Flags = 1 << 17
	// FlagControl indicates a Control key.
	FlagControl Flags = 1 << 18
	// FlagAlternate indicates an Option/Alt key.
	FlagAlternate Flags = 1 << 19
	// FlagCommand indicates a Command key.
	FlagCommand Flags = 1 << 20
	// FlagNumericPad indicates a numeric keypad or arrow key.
	FlagNumericPad Flags = 1 << 21
	// FlagHelp indicates the Help key.
	FlagHelp Flags = 1 << 22
	// FlagSecondaryFn indicates the Fn key.
	FlagSecondaryFn Flags = 1 << 23
)

// Poster is the capability shared by every typed event: flag access
// and posting into the OS event stream. Posting is fire-and-forget and
// never consumes the event; the same event may be posted repeatedly.
type Poster interface {
	Flags() Flags
	SetFlags(Flags)
	EnableFlags(Flags)
	Post(Tap) error
}

// Typed events delegate the Poster capability to the embedded Event.
var (
	_ Poster = (*Event)(nil)
	_ Poster = (*KeyboardEvent)(nil)
	_ Poster = (*MouseEvent)(nil)
	_ Poster = (*WheelEvent)(nil)
)
