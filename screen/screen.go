// Package screen enumerates displays and samples on-screen pixels.
package screen

import "errors"

// ErrUnsupported indicates display access is not available on this platform.
var ErrUnsupported = errors.New("display access is not supported on this platform")

// DisplayID identifies an attached display. It is an opaque OS-assigned
// value used purely as a lookup key; holding one owns nothing.
type DisplayID uint32

// Rect is a rectangle in display-space coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Display describes an attached display and its static geometry.
type Display struct {
	ID      DisplayID
	Bounds  Rect
	Primary bool
}

// Main returns the main display: the display whose screen location is
// (0,0) in the global display coordinate space, typically the one
// carrying the menu bar or taskbar.
func Main() (Display, error) {
	return mainDisplay()
}

// Active returns all displays that are active and drawable. The main
// display comes first.
func Active() ([]Display, error) {
	return activeDisplays()
}

// Online returns all connected displays, including mirrored and
// sleeping ones that are not currently drawable.
func Online() ([]Display, error) {
	return onlineDisplays()
}
