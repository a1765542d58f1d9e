//go:build !darwin && !windows

package event

// Event is a placeholder on platforms without an injection backend.
type Event struct {
	flags Flags
}

// Flags returns the in-process modifier flags.
func (e *Event) Flags() Flags {
	return e.flags
}

// SetFlags overwrites the in-process modifier flags.
func (e *Event) SetFlags(f Flags) {
	e.flags = f
}

// EnableFlags ORs the given flags into the current set.
func (e *Event) EnableFlags(f Flags) {
	e.flags |= f
}

// Post returns ErrUnsupported.
func (e *Event) Post(tap Tap) error {
	_ = tap
	return ErrUnsupported
}

// Clone returns ErrUnsupported.
func (e *Event) Clone() (*Event, error) {
	return nil, ErrUnsupported
}

// Close releases nothing on this platform.
func (e *Event) Close() {}

// location returns the zero location.
func (e *Event) location() (float64, float64) {
	return 0, 0
}

// setLocation discards the location.
func (e *Event) setLocation(x, y float64) {
	_, _ = x, y
}

// locationUnflipped returns the zero location.
func (e *Event) locationUnflipped() (float64, float64) {
	return 0, 0
}

// newKeyboardEvent returns ErrUnsupported.
func newKeyboardEvent(key uint16, down bool) (*Event, error) {
	_, _ = key, down
	return nil, ErrUnsupported
}

// newMouseEvent returns ErrUnsupported.
func newMouseEvent(t eventType, button Button, x, y float64) (*Event, error) {
	_, _, _, _ = t, button, x, y
	return nil, ErrUnsupported
}

// newWheelEvent returns ErrUnsupported.
func newWheelEvent(unit ScrollUnit, deltas []int32) (*Event, error) {
	_, _ = unit, deltas
	return nil, ErrUnsupported
}
