package event

// MouseEvent is a postable mouse press, release, move, or drag at a
// screen location.
type MouseEvent struct {
	*Event
	button Button
	kind   MouseKind
}

// NewMouse creates a mouse event at (x, y) in global screen
// coordinates (top-left origin). The location must be finite and the
// button/kind pair must map to a native event type.
func NewMouse(button Button, kind MouseKind, x, y float64) (*MouseEvent, error) {
	if !finitePoint(x, y) {
		return nil, ErrBadMouseSpec
	}
	t, ok := mouseEventType(button, kind)
	if !ok {
		return nil, ErrBadMouseSpec
	}
	ev, err := newMouseEvent(t, button, x, y)
	if err != nil {
		return nil, err
	}
	return &MouseEvent{Event: ev, button: button, kind: kind}, nil
}

// Button returns the button the event was built with. Note that for
// KindMoved the posted event does not carry the button.
func (e *MouseEvent) Button() Button {
	return e.button
}

// Kind returns the interaction kind the event was built with.
func (e *MouseEvent) Kind() MouseKind {
	return e.kind
}

// Location returns the event location in global screen coordinates
// (top-left origin).
func (e *MouseEvent) Location() (x, y float64) {
	return e.location()
}

// SetLocation moves the event to (x, y) in global screen coordinates.
// Non-finite coordinates are rejected before reaching the OS.
func (e *MouseEvent) SetLocation(x, y float64) error {
	if !finitePoint(x, y) {
		return ErrBadMouseSpec
	}
	e.setLocation(x, y)
	return nil
}

// LocationUnflipped returns the event location with a bottom-left
// origin, the coordinate space used by Cocoa displays.
func (e *MouseEvent) LocationUnflipped() (x, y float64) {
	return e.locationUnflipped()
}
