package event

// KeyboardEvent is a postable key press or release for one virtual key.
type KeyboardEvent struct {
	*Event
	key  uint16
	down bool
}

// NewKeyboard creates an event for the virtual key. Native keyboard
// constructors do not fail in practice, but a nil native event still
// surfaces as an error rather than a wrapped nil handle.
func NewKeyboard(key uint16, down bool) (*KeyboardEvent, error) {
	ev, err := newKeyboardEvent(key, down)
	if err != nil {
		return nil, err
	}
	return &KeyboardEvent{Event: ev, key: key, down: down}, nil
}

// Key returns the virtual key code the event was built with.
func (e *KeyboardEvent) Key() uint16 {
	return e.key
}

// Down reports whether the event is a press rather than a release.
func (e *KeyboardEvent) Down() bool {
	return e.down
}
