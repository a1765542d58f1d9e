package control

import "github.com/seezol/inputkit/event"

// Injector defines the input operations used by the control layer.
type Injector interface {
	Move(x, y float64) error
	Drag(button event.Button, x, y float64) error
	ButtonDown(button event.Button, x, y float64) error
	ButtonUp(button event.Button, x, y float64) error
	Click(button event.Button, x, y float64) error
	Key(code uint16, down bool) error
	Scroll(unit event.ScrollUnit, deltas ...int32) error
}

// SystemInjector posts synthesized events to the OS. The tap is read
// per post so a running server can retarget it.
type SystemInjector struct {
	tap func() event.Tap
}

// Ensure SystemInjector implements the interface.
var _ Injector = (*SystemInjector)(nil)

// NewSystemInjector returns an injector posting at the tap the given
// function reports.
func NewSystemInjector(tap func() event.Tap) *SystemInjector {
	if tap == nil {
		tap = func() event.Tap { return event.TapHID }
	}
	return &SystemInjector{tap: tap}
}

// postMouse builds, posts, and closes one mouse event.
func (s *SystemInjector) postMouse(button event.Button, kind event.MouseKind, x, y float64) error {
	ev, err := event.NewMouse(button, kind, x, y)
	if err != nil {
		return err
	}
	defer ev.Close()
	return ev.Post(s.tap())
}

// Move posts a cursor move with no button held.
func (s *SystemInjector) Move(x, y float64) error {
	return s.postMouse(event.ButtonLeft, event.KindMoved, x, y)
}

// Drag posts a cursor move with the given button held.
func (s *SystemInjector) Drag(button event.Button, x, y float64) error {
	return s.postMouse(button, event.KindDragged, x, y)
}

// ButtonDown posts a button press at a position.
func (s *SystemInjector) ButtonDown(button event.Button, x, y float64) error {
	return s.postMouse(button, event.KindDown, x, y)
}

// ButtonUp posts a button release at a position.
func (s *SystemInjector) ButtonUp(button event.Button, x, y float64) error {
	return s.postMouse(button, event.KindUp, x, y)
}

// Click posts a press and release at a position.
func (s *SystemInjector) Click(button event.Button, x, y float64) error {
	if err := s.ButtonDown(button, x, y); err != nil {
		return err
	}
	return s.ButtonUp(button, x, y)
}

// Key posts a key press or release.
func (s *SystemInjector) Key(code uint16, down bool) error {
	ev, err := event.NewKeyboard(code, down)
	if err != nil {
		return err
	}
	defer ev.Close()
	return ev.Post(s.tap())
}

// Scroll posts one wheel turn.
func (s *SystemInjector) Scroll(unit event.ScrollUnit, deltas ...int32) error {
	ev, err := event.NewWheel(unit, deltas...)
	if err != nil {
		return err
	}
	defer ev.Close()
	return ev.Post(s.tap())
}
