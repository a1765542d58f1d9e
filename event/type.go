package event

import "math"

// Button identifies a mouse button. Values match CGMouseButton.
type Button uint32

const (
	// ButtonLeft is the primary mouse button.
	ButtonLeft Button = 0
	// ButtonRight is the secondary mouse button.
	ButtonRight Button = 1
)

// MouseKind is the interaction a mouse event describes.
type MouseKind uint8

const (
	// KindDown presses the button.
	KindDown MouseKind = iota
	// KindUp releases the button.
	KindUp
	// KindMoved moves the cursor with no button held.
	KindMoved
	// KindDragged moves the cursor while the button is held.
	KindDragged
)

// ScrollUnit is the measurement unit of wheel deltas. Values match
// CGScrollEventUnit.
type ScrollUnit uint32

const (
	// UnitPixel scrolls by pixels; most applications treat this as
	// smooth scrolling.
	UnitPixel ScrollUnit = 0
	// UnitLine scrolls by lines, roughly ten pixels per line.
	UnitLine ScrollUnit = 1
)

// eventType is a native event-type code. Values match CGEventType.
type eventType uint32

const (
	etLeftMouseDown     eventType = 1
	etLeftMouseUp       eventType = 2
	etRightMouseDown    eventType = 3
	etRightMouseUp      eventType = 4
	etMouseMoved        eventType = 5
	etLeftMouseDragged  eventType = 6
	etRightMouseDragged eventType = 7
	etKeyDown           eventType = 10
	etKeyUp             eventType = 11
	etScrollWheel       eventType = 22
)

// mouseEventType maps a (button, kind) pair to its native event-type
// code. Moved is shared by both buttons: the native event model does
// not encode a button on plain moves, and this layer preserves that.
func mouseEventType(button Button, kind MouseKind) (eventType, bool) {
	switch {
	case button == ButtonLeft && kind == KindDown:
		return etLeftMouseDown, true
	case button == ButtonLeft && kind == KindUp:
		return etLeftMouseUp, true
	case button == ButtonLeft && kind == KindDragged:
		return etLeftMouseDragged, true
	case button == ButtonRight && kind == KindDown:
		return etRightMouseDown, true
	case button == ButtonRight && kind == KindUp:
		return etRightMouseUp, true
	case button == ButtonRight && kind == KindDragged:
		return etRightMouseDragged, true
	case kind == KindMoved && (button == ButtonLeft || button == ButtonRight):
		return etMouseMoved, true
	default:
		return 0, false
	}
}

// validWheelLen reports whether a wheel delta count is postable. The
// native constructor is variadic over exactly 1-3 wheels.
func validWheelLen(n int) bool {
	return n >= 1 && n <= 3
}

// finitePoint reports whether both coordinates are finite numbers.
func finitePoint(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) &&
		!math.IsNaN(y) && !math.IsInf(y, 0)
}
