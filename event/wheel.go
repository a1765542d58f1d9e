package event

// WheelEvent is a postable scroll wheel event with per-axis deltas.
type WheelEvent struct {
	*Event
	unit   ScrollUnit
	deltas []int32
}

// NewWheel creates a scroll event with unit-sized offsets, one delta
// per axis: vertical, horizontal, depth. The native constructor is
// variadic over exactly 1-3 wheels, so any other count fails with
// ErrWheelCount before a native call is made.
func NewWheel(unit ScrollUnit, deltas ...int32) (*WheelEvent, error) {
	if !validWheelLen(len(deltas)) {
		return nil, ErrWheelCount
	}
	ev, err := newWheelEvent(unit, deltas)
	if err != nil {
		return nil, err
	}
	held := make([]int32, len(deltas))
	copy(held, deltas)
	return &WheelEvent{Event: ev, unit: unit, deltas: held}, nil
}

// Unit returns the scroll unit the event was built with.
func (e *WheelEvent) Unit() ScrollUnit {
	return e.unit
}

// Deltas returns a copy of the per-axis deltas.
func (e *WheelEvent) Deltas() []int32 {
	out := make([]int32, len(e.deltas))
	copy(out, e.deltas)
	return out
}
