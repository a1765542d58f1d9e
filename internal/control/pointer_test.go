package control

import (
	"testing"
	"time"

	"github.com/seezol/inputkit/event"
)

// fakeClock advances a fixed amount on demand.
type fakeClock struct {
	t time.Time
}

// now returns the current fake time.
func (c *fakeClock) now() time.Time { return c.t }

// advance moves the fake time forward.
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// newTestPointer returns a pointer tracker on a controllable clock.
func newTestPointer() (*PointerState, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	p := NewPointerState(16*time.Millisecond, 2)
	p.SetNowFunc(clock.now)
	return p, clock
}

// TestPointerDownStartsHold verifies a down begins a hold and emits a
// press.
func TestPointerDownStartsHold(t *testing.T) {
	p, _ := newTestPointer()
	actions := p.HandleDown(true, event.ButtonRight, 10, 20)
	if len(actions) != 1 || actions[0].Type != ActDown || actions[0].Button != event.ButtonRight {
		t.Fatalf("unexpected actions: %+v", actions)
	}
}

// TestPointerMoveWhileHeldDrags verifies moves during a hold become
// drags of the held button.
func TestPointerMoveWhileHeldDrags(t *testing.T) {
	p, clock := newTestPointer()
	p.HandleDown(true, event.ButtonLeft, 0, 0)
	clock.advance(20 * time.Millisecond)

	actions := p.HandleMove(true, 30, 40)
	if len(actions) != 1 || actions[0].Type != ActDrag || actions[0].Button != event.ButtonLeft {
		t.Fatalf("unexpected actions: %+v", actions)
	}
}

// TestPointerMoveWithoutHoldMoves verifies moves with no hold are
// plain moves.
func TestPointerMoveWithoutHoldMoves(t *testing.T) {
	p, clock := newTestPointer()
	clock.advance(20 * time.Millisecond)
	actions := p.HandleMove(true, 5, 5)
	if len(actions) != 1 || actions[0].Type != ActMove {
		t.Fatalf("unexpected actions: %+v", actions)
	}
}

// TestPointerMoveThrottledByInterval verifies moves inside the
// throttle window are dropped.
func TestPointerMoveThrottledByInterval(t *testing.T) {
	p, clock := newTestPointer()
	p.HandleDown(true, event.ButtonLeft, 0, 0)

	clock.advance(5 * time.Millisecond)
	if actions := p.HandleMove(true, 50, 50); actions != nil {
		t.Fatalf("expected throttled move, got %+v", actions)
	}

	clock.advance(20 * time.Millisecond)
	if actions := p.HandleMove(true, 50, 50); len(actions) != 1 {
		t.Fatalf("expected move after window, got %+v", actions)
	}
}

// TestPointerMoveThrottledByDelta verifies sub-threshold jitter is
// dropped.
func TestPointerMoveThrottledByDelta(t *testing.T) {
	p, clock := newTestPointer()
	p.HandleDown(true, event.ButtonLeft, 100, 100)
	clock.advance(20 * time.Millisecond)

	if actions := p.HandleMove(true, 101, 100.5); actions != nil {
		t.Fatalf("expected jitter drop, got %+v", actions)
	}
	if actions := p.HandleMove(true, 103, 100); len(actions) != 1 {
		t.Fatalf("expected move past delta, got %+v", actions)
	}
}

// TestPointerUpEndsHold verifies an up releases and a second up is
// dropped.
func TestPointerUpEndsHold(t *testing.T) {
	p, _ := newTestPointer()
	p.HandleDown(true, event.ButtonLeft, 0, 0)

	actions := p.HandleUp(true, 1, 1)
	if len(actions) != 1 || actions[0].Type != ActUp || actions[0].Button != event.ButtonLeft {
		t.Fatalf("unexpected actions: %+v", actions)
	}
	if actions := p.HandleUp(true, 1, 1); actions != nil {
		t.Fatalf("expected orphan up drop, got %+v", actions)
	}
}

// TestPointerDisabledInputDropsAll verifies nothing is emitted while
// input is disabled.
func TestPointerDisabledInputDropsAll(t *testing.T) {
	p, clock := newTestPointer()
	if actions := p.HandleDown(false, event.ButtonLeft, 0, 0); actions != nil {
		t.Fatalf("down emitted while disabled: %+v", actions)
	}
	clock.advance(20 * time.Millisecond)
	if actions := p.HandleMove(false, 10, 10); actions != nil {
		t.Fatalf("move emitted while disabled: %+v", actions)
	}
	if actions := p.HandleUp(false, 10, 10); actions != nil {
		t.Fatalf("up emitted while disabled: %+v", actions)
	}
}

// TestActionsForWheelZeroDeltasDropped verifies an all-zero wheel
// message produces nothing.
func TestActionsForWheelZeroDeltasDropped(t *testing.T) {
	if actions := ActionsForWheel(true, event.UnitPixel, 0, 0); actions != nil {
		t.Fatalf("expected no actions, got %+v", actions)
	}
	actions := ActionsForWheel(true, event.UnitLine, -3, 1)
	if len(actions) != 1 || actions[0].Type != ActScroll {
		t.Fatalf("unexpected actions: %+v", actions)
	}
	if d := actions[0].Deltas; len(d) != 2 || d[0] != -3 || d[1] != 1 {
		t.Fatalf("unexpected deltas: %v", actions[0].Deltas)
	}
}

// TestActionsForKeyDisabled verifies key actions honor the input
// toggle.
func TestActionsForKeyDisabled(t *testing.T) {
	if actions := ActionsForKey(false, 0x24, true); actions != nil {
		t.Fatalf("expected no actions, got %+v", actions)
	}
	actions := ActionsForKey(true, 0x24, true)
	if len(actions) != 1 || actions[0].Key != 0x24 || !actions[0].Down {
		t.Fatalf("unexpected actions: %+v", actions)
	}
}
