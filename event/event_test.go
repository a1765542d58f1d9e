package event

import (
	"errors"
	"math"
	"testing"
)

// TestMouseEventType_DistinctButtons verifies left and right presses
// map to distinct native type codes.
func TestMouseEventType_DistinctButtons(t *testing.T) {
	left, ok := mouseEventType(ButtonLeft, KindDown)
	if !ok {
		t.Fatal("left down should map")
	}
	right, ok := mouseEventType(ButtonRight, KindDown)
	if !ok {
		t.Fatal("right down should map")
	}
	if left == right {
		t.Fatalf("left and right down share type code %d", left)
	}
}

// TestMouseEventType_SharedMoved verifies both buttons collapse to the
// same Moved type code, matching the native event model.
func TestMouseEventType_SharedMoved(t *testing.T) {
	fromLeft, ok := mouseEventType(ButtonLeft, KindMoved)
	if !ok {
		t.Fatal("left moved should map")
	}
	fromRight, ok := mouseEventType(ButtonRight, KindMoved)
	if !ok {
		t.Fatal("right moved should map")
	}
	if fromLeft != fromRight {
		t.Fatalf("moved should be shared, got %d and %d", fromLeft, fromRight)
	}
	if fromLeft != etMouseMoved {
		t.Fatalf("expected type %d, got %d", etMouseMoved, fromLeft)
	}
}

// TestMouseEventType_Table verifies the full fixed mapping.
func TestMouseEventType_Table(t *testing.T) {
	cases := []struct {
		button Button
		kind   MouseKind
		want   eventType
	}{
		{ButtonLeft, KindDown, etLeftMouseDown},
		{ButtonLeft, KindUp, etLeftMouseUp},
		{ButtonLeft, KindDragged, etLeftMouseDragged},
		{ButtonRight, KindDown, etRightMouseDown},
		{ButtonRight, KindUp, etRightMouseUp},
		{ButtonRight, KindDragged, etRightMouseDragged},
	}
	for _, tc := range cases {
		got, ok := mouseEventType(tc.button, tc.kind)
		if !ok {
			t.Fatalf("(%d,%d) should map", tc.button, tc.kind)
		}
		if got != tc.want {
			t.Fatalf("(%d,%d): expected %d, got %d", tc.button, tc.kind, tc.want, got)
		}
	}
}

// TestMouseEventType_Unmapped verifies unknown buttons do not map.
func TestMouseEventType_Unmapped(t *testing.T) {
	if _, ok := mouseEventType(Button(9), KindDown); ok {
		t.Fatal("unknown button should not map")
	}
}

// TestNewWheel_RejectsBadCounts verifies delta counts outside 1-3 fail
// before any native call.
func TestNewWheel_RejectsBadCounts(t *testing.T) {
	if _, err := NewWheel(UnitLine); !errors.Is(err, ErrWheelCount) {
		t.Fatalf("0 deltas: expected ErrWheelCount, got %v", err)
	}
	if _, err := NewWheel(UnitLine, 1, 2, 3, 4); !errors.Is(err, ErrWheelCount) {
		t.Fatalf("4 deltas: expected ErrWheelCount, got %v", err)
	}
}

// TestNewWheel_AcceptsValidCounts verifies 1-3 deltas pass validation.
// On platforms without a backend the constructor may still report
// ErrUnsupported, but never ErrWheelCount.
func TestNewWheel_AcceptsValidCounts(t *testing.T) {
	for _, deltas := range [][]int32{{-5}, {-5, 20}, {-5, 20, 3}} {
		ev, err := NewWheel(UnitLine, deltas...)
		if errors.Is(err, ErrWheelCount) {
			t.Fatalf("%d deltas: unexpected ErrWheelCount", len(deltas))
		}
		if err == nil {
			ev.Close()
		}
	}
}

// TestNewMouse_NonFinite verifies non-finite locations are rejected
// before reaching the OS.
func TestNewMouse_NonFinite(t *testing.T) {
	bad := [][2]float64{
		{math.NaN(), 0},
		{0, math.NaN()},
		{math.Inf(1), math.Inf(1)},
		{math.Inf(-1), 0},
	}
	for _, p := range bad {
		if _, err := NewMouse(ButtonLeft, KindDown, p[0], p[1]); !errors.Is(err, ErrBadMouseSpec) {
			t.Fatalf("(%v,%v): expected ErrBadMouseSpec, got %v", p[0], p[1], err)
		}
	}
}

// TestFinitePoint verifies the coordinate guard.
func TestFinitePoint(t *testing.T) {
	if !finitePoint(123.0, -45.5) {
		t.Fatal("finite pair should pass")
	}
	if finitePoint(math.NaN(), 0) || finitePoint(0, math.Inf(1)) {
		t.Fatal("non-finite pair should fail")
	}
}

// TestTapValues verifies the tap codes match CGEventTapLocation.
func TestTapValues(t *testing.T) {
	if TapHID != 0 || TapSession != 1 || TapAnnotatedSession != 2 {
		t.Fatalf("tap codes out of sync: %d %d %d", TapHID, TapSession, TapAnnotatedSession)
	}
}
