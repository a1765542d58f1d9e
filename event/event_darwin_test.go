//go:build darwin

package event

import (
	"testing"

	"github.com/seezol/inputkit/mouse"
)

// TestKeyboardFlags_RoundTrip verifies flags written to a native event
// read back unchanged.
func TestKeyboardFlags_RoundTrip(t *testing.T) {
	ev, err := NewKeyboard(0x00, true)
	if err != nil {
		t.Skipf("no event backend available: %v", err)
	}
	defer ev.Close()

	want := FlagShift | FlagCommand
	ev.SetFlags(want)
	if got := ev.Flags(); got != want {
		t.Fatalf("expected flags %#x, got %#x", want, got)
	}

	ev.EnableFlags(FlagAlternate)
	if got := ev.Flags(); got != want|FlagAlternate {
		t.Fatalf("expected flags %#x, got %#x", want|FlagAlternate, got)
	}
}

// TestMouseLocation_RoundTrip verifies a written location reads back.
func TestMouseLocation_RoundTrip(t *testing.T) {
	ev, err := NewMouse(ButtonLeft, KindMoved, 0, 0)
	if err != nil {
		t.Skipf("no event backend available: %v", err)
	}
	defer ev.Close()

	if err := ev.SetLocation(123.0, 45.0); err != nil {
		t.Fatalf("SetLocation failed: %v", err)
	}
	x, y := ev.Location()
	if x != 123.0 || y != 45.0 {
		t.Fatalf("expected (123,45), got (%v,%v)", x, y)
	}
}

// TestClone_SurvivesSourceClose verifies a clone owns an independent
// native reference and stays usable after the source is released.
func TestClone_SurvivesSourceClose(t *testing.T) {
	ev, err := NewKeyboard(0x00, true)
	if err != nil {
		t.Skipf("no event backend available: %v", err)
	}

	dup, err := ev.Clone()
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}
	defer dup.Close()

	ev.SetFlags(FlagShift)
	if dup.Flags()&FlagShift != 0 {
		t.Fatal("clone shares flag state with source")
	}

	ev.Close()
	// Reading the clone after the source is gone must be safe.
	_ = dup.Flags()
}

// TestPost_Repeatable verifies posting does not consume the event: the
// same event posts twice and keeps its flags and location. The event
// is a move to the cursor's current position so the test leaves the
// session untouched.
func TestPost_Repeatable(t *testing.T) {
	p, err := mouse.Location()
	if err != nil {
		t.Skipf("no cursor available: %v", err)
	}
	ev, err := NewMouse(ButtonLeft, KindMoved, p.X, p.Y)
	if err != nil {
		t.Skipf("no event backend available: %v", err)
	}
	defer ev.Close()
	ev.SetFlags(FlagShift)

	if err := ev.Post(TapSession); err != nil {
		t.Fatalf("first post failed: %v", err)
	}
	if err := ev.Post(TapSession); err != nil {
		t.Fatalf("second post failed: %v", err)
	}
	if got := ev.Flags(); got != FlagShift {
		t.Fatalf("flags changed by posting: %#x", got)
	}
	x, y := ev.Location()
	if x != p.X || y != p.Y {
		t.Fatalf("location changed by posting: (%v,%v)", x, y)
	}
}
