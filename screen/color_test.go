package screen

import (
	"math"
	"testing"
)

// TestNormalized_Bounds verifies channel scaling at the extremes.
func TestNormalized_Bounds(t *testing.T) {
	r, g, b := RGB{R: 0, G: 128, B: 255}.Normalized()
	if r != 0 {
		t.Fatalf("expected 0, got %v", r)
	}
	if b != 1 {
		t.Fatalf("expected 1, got %v", b)
	}
	if g <= 0.5-0.01 || g >= 0.5+0.01 {
		t.Fatalf("expected about 0.5, got %v", g)
	}
}

// TestFromNormalized_RoundTrip verifies byte channels survive a
// normalize/denormalize cycle.
func TestFromNormalized_RoundTrip(t *testing.T) {
	for _, c := range []RGB{{0, 0, 0}, {255, 255, 255}, {12, 200, 99}} {
		r, g, b := c.Normalized()
		if got := FromNormalized(r, g, b); got != c {
			t.Fatalf("expected %+v, got %+v", c, got)
		}
	}
}

// TestFromNormalized_Clamps verifies out-of-range and NaN channels
// clamp instead of wrapping.
func TestFromNormalized_Clamps(t *testing.T) {
	c := FromNormalized(-0.5, 2.0, math.NaN())
	if c != (RGB{R: 0, G: 255, B: 0}) {
		t.Fatalf("expected clamped {0 255 0}, got %+v", c)
	}
}
