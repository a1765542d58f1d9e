package screen

import (
	"math"
	"testing"
)

// TestColorAt_NonFinite verifies degenerate coordinates yield no color
// without reaching a native call.
func TestColorAt_NonFinite(t *testing.T) {
	cases := [][2]float64{
		{math.NaN(), 0},
		{0, math.NaN()},
		{math.Inf(1), math.Inf(1)},
		{math.Inf(-1), 5},
	}
	for _, p := range cases {
		if _, ok := ColorAt(1, p[0], p[1]); ok {
			t.Fatalf("(%v,%v): expected no color", p[0], p[1])
		}
	}
}

// recordingSample returns a capture fake that records positions and
// yields a fixed color.
func recordingSample(positions *[][2]float64) func(DisplayID, float64, float64) (RGB, bool) {
	return func(d DisplayID, x, y float64) (RGB, bool) {
		*positions = append(*positions, [2]float64{x, y})
		return RGB{R: 1, G: 2, B: 3}, true
	}
}

// TestSampler_ReexecutesAtCurrentPosition verifies each advance
// captures at the position held at that moment.
func TestSampler_ReexecutesAtCurrentPosition(t *testing.T) {
	var positions [][2]float64
	s := &Sampler{Display: 7, X: 10, Y: 20, sample: recordingSample(&positions)}

	if _, ok := s.Next(); !ok {
		t.Fatal("capture should succeed")
	}
	s.MoveTo(30, 40)
	if _, ok := s.Next(); !ok {
		t.Fatal("capture should succeed")
	}

	if len(positions) != 2 {
		t.Fatalf("expected 2 captures, got %d", len(positions))
	}
	if positions[0] != [2]float64{10, 20} || positions[1] != [2]float64{30, 40} {
		t.Fatalf("captures at wrong positions: %v", positions)
	}
}

// TestSampler_NonFinitePosition verifies a sampler moved to a
// degenerate position yields no color instead of capturing.
func TestSampler_NonFinitePosition(t *testing.T) {
	var positions [][2]float64
	s := &Sampler{Display: 1, sample: recordingSample(&positions)}
	s.MoveTo(math.NaN(), 0)

	if _, ok := s.Next(); ok {
		t.Fatal("expected no color at NaN position")
	}
	if len(positions) != 0 {
		t.Fatal("capture fake should not run for NaN position")
	}
}

// TestColors_EndsWhenCaptureFails verifies the sequence stops at the
// first failed capture.
func TestColors_EndsWhenCaptureFails(t *testing.T) {
	remaining := 3
	s := &Sampler{Display: 1, sample: func(DisplayID, float64, float64) (RGB, bool) {
		if remaining == 0 {
			return RGB{}, false
		}
		remaining--
		return RGB{R: 9}, true
	}}

	got := 0
	for c := range colors(s) {
		if c.R != 9 {
			t.Fatalf("unexpected color %+v", c)
		}
		got++
	}
	if got != 3 {
		t.Fatalf("expected 3 colors, got %d", got)
	}
}
