package screen

import (
	"iter"
	"math"
)

// finitePoint reports whether both coordinates are finite numbers.
func finitePoint(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) &&
		!math.IsNaN(y) && !math.IsInf(y, 0)
}

// ColorAt captures a 1x1 region of the display at (x, y) and returns
// its color. Reports false when no image can be captured there,
// including for NaN or infinite coordinates; degenerate input never
// panics, it just yields no color.
func ColorAt(d DisplayID, x, y float64) (RGB, bool) {
	if !finitePoint(x, y) {
		return RGB{}, false
	}
	return sampleColor(d, x, y)
}

// Sampler is a restartable color source over a mutable position. Move
// the position between advances to track a moving point without
// rebuilding the sampler.
type Sampler struct {
	Display DisplayID
	X       float64
	Y       float64
	sample  func(DisplayID, float64, float64) (RGB, bool)
}

// NewSampler returns a sampler for the display positioned at (x, y).
func NewSampler(d DisplayID, x, y float64) *Sampler {
	return &Sampler{Display: d, X: x, Y: y, sample: sampleColor}
}

// MoveTo repositions the sampler.
func (s *Sampler) MoveTo(x, y float64) {
	s.X = x
	s.Y = y
}

// Next captures the color at the current position. Reports false when
// no color is available there.
func (s *Sampler) Next() (RGB, bool) {
	if !finitePoint(s.X, s.Y) {
		return RGB{}, false
	}
	return s.sample(s.Display, s.X, s.Y)
}

// Colors returns a sequence of colors sampled at (x, y) on the
// display. Each advance re-captures at the same position; the sequence
// ends when a capture yields no color.
func Colors(d DisplayID, x, y float64) iter.Seq[RGB] {
	return colors(NewSampler(d, x, y))
}

// colors adapts a sampler into a range-over-func sequence.
func colors(s *Sampler) iter.Seq[RGB] {
	return func(yield func(RGB) bool) {
		for {
			c, ok := s.Next()
			if !ok {
				return
			}
			if !yield(c) {
				return
			}
		}
	}
}
