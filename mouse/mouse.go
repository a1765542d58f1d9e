// Package mouse queries and moves the system cursor.
package mouse

import (
	"errors"
	"iter"
	"math"
)

// ErrUnsupported indicates cursor access is not available on this platform.
var ErrUnsupported = errors.New("cursor access is not supported on this platform")

// ErrBadLocation indicates a non-finite target coordinate.
var ErrBadLocation = errors.New("cursor location must be finite")

// Point is a cursor location in global screen coordinates, top-left
// origin.
type Point struct {
	X float64
	Y float64
}

// finite reports whether both coordinates are finite numbers.
func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Location returns the live cursor position with one synchronous OS
// query. Nothing is cached.
func Location() (Point, error) {
	return queryLocation()
}

// LocationUnflipped returns the live cursor position with a
// bottom-left origin, the coordinate space used by Cocoa displays.
func LocationUnflipped() (Point, error) {
	return queryLocationUnflipped()
}

// SetLocation warps the cursor to p. Non-finite coordinates are
// rejected before reaching the OS.
func SetLocation(p Point) error {
	if !finite(p) {
		return ErrBadLocation
	}
	return warpLocation(p)
}

// Stream is a restartable source of live cursor positions. Every Next
// call issues a fresh OS query; two streams share no state.
type Stream struct {
	query func() (Point, error)
}

// NewStream returns a stream over the live cursor position.
func NewStream() *Stream {
	return &Stream{query: queryLocation}
}

// Next returns the cursor position at this instant.
func (s *Stream) Next() (Point, error) {
	return s.query()
}

// Locations returns an unbounded sequence of live cursor positions.
// Each advance issues a fresh query, so callers polling periodically
// just keep ranging; the sequence never ends on its own and must be
// bounded by the consumer. Iteration stops early only on query error.
func Locations() iter.Seq[Point] {
	return locations(NewStream())
}

// locations adapts a stream into a range-over-func sequence.
func locations(s *Stream) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for {
			p, err := s.Next()
			if err != nil {
				return
			}
			if !yield(p) {
				return
			}
		}
	}
}
