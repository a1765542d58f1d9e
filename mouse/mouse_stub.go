//go:build !darwin && !windows

package mouse

// queryLocation returns ErrUnsupported.
func queryLocation() (Point, error) {
	return Point{}, ErrUnsupported
}

// queryLocationUnflipped returns ErrUnsupported.
func queryLocationUnflipped() (Point, error) {
	return Point{}, ErrUnsupported
}

// warpLocation returns ErrUnsupported.
func warpLocation(p Point) error {
	_ = p
	return ErrUnsupported
}
