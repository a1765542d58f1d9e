//go:build windows

package mouse

import (
	"errors"

	"github.com/lxn/win"
)

// errCursorQuery indicates GetCursorPos reported failure.
var errCursorQuery = errors.New("GetCursorPos failed")

// errCursorWarp indicates SetCursorPos reported failure.
var errCursorWarp = errors.New("SetCursorPos failed")

// queryLocation reads the live cursor position.
func queryLocation() (Point, error) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return Point{}, errCursorQuery
	}
	return Point{X: float64(pt.X), Y: float64(pt.Y)}, nil
}

// queryLocationUnflipped flips the vertical axis against the primary
// screen height.
func queryLocationUnflipped() (Point, error) {
	p, err := queryLocation()
	if err != nil {
		return Point{}, err
	}
	p.Y = float64(win.GetSystemMetrics(win.SM_CYSCREEN)) - p.Y
	return p, nil
}

// warpLocation moves the cursor to the nearest integer coordinates.
func warpLocation(p Point) error {
	if !win.SetCursorPos(int32(p.X), int32(p.Y)) {
		return errCursorWarp
	}
	return nil
}
