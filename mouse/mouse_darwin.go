//go:build darwin

package mouse

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation

#include <CoreGraphics/CoreGraphics.h>

// Reads the cursor position from a throwaway event. The event is
// created and released inside the call; no handle escapes.
static int inputkit_cursor_location(double *x, double *y) {
	CGEventRef ev = CGEventCreate(NULL);
	if (ev == NULL) {
		return 0;
	}
	CGPoint p = CGEventGetLocation(ev);
	CFRelease(ev);
	*x = p.x;
	*y = p.y;
	return 1;
}

static void inputkit_cursor_warp(double x, double y) {
	CGWarpMouseCursorPosition(CGPointMake(x, y));
}

static double inputkit_main_height(void) {
	return CGDisplayBounds(CGMainDisplayID()).size.height;
}
*/
import "C"

import "errors"

// errCursorQuery indicates the OS returned no cursor event.
var errCursorQuery = errors.New("cursor query failed")

// queryLocation reads the live cursor position, top-left origin.
func queryLocation() (Point, error) {
	var x, y C.double
	if C.inputkit_cursor_location(&x, &y) == 0 {
		return Point{}, errCursorQuery
	}
	return Point{X: float64(x), Y: float64(y)}, nil
}

// queryLocationUnflipped reads the cursor position in the bottom-left
// origin space of the main display.
func queryLocationUnflipped() (Point, error) {
	p, err := queryLocation()
	if err != nil {
		return Point{}, err
	}
	p.Y = float64(C.inputkit_main_height()) - p.Y
	return p, nil
}

// warpLocation moves the cursor without posting an event.
func warpLocation(p Point) error {
	C.inputkit_cursor_warp(C.double(p.X), C.double(p.Y))
	return nil
}
