//go:build darwin

package screen

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation

#include <CoreGraphics/CoreGraphics.h>

static void *inputkit_capture_rect(uint32_t display, double x, double y) {
	return (void *)CGDisplayCreateImageForRect(
		(CGDirectDisplayID)display, CGRectMake(x, y, 1, 1));
}

// Copies the image backing store; the returned CFDataRef is owned by
// the caller.
static void *inputkit_image_data(void *image) {
	CGDataProviderRef provider = CGImageGetDataProvider((CGImageRef)image);
	if (provider == NULL) {
		return NULL;
	}
	return (void *)CGDataProviderCopyData(provider);
}

static size_t inputkit_data_length(void *data) {
	return (size_t)CFDataGetLength((CFDataRef)data);
}

static const unsigned char *inputkit_data_bytes(void *data) {
	return CFDataGetBytePtr((CFDataRef)data);
}

static uint32_t inputkit_main_display(void) {
	return (uint32_t)CGMainDisplayID();
}

static void inputkit_display_bounds(uint32_t display, double *x, double *y, double *w, double *h) {
	CGRect r = CGDisplayBounds((CGDirectDisplayID)display);
	*x = r.origin.x;
	*y = r.origin.y;
	*w = r.size.width;
	*h = r.size.height;
}

static int32_t inputkit_online_displays(uint32_t max, uint32_t *out, uint32_t *count) {
	return (int32_t)CGGetOnlineDisplayList(max, (CGDirectDisplayID *)out, count);
}

static int32_t inputkit_active_displays(uint32_t max, uint32_t *out, uint32_t *count) {
	return (int32_t)CGGetActiveDisplayList(max, (CGDirectDisplayID *)out, count);
}
*/
import "C"

import (
	"unsafe"

	"github.com/seezol/inputkit/internal/native"
)

// displayListFunc is one of the two CG display-list getters.
type displayListFunc func(max C.uint32_t, out *C.uint32_t, count *C.uint32_t) C.int32_t

// mainDisplay returns the main display.
func mainDisplay() (Display, error) {
	return describeDisplay(DisplayID(C.inputkit_main_display())), nil
}

// activeDisplays lists displays that are active and drawable.
func activeDisplays() ([]Display, error) {
	return displaysWith(func(max C.uint32_t, out *C.uint32_t, count *C.uint32_t) C.int32_t {
		return C.inputkit_active_displays(max, out, count)
	})
}

// onlineDisplays lists all connected displays.
func onlineDisplays() ([]Display, error) {
	return displaysWith(func(max C.uint32_t, out *C.uint32_t, count *C.uint32_t) C.int32_t {
		return C.inputkit_online_displays(max, out, count)
	})
}

// displaysWith runs the count-then-fill protocol of a display-list
// getter.
func displaysWith(get displayListFunc) ([]Display, error) {
	var count C.uint32_t
	if get(0, nil, &count) != 0 {
		return nil, ErrUnsupported
	}
	if count == 0 {
		return nil, nil
	}
	ids := make([]C.uint32_t, count)
	if get(count, &ids[0], &count) != 0 {
		return nil, ErrUnsupported
	}
	out := make([]Display, 0, count)
	for _, id := range ids[:count] {
		out = append(out, describeDisplay(DisplayID(id)))
	}
	return out, nil
}

// describeDisplay fills in geometry for a display id.
func describeDisplay(id DisplayID) Display {
	var x, y, w, h C.double
	C.inputkit_display_bounds(C.uint32_t(id), &x, &y, &w, &h)
	return Display{
		ID:      id,
		Bounds:  Rect{X: float64(x), Y: float64(y), W: float64(w), H: float64(h)},
		Primary: uint32(id) == uint32(C.inputkit_main_display()),
	}
}

// sampleColor captures a 1x1 image of the display at (x, y) and reads
// its single pixel. Both the captured image and the copied pixel data
// are released on every path out of this function.
func sampleColor(d DisplayID, x, y float64) (RGB, bool) {
	image, ok := native.CF(unsafe.Pointer(C.inputkit_capture_rect(C.uint32_t(d), C.double(x), C.double(y))))
	if !ok {
		return RGB{}, false
	}
	defer image.Release()

	data, ok := native.CF(unsafe.Pointer(C.inputkit_image_data(image.Ptr())))
	if !ok {
		return RGB{}, false
	}
	defer data.Release()

	if C.inputkit_data_length(data.Ptr()) < 4 {
		return RGB{}, false
	}
	// Display captures are 32bpp little-endian ARGB, i.e. BGRA in
	// memory order.
	px := C.inputkit_data_bytes(data.Ptr())
	bytes := unsafe.Slice((*byte)(unsafe.Pointer(px)), 4)
	return RGB{R: bytes[2], G: bytes[1], B: bytes[0]}, true
}
