//go:build windows

package screen

import (
	"syscall"
	"unsafe"

	"github.com/lxn/win"
)

// clrInvalid is the COLORREF GetPixel returns for unreadable pixels.
const clrInvalid = 0xFFFFFFFF

// lxn/win wraps neither GetPixel nor EnumDisplayMonitors; both resolve
// through lazy procs.
var (
	gdi32                   = syscall.NewLazyDLL("gdi32.dll")
	procGetPixel            = gdi32.NewProc("GetPixel")
	user32                  = syscall.NewLazyDLL("user32.dll")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
)

// mainDisplay returns the primary display.
func mainDisplay() (Display, error) {
	displays, err := activeDisplays()
	if err != nil {
		return Display{}, err
	}
	for _, d := range displays {
		if d.Primary {
			return d, nil
		}
	}
	return Display{}, ErrUnsupported
}

// activeDisplays enumerates attached monitors, primary first.
func activeDisplays() ([]Display, error) {
	state := &enumState{}
	callback := syscall.NewCallback(state.enumProc)
	ret, _, _ := procEnumDisplayMonitors.Call(0, 0, callback, 0)
	if ret == 0 {
		return nil, ErrUnsupported
	}
	// Keep the primary display first to match the darwin ordering.
	for i, d := range state.list {
		if d.Primary && i != 0 {
			state.list[0], state.list[i] = state.list[i], state.list[0]
			break
		}
	}
	return state.list, nil
}

// onlineDisplays matches activeDisplays; Windows does not distinguish
// online-but-undrawable monitors here.
func onlineDisplays() ([]Display, error) {
	return activeDisplays()
}

// enumState accumulates monitors during enumeration.
type enumState struct {
	list  []Display
	index uint32
}

// enumProc records one monitor per callback invocation.
func (s *enumState) enumProc(hMonitor win.HMONITOR, hdc win.HDC, rect *win.RECT, lparam uintptr) uintptr {
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(hMonitor, &info) {
		return 1
	}
	r := info.RcMonitor
	s.index++
	s.list = append(s.list, Display{
		ID: DisplayID(s.index),
		Bounds: Rect{
			X: float64(r.Left),
			Y: float64(r.Top),
			W: float64(r.Right - r.Left),
			H: float64(r.Bottom - r.Top),
		},
		Primary: info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	})
	return 1
}

// sampleColor reads one desktop pixel through a screen device context.
// The DC is released on every path out of this function.
func sampleColor(d DisplayID, x, y float64) (RGB, bool) {
	display, ok := displayByID(d)
	if !ok {
		return RGB{}, false
	}

	hdc := win.GetDC(0)
	if hdc == 0 {
		return RGB{}, false
	}
	defer win.ReleaseDC(0, hdc)

	// Display-relative coordinates map onto the virtual desktop.
	absX := int32(display.Bounds.X + x)
	absY := int32(display.Bounds.Y + y)
	color, _, _ := procGetPixel.Call(uintptr(hdc), uintptr(absX), uintptr(absY))
	if uint32(color) == clrInvalid {
		return RGB{}, false
	}
	// COLORREF layout is 0x00BBGGRR.
	return RGB{
		R: uint8(color),
		G: uint8(color >> 8),
		B: uint8(color >> 16),
	}, true
}

// displayByID resolves an enumeration id back to its display.
func displayByID(d DisplayID) (Display, bool) {
	displays, err := activeDisplays()
	if err != nil {
		return Display{}, false
	}
	for _, candidate := range displays {
		if candidate.ID == d {
			return candidate, true
		}
	}
	return Display{}, false
}
