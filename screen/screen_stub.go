//go:build !darwin && !windows

package screen

// mainDisplay returns ErrUnsupported.
func mainDisplay() (Display, error) {
	return Display{}, ErrUnsupported
}

// activeDisplays returns ErrUnsupported.
func activeDisplays() ([]Display, error) {
	return nil, ErrUnsupported
}

// onlineDisplays returns ErrUnsupported.
func onlineDisplays() ([]Display, error) {
	return nil, ErrUnsupported
}

// sampleColor reports no color on this platform.
func sampleColor(d DisplayID, x, y float64) (RGB, bool) {
	_, _, _ = d, x, y
	return RGB{}, false
}
