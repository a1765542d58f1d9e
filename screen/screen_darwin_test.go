//go:build darwin

package screen

import "testing"

// TestMain_HasGeometry verifies the main display reports usable bounds.
func TestMain_HasGeometry(t *testing.T) {
	d, err := Main()
	if err != nil {
		t.Skipf("no display access: %v", err)
	}
	if d.Bounds.W <= 0 || d.Bounds.H <= 0 {
		t.Skipf("headless environment, bounds %+v", d.Bounds)
	}
	if !d.Primary {
		t.Fatal("main display should report primary")
	}
}

// TestColorAt_FarOffscreen verifies capture outside any surface yields
// no color instead of failing loudly.
func TestColorAt_FarOffscreen(t *testing.T) {
	d, err := Main()
	if err != nil {
		t.Skipf("no display access: %v", err)
	}
	if _, ok := ColorAt(d.ID, 1e7, 1e7); ok {
		t.Fatal("expected no color far offscreen")
	}
}
