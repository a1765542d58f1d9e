package app

import "testing"

// TestArchitectureString checks the label for each known architecture.
func TestArchitectureString(t *testing.T) {
	cases := []struct {
		arch Architecture
		want string
	}{
		{ArchUnknown, "unknown"},
		{ArchI386, "i386"},
		{ArchX8664, "x86_64"},
		{ArchARM64, "arm64"},
		{ArchPPC, "ppc"},
		{ArchPPC64, "ppc64"},
		{Architecture(0x999), "unknown"},
	}
	for _, c := range cases {
		if got := c.arch.String(); got != c.want {
			t.Fatalf("Architecture(%#x).String() = %q, want %q", int64(c.arch), got, c.want)
		}
	}
}

// TestActivationOptionsDistinct verifies the option bits do not
// overlap and compose into a set.
func TestActivationOptionsDistinct(t *testing.T) {
	if ActivateAllWindows&ActivateIgnoringOtherApps != 0 {
		t.Fatalf("activation option bits overlap")
	}
	set := ActivateAllWindows | ActivateIgnoringOtherApps
	if set&ActivateAllWindows == 0 || set&ActivateIgnoringOtherApps == 0 {
		t.Fatalf("combined options lost a bit: %#x", uint64(set))
	}
}

// TestCurrentSingleton verifies Current returns the same handle every
// time and that it reports a process id.
func TestCurrentSingleton(t *testing.T) {
	a := Current()
	if a == nil {
		t.Skip("no application object for this process")
	}
	if b := Current(); b != a {
		t.Fatalf("Current returned distinct handles %p and %p", a, b)
	}
	if _, ok := a.PID(); !ok {
		t.Fatalf("current process reported no pid")
	}
}
