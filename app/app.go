// Package app wraps running processes' OS-level application objects.
package app

// ActivationOptions is a bit-set controlling Activate behavior.
type ActivationOptions uint64

const (
	// ActivateAllWindows brings all of the application's windows
	// forward, not just the frontmost one.
	ActivateAllWindows ActivationOptions = 1 << 0
	// ActivateIgnoringOtherApps activates even while another
	// application is active. This steals input focus from the user
	// and is rarely appropriate.
	ActivateIgnoringOtherApps ActivationOptions = 1 << 1
)

// Architecture identifies the executable architecture of a running
// application. Values match the Mach CPU type constants reported by
// the OS.
type Architecture int64

const (
	// ArchUnknown means the OS reported no architecture.
	ArchUnknown Architecture = 0
	// ArchI386 is 32-bit Intel.
	ArchI386 Architecture = 0x00000007
	// ArchX8664 is 64-bit Intel.
	ArchX8664 Architecture = 0x01000007
	// ArchARM64 is 64-bit ARM.
	ArchARM64 Architecture = 0x0100000C
	// ArchPPC is 32-bit PowerPC.
	ArchPPC Architecture = 0x00000012
	// ArchPPC64 is 64-bit PowerPC.
	ArchPPC64 Architecture = 0x01000012
)

// String names the architecture.
func (a Architecture) String() string {
	switch a {
	case ArchI386:
		return "i386"
	case ArchX8664:
		return "x86_64"
	case ArchARM64:
		return "arm64"
	case ArchPPC:
		return "ppc"
	case ArchPPC64:
		return "ppc64"
	default:
		return "unknown"
	}
}
