//go:build darwin

package app

import (
	"os"
	"testing"
)

// TestFromPIDSelf looks up the test process by its own pid and checks
// the reported metadata is consistent with the singleton handle.
func TestFromPIDSelf(t *testing.T) {
	a, ok := FromPID(int32(os.Getpid()))
	if !ok {
		t.Skipf("no application object for pid %d", os.Getpid())
	}
	defer a.Close()

	pid, ok := a.PID()
	if !ok || pid != int32(os.Getpid()) {
		t.Fatalf("PID() = %d, %v, want %d", pid, ok, os.Getpid())
	}
	if a.Terminated() {
		t.Fatalf("running test process reported as terminated")
	}
	if path, ok := a.ExecutablePath(); ok && path == "" {
		t.Fatalf("executable path reported present but empty")
	}
}

// TestFromPIDMissing verifies lookup of an id no process can hold.
func TestFromPIDMissing(t *testing.T) {
	if _, ok := FromPID(-2); ok {
		t.Fatalf("FromPID(-2) found an application")
	}
}

// TestCurrentSurvivesClosingClone verifies closing a separately
// looked-up handle does not disturb the singleton.
func TestCurrentSurvivesClosingClone(t *testing.T) {
	cur := Current()
	if cur == nil {
		t.Skip("no application object for this process")
	}
	clone, ok := FromPID(int32(os.Getpid()))
	if !ok {
		t.Skip("pid lookup unavailable")
	}
	clone.Close()
	if _, ok := cur.PID(); !ok {
		t.Fatalf("singleton unusable after closing a clone")
	}
}
