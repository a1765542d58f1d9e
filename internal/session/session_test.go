package session

import (
	"testing"

	"github.com/seezol/inputkit/event"
)

// TestAuthorize_Success verifies a matching token authorizes.
func TestAuthorize_Success(t *testing.T) {
	s := New("secret")
	if !s.Authorize("secret") {
		t.Fatalf("expected authorization to succeed")
	}
}

// TestAuthorize_Fail verifies a wrong token is rejected.
func TestAuthorize_Fail(t *testing.T) {
	s := New("secret")
	if s.Authorize("nope") {
		t.Fatalf("expected authorization to fail")
	}
}

// TestAuthorize_EmptyTokenRejectsAll verifies an unset token never
// authorizes, even for an empty presentation.
func TestAuthorize_EmptyTokenRejectsAll(t *testing.T) {
	s := New("")
	if s.Authorize("") {
		t.Fatalf("empty configured token must reject")
	}
	if s.Authorize("anything") {
		t.Fatalf("empty configured token must reject")
	}
}

// TestInputEnabled_Toggle verifies input enabled toggle.
func TestInputEnabled_Toggle(t *testing.T) {
	s := New("secret")
	s.SetInputEnabled(false)
	if s.InputEnabled() {
		t.Fatalf("expected input disabled")
	}
	s.SetInputEnabled(true)
	if !s.InputEnabled() {
		t.Fatalf("expected input enabled")
	}
}

// TestTapDefaultsToHID verifies the default posting tap.
func TestTapDefaultsToHID(t *testing.T) {
	s := New("secret")
	if got := s.Tap(); got != event.TapHID {
		t.Fatalf("default tap = %v, want %v", got, event.TapHID)
	}
}

// TestSnapshot verifies snapshot content.
func TestSnapshot(t *testing.T) {
	s := New("secret")
	s.SetInputEnabled(false)
	s.SetTap(event.TapSession)
	snap := s.Snapshot()
	if snap.InputEnabled || snap.Tap != event.TapSession {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}
