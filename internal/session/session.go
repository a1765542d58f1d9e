// Package session holds runtime state for the control server.
package session

import (
	"crypto/subtle"
	"sync"

	"github.com/seezol/inputkit/event"
)

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	InputEnabled bool
	Tap          event.Tap
}

// Session holds mutable runtime state shared between the websocket
// handler and the command layer.
type Session struct {
	mu           sync.RWMutex
	token        string
	inputEnabled bool
	tap          event.Tap
}

// New returns an initialized session guarded by the given token.
func New(token string) *Session {
	return &Session{
		token:        token,
		inputEnabled: true,
		tap:          event.TapHID,
	}
}

// Authorize reports whether the presented token matches. Comparison is
// constant-time; an empty configured token rejects everything.
func (s *Session) Authorize(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.token)) == 1
}

// SetInputEnabled toggles whether messages are injected into the OS.
func (s *Session) SetInputEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputEnabled = enabled
}

// InputEnabled reports whether messages are injected into the OS.
func (s *Session) InputEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputEnabled
}

// SetTap selects the tap events are posted at.
func (s *Session) SetTap(tap event.Tap) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tap = tap
}

// Tap returns the tap events are posted at.
func (s *Session) Tap() event.Tap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tap
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		InputEnabled: s.inputEnabled,
		Tap:          s.tap,
	}
}
