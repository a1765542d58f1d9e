package config

import (
	"testing"

	"github.com/seezol/inputkit/event"
)

// TestLoadDefaults verifies defaults with only the token set.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_TOKEN", "tok")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:8787" {
		t.Fatalf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.Tap != event.TapHID {
		t.Fatalf("Tap = %v", cfg.Tap)
	}
	if cfg.MoveIntervalMs != 16 || cfg.MoveMinDelta != 2.0 {
		t.Fatalf("throttle defaults = %d, %v", cfg.MoveIntervalMs, cfg.MoveMinDelta)
	}
}

// TestLoadRequiresToken verifies a missing token fails.
func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("AUTH_TOKEN", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without AUTH_TOKEN")
	}
}

// TestLoadTapValues verifies tap parsing and rejection.
func TestLoadTapValues(t *testing.T) {
	t.Setenv("AUTH_TOKEN", "tok")

	t.Setenv("POST_TAP", "annotated")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tap != event.TapAnnotatedSession {
		t.Fatalf("Tap = %v", cfg.Tap)
	}

	t.Setenv("POST_TAP", "bogus")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for bogus tap")
	}
}

// TestLoadRejectsNegativeThrottle verifies throttle validation.
func TestLoadRejectsNegativeThrottle(t *testing.T) {
	t.Setenv("AUTH_TOKEN", "tok")

	t.Setenv("MOVE_INTERVAL_MS", "-1")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative interval")
	}
	t.Setenv("MOVE_INTERVAL_MS", "8")

	t.Setenv("MOVE_MIN_DELTA", "-0.5")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative delta")
	}
}

// TestParseEnvLine verifies .env line parsing.
func TestParseEnvLine(t *testing.T) {
	cases := []struct {
		line  string
		key   string
		value string
		ok    bool
	}{
		{"A=1", "A", "1", true},
		{"export B = two ", "B", "two", true},
		{`C="quoted"`, "C", "quoted", true},
		{"# comment", "", "", false},
		{"", "", "", false},
		{"novalue", "", "", false},
	}
	for _, c := range cases {
		key, value, ok := parseEnvLine(c.line)
		if key != c.key || value != c.value || ok != c.ok {
			t.Fatalf("parseEnvLine(%q) = %q, %q, %v", c.line, key, value, ok)
		}
	}
}
