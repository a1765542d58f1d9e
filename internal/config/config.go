// Package config loads environment configuration for the control
// server.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/seezol/inputkit/event"
)

const (
	defaultListenAddr     = "127.0.0.1:8787"
	defaultTap            = "hid"
	defaultMoveIntervalMs = 16
	defaultMoveMinDelta   = 2.0
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr     string
	AuthToken      string
	Tap            event.Tap
	MoveIntervalMs int
	MoveMinDelta   float64
}

// Load reads configuration from ./.env and environment variables.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:     defaultListenAddr,
		Tap:            event.TapHID,
		MoveIntervalMs: defaultMoveIntervalMs,
		MoveMinDelta:   defaultMoveMinDelta,
	}

	if err := loadEnvFile(".env"); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.AuthToken = strings.TrimSpace(os.Getenv("AUTH_TOKEN"))

	tap, err := parseTap(envString("POST_TAP", defaultTap))
	if err != nil {
		return Config{}, err
	}
	cfg.Tap = tap

	moveInterval, err := envInt("MOVE_INTERVAL_MS", cfg.MoveIntervalMs)
	if err != nil {
		return Config{}, err
	}
	if moveInterval < 0 {
		return Config{}, fmt.Errorf("MOVE_INTERVAL_MS must be >= 0")
	}
	cfg.MoveIntervalMs = moveInterval

	minDelta, err := envFloat("MOVE_MIN_DELTA", cfg.MoveMinDelta)
	if err != nil {
		return Config{}, err
	}
	if minDelta < 0 {
		return Config{}, fmt.Errorf("MOVE_MIN_DELTA must be >= 0")
	}
	cfg.MoveMinDelta = minDelta

	if cfg.AuthToken == "" {
		return Config{}, errors.New("AUTH_TOKEN is required")
	}

	return cfg, nil
}

// parseTap maps a configured tap name onto a posting location.
func parseTap(value string) (event.Tap, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "hid", "":
		return event.TapHID, nil
	case "session":
		return event.TapSession, nil
	case "annotated":
		return event.TapAnnotatedSession, nil
	default:
		return 0, fmt.Errorf("POST_TAP must be hid, session, or annotated")
	}
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envFloat returns a float env override when present, otherwise a
// default.
func envFloat(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return value, nil
}

// loadEnvFile loads KEY=VALUE pairs from a .env file.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	if strings.HasPrefix(line, "export ") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	}
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", false
	}
	value = strings.Trim(value, `"'`)
	return key, value, true
}
