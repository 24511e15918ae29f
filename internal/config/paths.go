package config

import (
	"os"
	"path/filepath"
)

// ScreenerPath returns the root directory for screener data.
// It uses $SCREENER_PATH if set, otherwise defaults to ~/.screener.
func ScreenerPath() string {
	if v := os.Getenv("SCREENER_PATH"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".screener")
	}
	return filepath.Join(home, ".screener")
}

// ConfigPath returns the path to the default config file.
func ConfigPath() string {
	return filepath.Join(ScreenerPath(), "config.jsonc")
}

// DotenvPath returns the path to the .env file.
func DotenvPath() string {
	return filepath.Join(ScreenerPath(), ".env")
}

// LogPath returns the file the TUI logs to while it owns the terminal.
func LogPath() string {
	return filepath.Join(ScreenerPath(), "screener.log")
}

// StubHeartbeatPath returns the liveness file written by a running stub.
func StubHeartbeatPath() string {
	return filepath.Join(ScreenerPath(), "stub.heartbeat.json")
}
