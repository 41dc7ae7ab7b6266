package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName = "awgenc"

	// EnvConfigPath overrides the settings file location.
	EnvConfigPath = "AWGENC_CONFIG"
)

// ConfigDir returns the platform-specific configuration directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", appName)
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName)
	default: // linux and others
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			return filepath.Join(xdgConfig, appName)
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appName)
	}
}

// Path returns the full path to the settings file.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LogPath returns the default path to the log file.
func LogPath() string {
	return filepath.Join(ConfigDir(), appName+".log")
}
