// Package config provides settings management for awgenc.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultKeysDir is where per-user client configurations are stored.
const DefaultKeysDir = "/etc/amnezia/amneziawg/keys"

// DefaultDescriptionPrefix is prepended to the user ID to form the
// description shown by the client.
const DefaultDescriptionPrefix = "AmneziaVPN_"

// Settings holds the awgenc configuration.
type Settings struct {
	KeysDir           string      `yaml:"keys_dir,omitempty"`
	DescriptionPrefix string      `yaml:"description_prefix,omitempty"`
	Log               LogSettings `yaml:"log,omitempty"`
	QR                QRSettings  `yaml:"qr,omitempty"`
}

// LogSettings configures logging behavior.
type LogSettings struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// QRSettings configures QR code output.
type QRSettings struct {
	Size int `yaml:"size,omitempty"`
}

// Default returns the default settings.
func Default() *Settings {
	s := &Settings{}
	s.ApplyDefaults()
	return s
}

// LoadFromPath reads the settings from a specific path.
func LoadFromPath(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &s, nil
}

// LoadOrDefault reads the settings from path, or returns the defaults if the
// file does not exist. An empty path means the default location.
func LoadOrDefault(path string) (*Settings, error) {
	if path == "" {
		path = Path()
	}
	s, err := LoadFromPath(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return s, nil
}

// SaveToPath writes the settings to a specific path.
func (s *Settings) SaveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0640); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// KeyPath returns the client configuration path for a user ID.
// The ID must already have passed ValidateUserID.
func (s *Settings) KeyPath(userID string) string {
	return filepath.Join(s.KeysDir, userID, userID+".conf")
}

// Description returns the client-visible description for a user ID.
func (s *Settings) Description(userID string) string {
	return s.DescriptionPrefix + userID
}
