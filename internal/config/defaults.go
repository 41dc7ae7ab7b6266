package config

import "github.com/net2share/awgenc/internal/clientcfg"

// ApplyDefaults fills in missing optional values with defaults.
func (s *Settings) ApplyDefaults() {
	if s.KeysDir == "" {
		s.KeysDir = DefaultKeysDir
	}

	if s.DescriptionPrefix == "" {
		s.DescriptionPrefix = DefaultDescriptionPrefix
	}

	// Log defaults
	if s.Log.Level == "" {
		s.Log.Level = "info"
	}
	if s.Log.File == "" {
		s.Log.File = LogPath()
	}

	if s.QR.Size == 0 {
		s.QR.Size = clientcfg.DefaultQRSize
	}
}
