// Package wgconf parses and renders WireGuard-style tunnel configurations.
package wgconf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Section names as they appear in the file.
const (
	SectionInterface = "Interface"
	SectionPeer      = "Peer"
)

// Required keys per section, in the order they are checked.
var (
	RequiredInterfaceFields = []string{"PrivateKey", "Address"}
	RequiredPeerFields      = []string{"PublicKey", "Endpoint", "AllowedIPs"}
)

// Config is a parsed tunnel configuration with one interface and one peer.
type Config struct {
	Interface *Section
	Peer      *Section
}

type mode int

const (
	modeNone mode = iota
	modeInterface
	modePeer
)

// ParseFile reads and parses the configuration at path.
func ParseFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileAccess, path, err)
	}
	defer f.Close()

	return Parse(f)
}

// ParseString parses configuration text.
func ParseString(text string) (*Config, error) {
	return Parse(strings.NewReader(text))
}

// Parse reads configuration text from r.
//
// Unknown keys, repeated section headers and unrecognised bracketed lines
// are tolerated. Within a section the last value for a key wins.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{
		Interface: NewSection(),
		Peer:      NewSection(),
	}

	br := bufio.NewReader(r)

	current := modeNone
	for {
		raw, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("%w: failed to read config: %w", ErrFileAccess, err)
		}
		cfg.parseLine(&current, raw)
		if err == io.EOF {
			break
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) parseLine(current *mode, raw string) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}

	switch line {
	case "[" + SectionInterface + "]":
		*current = modeInterface
		return
	case "[" + SectionPeer + "]":
		*current = modePeer
		return
	}

	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	switch *current {
	case modeInterface:
		c.Interface.Set(key, value)
	case modePeer:
		c.Peer.Set(key, value)
	}
}

// Validate checks that all required fields are present.
func (c *Config) Validate() error {
	for _, field := range RequiredInterfaceFields {
		if !c.Interface.Has(field) {
			return &MissingFieldError{Section: SectionInterface, Field: field}
		}
	}
	for _, field := range RequiredPeerFields {
		if !c.Peer.Has(field) {
			return &MissingFieldError{Section: SectionPeer, Field: field}
		}
	}
	return nil
}

// WithInterface returns a copy of c whose interface section is replaced.
// The peer section is cloned so the copy shares no state with c.
func (c *Config) WithInterface(iface *Section) *Config {
	return &Config{
		Interface: iface,
		Peer:      c.Peer.Clone(),
	}
}
