package wgconf

import (
	"fmt"
	"strings"
)

// Render formats the configuration as INI text without a trailing newline.
// Only the first entry of a comma-separated Address or DNS value is kept.
func (c *Config) Render() string {
	lines := []string{"[" + SectionInterface + "]"}
	for _, key := range c.Interface.Keys() {
		value := c.Interface.Value(key)
		if key == "Address" || key == "DNS" {
			value, _, _ = strings.Cut(value, ",")
		}
		lines = append(lines, fmt.Sprintf("%s = %s", key, value))
	}

	lines = append(lines, "\n["+SectionPeer+"]")
	for _, key := range c.Peer.Keys() {
		lines = append(lines, fmt.Sprintf("%s = %s", key, c.Peer.Value(key)))
	}

	return strings.Join(lines, "\n")
}
