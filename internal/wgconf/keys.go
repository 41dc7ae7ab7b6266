package wgconf

import (
	"golang.zx2c4.com/wireguard/wgctrl/wgtypes"
)

// ValidateKeys checks that every key-bearing field decodes to a 32-byte
// WireGuard key. It does not check that keys belong together.
func (c *Config) ValidateKeys() error {
	checks := []struct {
		section *Section
		name    string
		field   string
	}{
		{c.Interface, SectionInterface, "PrivateKey"},
		{c.Peer, SectionPeer, "PublicKey"},
		{c.Peer, SectionPeer, "PresharedKey"},
	}

	for _, chk := range checks {
		value, ok := chk.section.Get(chk.field)
		if !ok {
			continue
		}
		if _, err := wgtypes.ParseKey(value); err != nil {
			return &KeyError{Section: chk.name, Field: chk.field, Err: err}
		}
	}
	return nil
}
