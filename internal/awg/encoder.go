package awg

import (
	"github.com/net2share/awgenc/internal/clientcfg"
	"github.com/net2share/awgenc/internal/wgconf"
)

// Options control a single encode run.
type Options struct {
	// Description is shown by the client as the server name.
	Description string
	// StrictKeys rejects keys that are not 32-byte base64 values.
	StrictKeys bool
}

// Result is the output of a successful encode.
type Result struct {
	Config  *wgconf.Config
	Payload []byte
	Token   string
}

// EncodeFile parses the configuration at path and encodes it.
func EncodeFile(path string, opts Options) (*Result, error) {
	cfg, err := wgconf.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return Encode(cfg, opts)
}

// EncodeText parses configuration text and encodes it.
func EncodeText(text string, opts Options) (*Result, error) {
	cfg, err := wgconf.ParseString(text)
	if err != nil {
		return nil, err
	}
	return Encode(cfg, opts)
}

// Encode builds the payload for cfg and packs it into a token.
func Encode(cfg *wgconf.Config, opts Options) (*Result, error) {
	if opts.StrictKeys {
		if err := cfg.ValidateKeys(); err != nil {
			return nil, err
		}
	}

	payload, err := NewBuilder(cfg, opts.Description).JSON()
	if err != nil {
		return nil, err
	}

	token, err := clientcfg.Encode(payload)
	if err != nil {
		return nil, err
	}

	return &Result{Config: cfg, Payload: payload, Token: token}, nil
}
