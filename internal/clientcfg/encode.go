// Package clientcfg packs client payloads into importable tokens.
package clientcfg

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

const urlPrefix = "vpn://"

// ErrEncode is returned when a payload cannot be packed.
var ErrEncode = errors.New("failed to encode payload")

// Encode validates payload as JSON, compresses it and returns the URL-safe,
// unpadded base64 token.
func Encode(payload []byte) (string, error) {
	if !json.Valid(payload) {
		return "", fmt.Errorf("%w: invalid JSON", ErrEncode)
	}

	data, err := Compress(payload)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(data), nil
}

// URL returns the vpn:// import link for a token.
func URL(token string) string {
	return urlPrefix + token
}
