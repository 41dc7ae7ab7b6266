package actions

import (
	"fmt"
	"strconv"

	"github.com/net2share/awgenc/internal/clientcfg"
)

// sourceInputs are shared by the actions that read a client configuration.
func sourceInputs() []InputField {
	return []InputField{
		{
			Name:      "file",
			Label:     "Read the client configuration from this path instead of the keys directory",
			ShortFlag: 'f',
			Type:      InputTypeText,
		},
		{
			Name:      "description",
			Label:     "Server description shown by the client (default: <prefix><user_id>)",
			ShortFlag: 'd',
			Type:      InputTypeText,
		},
		{
			Name:  "strict",
			Label: "Reject keys that are not 32-byte base64 WireGuard keys",
			Type:  InputTypeBool,
		},
	}
}

func init() {
	Register(&Action{
		ID:    ActionEncode,
		Use:   "encode",
		Short: "Encode a client configuration into an AmneziaVPN token",
		Long: `Read the AmneziaWG client configuration of a user and print the
compressed, URL-safe token that the AmneziaVPN client imports.

The configuration is read from <keys_dir>/<user_id>/<user_id>.conf unless
--file is given.`,
		Example: "  awgenc encode alice\n  awgenc encode alice --link --qr alice.png",
		Args: &ArgsSpec{
			Name:        "user_id",
			Description: "User identifier",
			Required:    true,
		},
		Inputs: append(sourceInputs(),
			InputField{
				Name:  "link",
				Label: "Print the token as a vpn:// link",
				Type:  InputTypeBool,
			},
			InputField{
				Name:  "qr",
				Label: "Write a PNG QR code of the vpn:// link to this path",
				Type:  InputTypeText,
			},
			InputField{
				Name:     "qr-size",
				Label:    "QR code width in pixels (default from settings)",
				Type:     InputTypeNumber,
				Validate: validateQRSize,
			},
			InputField{
				Name:  "metrics-file",
				Label: "Write Prometheus metrics for this run to a textfile",
				Type:  InputTypeText,
			},
		),
	})

	Register(&Action{
		ID:    ActionPayload,
		Use:   "payload",
		Short: "Print the JSON payload before compression",
		Long:  "Build the AmneziaVPN JSON document for a user and print it without compressing or encoding it.",
		Args: &ArgsSpec{
			Name:        "user_id",
			Description: "User identifier",
			Required:    true,
		},
		Inputs: sourceInputs(),
	})
}

func validateQRSize(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return fmt.Errorf("invalid qr size %q", value)
	}
	if n > 0 && n < 21 {
		return fmt.Errorf("qr size must be 0 or at least 21 pixels (default %d)", clientcfg.DefaultQRSize)
	}
	return nil
}
