package clientcfg

import (
	"fmt"
	"os"

	"github.com/skip2/go-qrcode"
)

// DefaultQRSize is the default QR image width in pixels.
const DefaultQRSize = 256

// QRCode renders content as a PNG QR code.
func QRCode(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate qr code: %w", err)
	}
	return png, nil
}

// WriteQRCode writes a PNG QR code of content to path.
func WriteQRCode(path, content string, size int) error {
	png, err := QRCode(content, size)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0600); err != nil {
		return fmt.Errorf("failed to write qr code: %w", err)
	}
	return nil
}
