package clientcfg

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"math"
)

// headerSize is the length of the big-endian uncompressed-size prefix.
const headerSize = 4

// Compress frames data the way Qt's qCompress does: a 4-byte big-endian
// uncompressed length followed by a zlib stream at the default level.
func Compress(data []byte) ([]byte, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload too large (%d bytes)", ErrEncode, len(data))
	}

	var buf bytes.Buffer
	var header [headerSize]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(data)))
	buf.Write(header[:])

	zw, err := zlib.NewWriterLevel(&buf, zlib.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create compressor: %w", ErrEncode, err)
	}
	if _, err := zw.Write(data); err != nil {
		zw.Close()
		return nil, fmt.Errorf("%w: failed to compress: %w", ErrEncode, err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: failed to flush compressor: %w", ErrEncode, err)
	}

	return buf.Bytes(), nil
}
