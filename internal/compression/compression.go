// Package compression is the decompression boundary for PNG image data.
package compression

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Inflate decompresses a complete zlib stream into memory.
func Inflate(data []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var out bytes.Buffer
	if _, err := io.Copy(&out, reader); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
