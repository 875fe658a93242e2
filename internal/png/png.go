// Package png parses the PNG container format and reconstructs raw pixel
// bytes from its filtered, zlib-compressed image data.
package png

import (
	"errors"

	"github.com/merridan/pngraw/internal/compression"
)

// HeaderChunk returns the chunk that must carry the image header. The PNG
// spec requires IHDR first; interpretation of the payload happens in
// InterpretHeader, which also rejects a wrong chunk type.
func (f *File) HeaderChunk() (Chunk, error) {
	if len(f.Chunks) == 0 {
		return Chunk{}, errors.New("file has no chunks")
	}
	return f.Chunks[0], nil
}

// Header interprets and validates the header chunk.
func (f *File) Header() (*Header, error) {
	chunk, err := f.HeaderChunk()
	if err != nil {
		return nil, err
	}
	return InterpretHeader(chunk)
}

// VerifyChecksums checks the stored CRC of every chunk and returns the first
// mismatch found.
func (f *File) VerifyChecksums() error {
	for _, chunk := range f.Chunks {
		if err := chunk.VerifyChecksum(); err != nil {
			return err
		}
	}
	return nil
}

// imageData concatenates the payloads of all IDAT chunks in chunk order.
func (f *File) imageData() []byte {
	var size int
	for _, chunk := range f.Chunks {
		if chunk.Type == TypeImageData {
			size += len(chunk.Data)
		}
	}
	data := make([]byte, 0, size)
	for _, chunk := range f.Chunks {
		if chunk.Type == TypeImageData {
			data = append(data, chunk.Data...)
		}
	}
	return data
}

// DecodePixels runs the full decode pipeline: header validation, inflate of
// the concatenated image data, then scanline reconstruction. On any failure
// no buffer is returned.
func (f *File) DecodePixels() ([]byte, error) {
	header, err := f.Header()
	if err != nil {
		return nil, err
	}

	decompressed, err := compression.Inflate(f.imageData())
	if err != nil {
		return nil, &InflateError{Err: err}
	}

	return Reconstruct(header, decompressed)
}

// DecodeImage decodes the pixel data and wraps it in an image.Image adapter.
func (f *File) DecodeImage() (*Raster, error) {
	header, err := f.Header()
	if err != nil {
		return nil, err
	}
	pix, err := f.DecodePixels()
	if err != nil {
		return nil, err
	}
	return &Raster{header: header, pix: pix}, nil
}
