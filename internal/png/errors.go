package png

import (
	"errors"
	"fmt"
)

// ErrInvalidMagic is returned when the input does not start with the PNG signature.
var ErrInvalidMagic = errors.New("invalid png header magic")

// UnexpectedChunkTypeError is returned when a chunk of one type was required
// but a chunk of another type was found.
type UnexpectedChunkTypeError struct {
	Expected ChunkType
	Actual   ChunkType
}

func (e *UnexpectedChunkTypeError) Error() string {
	return fmt.Sprintf("expected chunk type %s, was %s", e.Expected, e.Actual)
}

type UnknownBitDepthError struct {
	Value byte
}

func (e *UnknownBitDepthError) Error() string {
	return fmt.Sprintf("invalid bit depth %d", e.Value)
}

type UnknownColourTypeError struct {
	Value byte
}

func (e *UnknownColourTypeError) Error() string {
	return fmt.Sprintf("invalid colour type %d", e.Value)
}

// InvalidCombinationError reports a bit depth and colour type that are both
// individually valid but not allowed together.
type InvalidCombinationError struct {
	BitDepth   BitDepth
	ColourType ColourType
}

func (e *InvalidCombinationError) Error() string {
	return fmt.Sprintf("invalid combination of bit depth and colour: %d, %s", e.BitDepth, e.ColourType)
}

type UnknownCompressionMethodError struct {
	Value byte
}

func (e *UnknownCompressionMethodError) Error() string {
	return fmt.Sprintf("invalid compression method %d", e.Value)
}

type UnknownFilterMethodError struct {
	Value byte
}

func (e *UnknownFilterMethodError) Error() string {
	return fmt.Sprintf("invalid filter method %d", e.Value)
}

type UnknownInterlaceMethodError struct {
	Value byte
}

func (e *UnknownInterlaceMethodError) Error() string {
	return fmt.Sprintf("invalid interlace method %d", e.Value)
}

// InflateError wraps a failure from the decompression boundary.
type InflateError struct {
	Err error
}

func (e *InflateError) Error() string {
	return fmt.Sprintf("inflate error: %v", e.Err)
}

func (e *InflateError) Unwrap() error {
	return e.Err
}

// MalformedStreamError is returned when the decompressed image data is not an
// exact multiple of the scanline record length.
type MalformedStreamError struct {
	Length   int
	Expected int
}

func (e *MalformedStreamError) Error() string {
	return fmt.Sprintf("decompressed stream is %d bytes, want %d", e.Length, e.Expected)
}

type InvalidFilterTypeError struct {
	Value byte
}

func (e *InvalidFilterTypeError) Error() string {
	return fmt.Sprintf("invalid scanline filter type %d", e.Value)
}

// UnsupportedBitDepthError is returned for bit depths that parse as valid PNG
// but that the decoder does not reconstruct. It is distinct from
// UnknownBitDepthError, which covers depths the format itself disallows.
type UnsupportedBitDepthError struct {
	BitDepth BitDepth
}

func (e *UnsupportedBitDepthError) Error() string {
	return fmt.Sprintf("unsupported bit depth %d", e.BitDepth)
}

type UnsupportedInterlaceError struct {
	Interlace InterlaceMethod
}

func (e *UnsupportedInterlaceError) Error() string {
	return fmt.Sprintf("unsupported interlace method %s", e.Interlace)
}

// ChecksumError reports a chunk whose stored CRC does not match its contents.
type ChecksumError struct {
	Type ChunkType
	Want uint32
	Got  uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("chunk %s crc mismatch: stored %08x, computed %08x", e.Type, e.Want, e.Got)
}
