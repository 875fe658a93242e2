package png

import (
	"encoding/binary"
	"fmt"
	"io"
)

// BitDepth is the number of bits per sample as declared in the header.
type BitDepth uint8

const (
	Depth1  BitDepth = 1
	Depth2  BitDepth = 2
	Depth4  BitDepth = 4
	Depth8  BitDepth = 8
	Depth16 BitDepth = 16
)

// Bytes returns the bytes per sample for byte-aligned depths, or 0 for
// sub-byte depths that the reconstruction stage does not handle.
func (d BitDepth) Bytes() int {
	switch d {
	case Depth8:
		return 1
	case Depth16:
		return 2
	default:
		return 0
	}
}

// ColourType is the pixel interpretation declared in the header.
type ColourType uint8

const (
	Greyscale       ColourType = 0
	Truecolour      ColourType = 2
	Indexed         ColourType = 3
	GreyscaleAlpha  ColourType = 4
	TruecolourAlpha ColourType = 6
)

// Channels returns the sample count per pixel. Indexed and greyscale-alpha
// images are treated as one byte per sample at depth 8; palette lookup and
// alpha separation happen downstream, not here.
func (c ColourType) Channels() int {
	switch c {
	case Truecolour:
		return 3
	case TruecolourAlpha:
		return 4
	default:
		return 1
	}
}

func (c ColourType) String() string {
	switch c {
	case Greyscale:
		return "greyscale"
	case Truecolour:
		return "truecolour"
	case Indexed:
		return "indexed"
	case GreyscaleAlpha:
		return "greyscale+alpha"
	case TruecolourAlpha:
		return "truecolour+alpha"
	default:
		return fmt.Sprintf("colour type %d", uint8(c))
	}
}

type InterlaceMethod uint8

const (
	InterlaceNone  InterlaceMethod = 0
	InterlaceAdam7 InterlaceMethod = 1
)

func (m InterlaceMethod) String() string {
	switch m {
	case InterlaceNone:
		return "none"
	case InterlaceAdam7:
		return "adam7"
	default:
		return fmt.Sprintf("interlace method %d", uint8(m))
	}
}

// Header is the validated structural header from the IHDR chunk.
type Header struct {
	Width      uint32
	Height     uint32
	BitDepth   BitDepth
	ColourType ColourType
	Interlace  InterlaceMethod
}

// BytesPerPixel returns the pixel stride in bytes, or 0 for sub-byte depths.
func (h *Header) BytesPerPixel() int {
	return h.ColourType.Channels() * h.BitDepth.Bytes()
}

// ScanlineLength returns the unfiltered byte length of one row.
func (h *Header) ScanlineLength() int {
	return int(h.Width) * h.BytesPerPixel()
}

func (h *Header) String() string {
	return fmt.Sprintf("%dx%d %s, %d-bit, interlace %s",
		h.Width, h.Height, h.ColourType, h.BitDepth, h.Interlace)
}

// InterpretHeader converts an IHDR chunk payload into a validated Header.
// It is pure and may be called repeatedly for the same chunk.
func InterpretHeader(chunk Chunk) (*Header, error) {
	if chunk.Type != TypeHeader {
		return nil, &UnexpectedChunkTypeError{Expected: TypeHeader, Actual: chunk.Type}
	}
	if len(chunk.Data) < 13 {
		return nil, io.ErrUnexpectedEOF
	}

	width := binary.BigEndian.Uint32(chunk.Data[0:4])
	height := binary.BigEndian.Uint32(chunk.Data[4:8])

	var colourType ColourType
	switch v := chunk.Data[9]; v {
	case 0:
		colourType = Greyscale
	case 2:
		colourType = Truecolour
	case 3:
		colourType = Indexed
	case 4:
		colourType = GreyscaleAlpha
	case 6:
		colourType = TruecolourAlpha
	default:
		return nil, &UnknownColourTypeError{Value: v}
	}

	var bitDepth BitDepth
	switch v := chunk.Data[8]; v {
	case 1, 2, 4, 8, 16:
		bitDepth = BitDepth(v)
	default:
		return nil, &UnknownBitDepthError{Value: v}
	}

	if !legalCombination(colourType, bitDepth) {
		return nil, &InvalidCombinationError{BitDepth: bitDepth, ColourType: colourType}
	}

	if v := chunk.Data[10]; v != 0 {
		return nil, &UnknownCompressionMethodError{Value: v}
	}
	if v := chunk.Data[11]; v != 0 {
		return nil, &UnknownFilterMethodError{Value: v}
	}

	var interlace InterlaceMethod
	switch v := chunk.Data[12]; v {
	case 0:
		interlace = InterlaceNone
	case 1:
		interlace = InterlaceAdam7
	default:
		return nil, &UnknownInterlaceMethodError{Value: v}
	}

	return &Header{
		Width:      width,
		Height:     height,
		BitDepth:   bitDepth,
		ColourType: colourType,
		Interlace:  interlace,
	}, nil
}

// legalCombination implements the bit depth / colour type table from the PNG
// specification.
func legalCombination(c ColourType, d BitDepth) bool {
	switch c {
	case Greyscale:
		return true
	case Truecolour, GreyscaleAlpha, TruecolourAlpha:
		return d == Depth8 || d == Depth16
	case Indexed:
		return d != Depth16
	default:
		return false
	}
}
