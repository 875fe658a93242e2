package png

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headerChunk(width, height uint32, depth, colour, compression, filter, interlace byte) Chunk {
	data := make([]byte, 13)
	binary.BigEndian.PutUint32(data[0:4], width)
	binary.BigEndian.PutUint32(data[4:8], height)
	data[8] = depth
	data[9] = colour
	data[10] = compression
	data[11] = filter
	data[12] = interlace
	return Chunk{Length: 13, Type: TypeHeader, Data: data}
}

func TestInterpretHeader(t *testing.T) {
	header, err := InterpretHeader(headerChunk(640, 480, 8, 2, 0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, uint32(640), header.Width)
	assert.Equal(t, uint32(480), header.Height)
	assert.Equal(t, Depth8, header.BitDepth)
	assert.Equal(t, Truecolour, header.ColourType)
	assert.Equal(t, InterlaceNone, header.Interlace)
	assert.Equal(t, 3, header.BytesPerPixel())
	assert.Equal(t, 1920, header.ScanlineLength())
}

func TestInterpretHeaderIdempotent(t *testing.T) {
	chunk := headerChunk(2, 2, 8, 0, 0, 0, 0)
	first, err := InterpretHeader(chunk)
	require.NoError(t, err)
	second, err := InterpretHeader(chunk)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestInterpretHeaderWrongChunkType(t *testing.T) {
	_, err := InterpretHeader(Chunk{Type: TypeImageData})
	var unexpected *UnexpectedChunkTypeError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, TypeHeader, unexpected.Expected)
	assert.Equal(t, TypeImageData, unexpected.Actual)
}

func TestInterpretHeaderShortPayload(t *testing.T) {
	_, err := InterpretHeader(Chunk{Type: TypeHeader, Data: make([]byte, 12)})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestInterpretHeaderUnknownColourType(t *testing.T) {
	_, err := InterpretHeader(headerChunk(1, 1, 8, 5, 0, 0, 0))
	var unknown *UnknownColourTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, byte(5), unknown.Value)
}

func TestInterpretHeaderUnknownBitDepth(t *testing.T) {
	_, err := InterpretHeader(headerChunk(1, 1, 3, 0, 0, 0, 0))
	var unknown *UnknownBitDepthError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, byte(3), unknown.Value)
}

func TestInterpretHeaderIllegalCombination(t *testing.T) {
	// Depth 4 is fine for greyscale but not for truecolour.
	_, err := InterpretHeader(headerChunk(1, 1, 4, 2, 0, 0, 0))
	var invalid *InvalidCombinationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, Depth4, invalid.BitDepth)
	assert.Equal(t, Truecolour, invalid.ColourType)
}

func TestInterpretHeaderLegalCombinations(t *testing.T) {
	legal := map[ColourType][]byte{
		Greyscale:       {1, 2, 4, 8, 16},
		Truecolour:      {8, 16},
		Indexed:         {1, 2, 4, 8},
		GreyscaleAlpha:  {8, 16},
		TruecolourAlpha: {8, 16},
	}
	all := []byte{1, 2, 4, 8, 16}
	for colour, depths := range legal {
		ok := map[byte]bool{}
		for _, d := range depths {
			ok[d] = true
		}
		for _, d := range all {
			_, err := InterpretHeader(headerChunk(1, 1, d, byte(colour), 0, 0, 0))
			if ok[d] {
				assert.NoError(t, err, "%s depth %d", colour, d)
			} else {
				var invalid *InvalidCombinationError
				assert.ErrorAs(t, err, &invalid, "%s depth %d", colour, d)
			}
		}
	}
}

func TestInterpretHeaderUnknownMethods(t *testing.T) {
	_, err := InterpretHeader(headerChunk(1, 1, 8, 0, 1, 0, 0))
	var compression *UnknownCompressionMethodError
	require.ErrorAs(t, err, &compression)

	_, err = InterpretHeader(headerChunk(1, 1, 8, 0, 0, 1, 0))
	var filter *UnknownFilterMethodError
	require.ErrorAs(t, err, &filter)

	_, err = InterpretHeader(headerChunk(1, 1, 8, 0, 0, 0, 2))
	var interlace *UnknownInterlaceMethodError
	require.ErrorAs(t, err, &interlace)
	assert.Equal(t, byte(2), interlace.Value)
}

func TestInterpretHeaderAdam7(t *testing.T) {
	header, err := InterpretHeader(headerChunk(1, 1, 8, 0, 0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, InterlaceAdam7, header.Interlace)
}
