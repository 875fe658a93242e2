package png

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
)

const signature = "\x89PNG\r\n\x1a\n"

// ChunkType is the 4-byte tag identifying a chunk. Tags outside the known set
// are carried through unchanged so callers can still inspect them.
type ChunkType string

const (
	TypeHeader    ChunkType = "IHDR"
	TypePalette   ChunkType = "PLTE"
	TypeImageData ChunkType = "IDAT"
	TypeEnd       ChunkType = "IEND"
)

// Chunk is a single length-prefixed record from a PNG stream. Chunks are
// immutable once read.
type Chunk struct {
	Length uint32
	Type   ChunkType
	Data   []byte
	CRC    uint32
}

// Critical reports whether the chunk is critical per the PNG tag naming
// convention (uppercase first letter).
func (c Chunk) Critical() bool {
	return len(c.Type) == 4 && c.Type[0] >= 'A' && c.Type[0] <= 'Z'
}

// VerifyChecksum recomputes the chunk CRC over the type tag and payload and
// compares it against the stored value. Reading never verifies implicitly.
func (c Chunk) VerifyChecksum() error {
	crc := crc32.NewIEEE()
	crc.Write([]byte(c.Type))
	crc.Write(c.Data)
	if got := crc.Sum32(); got != c.CRC {
		return &ChecksumError{Type: c.Type, Want: c.CRC, Got: got}
	}
	return nil
}

func (c Chunk) String() string {
	return fmt.Sprintf("%s chunk (%d bytes, crc %08x)", c.Type, c.Length, c.CRC)
}

// File holds the ordered chunk sequence of a single PNG stream.
type File struct {
	Chunks []Chunk
}

// ReadFile consumes a PNG stream: the 8-byte signature followed by chunks up
// to and including IEND. Nothing past the IEND chunk is read. Short reads are
// propagated as the underlying I/O error.
func ReadFile(r io.Reader) (*File, error) {
	var magic [8]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, err
	}
	if string(magic[:]) != signature {
		return nil, ErrInvalidMagic
	}

	var chunks []Chunk
	for {
		chunk, err := readChunk(r)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, chunk)
		if chunk.Type == TypeEnd {
			break
		}
	}
	return &File{Chunks: chunks}, nil
}

func readChunk(r io.Reader) (Chunk, error) {
	var head [8]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return Chunk{}, err
	}
	length := binary.BigEndian.Uint32(head[:4])

	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return Chunk{}, err
	}

	var crc [4]byte
	if _, err := io.ReadFull(r, crc[:]); err != nil {
		return Chunk{}, err
	}

	return Chunk{
		Length: length,
		Type:   ChunkType(head[4:8]),
		Data:   data,
		CRC:    binary.BigEndian.Uint32(crc[:]),
	}, nil
}
