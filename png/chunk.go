package png

import (
	"fmt"
)

// ChunkType is the 4-byte code of a chunk.
type ChunkType [4]byte

// Chunk types
var (
	IHDR = ChunkType{'I', 'H', 'D', 'R'} // Image header
	PLTE = ChunkType{'P', 'L', 'T', 'E'} // Palette
	IDAT = ChunkType{'I', 'D', 'A', 'T'} // Image data
	IEND = ChunkType{'I', 'E', 'N', 'D'} // Image trailer

	TEXT = ChunkType{'t', 'E', 'X', 't'} // Textual data
	ZTXT = ChunkType{'z', 'T', 'X', 't'} // Compressed textual data
	ITXT = ChunkType{'i', 'T', 'X', 't'} // International textual data
	SRGB = ChunkType{'s', 'R', 'G', 'B'} // Standard RGB colour space
	GAMA = ChunkType{'g', 'A', 'M', 'A'} // Image gamma
	PHYS = ChunkType{'p', 'H', 'Y', 's'} // Physical pixel dimensions
	TIME = ChunkType{'t', 'I', 'M', 'E'} // Image last-modification time
)

func (t ChunkType) String() string {
	return string(t[:])
}

// length, type, data, CRC
const (
	lengthSize    = 4
	typeSize      = 4
	crcSize       = 4
	chunkOverhead = lengthSize + typeSize + crcSize
)

// Chunk is a chunk of PNG.
type Chunk struct {
	Offset int // of the length field
	Length uint32
	Type   ChunkType
	Data   []byte
	CRC    [4]byte
}

// Size is the number of bytes the chunk occupies in the stream.
func (c *Chunk) Size() int {
	return chunkOverhead + int(c.Length)
}

// End is the offset of the byte following the chunk.
func (c *Chunk) End() int {
	return c.Offset + c.Size()
}

// String makes Chunk satisfy the Stringer interface.
func (c *Chunk) String() string {
	return fmt.Sprintf("chunk '%v' (%d bytes)", c.Type, c.Length)
}

// ReadChunk reads the chunk whose length field starts at offset.
func ReadChunk(buf []byte, offset int) (Chunk, error) {
	var c Chunk

	if !inRange(buf, offset, lengthSize+typeSize) {
		return c, formatError(ErrInvalidBuffer, offset, "truncated chunk header")
	}
	length, err := Uint(buf, offset, lengthSize)
	if err != nil {
		return c, err
	}
	// check before allocating: length is untrusted
	if !inRange(buf, offset, chunkOverhead+int(length)) {
		return c, formatError(ErrMalformedChunk, offset,
			"chunk '%s' declares %d data bytes, %d bytes remain", buf[offset+4:offset+8], length, len(buf)-offset)
	}

	c.Offset = offset
	c.Length = length
	copy(c.Type[:], buf[offset+lengthSize:])

	dataOffset := offset + lengthSize + typeSize
	if c.Data, err = Extract(buf, dataOffset, int(length)); err != nil {
		return Chunk{}, err
	}
	copy(c.CRC[:], buf[dataOffset+int(length):])

	return c, nil
}
