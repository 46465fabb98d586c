package png

import (
	"fmt"
	"math"
)

// Color type
const (
	Grayscale      uint8 = 0
	Truecolor      uint8 = 2
	Indexed        uint8 = 3 // needs PLTE, not supported
	GrayscaleAlpha uint8 = 4
	TruecolorAlpha uint8 = 6
)

var colorTypeName = map[uint8]string{
	Grayscale:      "Grayscale",
	Truecolor:      "Truecolor",
	Indexed:        "Indexed",
	GrayscaleAlpha: "Grayscale with alpha",
	TruecolorAlpha: "Truecolor with alpha",
}

// ColorTypeName returns a readable name of ct.
func ColorTypeName(ct uint8) string {
	name, ok := colorTypeName[ct]
	if !ok {
		name = fmt.Sprintf("unknown(%d)", ct)
	}
	return name
}

const headerLength = 13

// Header holds the fields of IHDR.
//
// Only the header is interpreted here. Pixel data (IDAT inflate,
// unfiltering) is left to a decoder consuming File.Chunks.
type Header struct {
	Width       int
	Height      int
	Depth       uint8
	ColorType   uint8
	Compression uint8
	Filter      uint8
	Interlace   uint8
}

// String makes Header satisfy the Stringer interface.
func (h Header) String() string {
	return fmt.Sprintf("Width = %d, Height = %d, Bit depth = %d, Color type = %d, Compression method = %d, Filter method = %d, Interlace method = %d",
		h.Width, h.Height, h.Depth, h.ColorType, h.Compression, h.Filter, h.Interlace)
}

// DecodeHeader decodes the IHDR layout from c.Data.
// The chunk type is not checked.
func DecodeHeader(c Chunk) (Header, error) {
	var h Header

	if len(c.Data) < headerLength {
		return h, formatError(ErrMalformedChunk, c.Offset, "header needs %d data bytes, got %d", headerLength, len(c.Data))
	}

	width, err := Uint(c.Data, 0, 4)
	if err != nil {
		return h, err
	}
	height, err := Uint(c.Data, 4, 4)
	if err != nil {
		return h, err
	}
	if width > math.MaxInt32 || height > math.MaxInt32 {
		return h, formatError(ErrMalformedChunk, c.Offset, "dimensions %dx%d exceed 2^31-1", width, height)
	}

	h = Header{
		Width:       int(width),
		Height:      int(height),
		Depth:       c.Data[8],
		ColorType:   c.Data[9],
		Compression: c.Data[10],
		Filter:      c.Data[11],
		Interlace:   c.Data[12],
	}
	if h.ColorType == Indexed {
		return Header{}, formatError(ErrUnsupportedFeature, c.Offset, "palette images are not supported")
	}

	return h, nil
}

// Header decodes the first chunk of f, conventionally IHDR.
func (f *File) Header() (Header, error) {
	if len(f.Chunks) == 0 {
		return Header{}, formatError(ErrInvalidBuffer, len(Signature), "no chunks")
	}
	return DecodeHeader(f.Chunks[0])
}

// ReadHeader parses buf and decodes its header.
func ReadHeader(buf []byte) (Header, error) {
	f, err := Parse(buf)
	if err != nil {
		return Header{}, err
	}
	return f.Header()
}
