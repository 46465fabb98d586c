package png

import (
	"bytes"
	"fmt"
	"time"

	bst "github.com/mixcode/binarystruct"
	"github.com/pkg/errors"
)

// SRGBData is the payload of sRGB.
type SRGBData struct {
	RenderingIntent uint8
}

func (s SRGBData) String() string {
	return fmt.Sprintf("Rendering intent = %d", s.RenderingIntent)
}

// Text is the payload of tEXt.
type Text struct {
	Keyword string
	Value   string
}

func (t Text) String() string {
	return fmt.Sprintf("%q = %q", t.Keyword, t.Value)
}

// Gamma is the payload of gAMA, times 100000.
type Gamma struct {
	Value uint32 `binary:"uint32"`
}

func (g Gamma) String() string {
	return fmt.Sprintf("Gamma = %.5f", float64(g.Value)/100000)
}

// PhysicalDimensions is the payload of pHYs.
type PhysicalDimensions struct {
	PixelsPerUnitX uint32 `binary:"uint32"`
	PixelsPerUnitY uint32 `binary:"uint32"`
	Unit           uint8  `binary:"uint8"` // 1: metre
}

func (p PhysicalDimensions) String() string {
	unit := "unknown"
	if p.Unit == 1 {
		unit = "metre"
	}
	return fmt.Sprintf("Pixels per unit = %dx%d, Unit = %s", p.PixelsPerUnitX, p.PixelsPerUnitY, unit)
}

// ModTime is the payload of tIME, in UTC.
type ModTime struct {
	Year   uint16 `binary:"uint16"`
	Month  uint8  `binary:"uint8"`
	Day    uint8  `binary:"uint8"`
	Hour   uint8  `binary:"uint8"`
	Minute uint8  `binary:"uint8"`
	Second uint8  `binary:"uint8"`
}

// Time converts m to a time.Time. Out of range fields are normalized.
func (m ModTime) Time() time.Time {
	return time.Date(int(m.Year), time.Month(m.Month), int(m.Day), int(m.Hour), int(m.Minute), int(m.Second), 0, time.UTC)
}

func (m ModTime) String() string {
	return fmt.Sprintf("Last modified = %04d-%02d-%02d %02d:%02d:%02d", m.Year, m.Month, m.Day, m.Hour, m.Minute, m.Second)
}

// End is the empty payload of IEND.
type End struct{}

func (End) String() string {
	return "End of image"
}

// fixed payload sizes
var payloadLength = map[ChunkType]int{
	IHDR: headerLength,
	SRGB: 1,
	GAMA: 4,
	PHYS: 9,
	TIME: 7,
	IEND: 0,
}

// DecodeChunk decodes the payload of the chunk types it knows.
// Types it does not (IDAT, PLTE, zTXt, iTXt, private chunks...) are
// reported with ErrDecodeNotImplemented.
func DecodeChunk(c Chunk) (interface{}, error) {
	if n, ok := payloadLength[c.Type]; ok && len(c.Data) != n {
		return nil, formatError(ErrMalformedChunk, c.Offset, "chunk '%v' needs %d data bytes, got %d", c.Type, n, len(c.Data))
	}

	switch c.Type {
	case IHDR:
		h, err := DecodeHeader(c)
		if err != nil {
			return nil, err
		}
		return h, nil
	case SRGB:
		return SRGBData{RenderingIntent: c.Data[0]}, nil
	case TEXT:
		t, err := decodeText(c)
		if err != nil {
			return nil, err
		}
		return t, nil
	case GAMA:
		var g Gamma
		if err := readFixed(c, &g); err != nil {
			return nil, err
		}
		return g, nil
	case PHYS:
		var p PhysicalDimensions
		if err := readFixed(c, &p); err != nil {
			return nil, err
		}
		return p, nil
	case TIME:
		var m ModTime
		if err := readFixed(c, &m); err != nil {
			return nil, err
		}
		return m, nil
	case IEND:
		return End{}, nil
	}

	return nil, formatError(ErrDecodeNotImplemented, c.Offset, "chunk '%v'", c.Type)
}

func readFixed(c Chunk, v interface{}) error {
	if _, err := bst.Read(bytes.NewReader(c.Data), bst.BigEndian, v); err != nil {
		return errors.Wrapf(err, "decode chunk '%v' at offset %d", c.Type, c.Offset)
	}
	return nil
}

// keyword NUL text
func decodeText(c Chunk) (Text, error) {
	if len(c.Data) == 0 {
		return Text{}, formatError(ErrMalformedChunk, c.Offset, "empty text chunk")
	}
	i := bytes.IndexByte(c.Data, 0)
	if i < 0 {
		return Text{Value: string(c.Data)}, nil
	}
	return Text{Keyword: string(c.Data[:i]), Value: string(c.Data[i+1:])}, nil
}
