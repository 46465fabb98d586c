package png

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeOne(t *testing.T, typ string, data []byte) (interface{}, error) {
	t.Helper()
	c, err := ReadChunk(buildPNG(rawChunk{typ, data}), 8)
	require.NoError(t, err)
	return DecodeChunk(c)
}

func TestDecodeChunk(t *testing.T) {
	tests := []struct {
		typ  string
		data []byte
		want interface{}
	}{
		{"IHDR", ihdrData(3, 4, 8, Truecolor), Header{Width: 3, Height: 4, Depth: 8, ColorType: Truecolor}},
		{"sRGB", []byte{2}, SRGBData{RenderingIntent: 2}},
		{"tEXt", []byte("Comment\x00made by hand"), Text{Keyword: "Comment", Value: "made by hand"}},
		{"tEXt", []byte("no keyword"), Text{Value: "no keyword"}},
		{"gAMA", []byte{0, 0, 0xb1, 0x8f}, Gamma{Value: 45455}},
		{"pHYs", []byte{0, 0, 0x0b, 0x13, 0, 0, 0x0b, 0x13, 1}, PhysicalDimensions{PixelsPerUnitX: 2835, PixelsPerUnitY: 2835, Unit: 1}},
		{"tIME", []byte{0x07, 0xe7, 3, 14, 15, 9, 26}, ModTime{Year: 2023, Month: 3, Day: 14, Hour: 15, Minute: 9, Second: 26}},
		{"IEND", nil, End{}},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			v, err := decodeOne(t, tt.typ, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestDecodeChunkStrings(t *testing.T) {
	assert.Equal(t, "Rendering intent = 0", SRGBData{}.String())
	assert.Equal(t, "Gamma = 0.45455", Gamma{Value: 45455}.String())
	assert.Equal(t, "Pixels per unit = 2835x2835, Unit = metre", PhysicalDimensions{2835, 2835, 1}.String())
	assert.Equal(t, `"Title" = "x"`, Text{"Title", "x"}.String())

	m := ModTime{Year: 2023, Month: 3, Day: 14, Hour: 15, Minute: 9, Second: 26}
	assert.Equal(t, "Last modified = 2023-03-14 15:09:26", m.String())
	assert.Equal(t, time.Date(2023, time.March, 14, 15, 9, 26, 0, time.UTC), m.Time())
}

func TestDecodeChunkNotImplemented(t *testing.T) {
	for _, typ := range []string{"IDAT", "PLTE", "zTXt", "iTXt", "prVt"} {
		_, err := decodeOne(t, typ, []byte{1, 2, 3})
		assert.True(t, errors.Is(err, ErrDecodeNotImplemented), "%s: %v", typ, err)
	}
}

func TestDecodeChunkMalformed(t *testing.T) {
	tests := []struct {
		typ  string
		data []byte
	}{
		{"sRGB", nil},
		{"gAMA", []byte{1, 2, 3}},
		{"pHYs", make([]byte, 10)},
		{"tIME", make([]byte, 6)},
		{"IEND", []byte{0}},
		{"tEXt", nil},
		{"IHDR", make([]byte, 5)},
		{"IHDR", make([]byte, 14)},
	}
	for _, tt := range tests {
		_, err := decodeOne(t, tt.typ, tt.data)
		assert.True(t, errors.Is(err, ErrMalformedChunk), "%s: %v", tt.typ, err)
	}
}
