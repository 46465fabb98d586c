package png

import (
	"encoding/binary"
	"hash/crc32"
)

type rawChunk struct {
	typ  string
	data []byte
}

func chunkBytes(typ string, data []byte) []byte {
	b := make([]byte, 0, 12+len(data))
	b = binary.BigEndian.AppendUint32(b, uint32(len(data)))
	b = append(b, typ...)
	b = append(b, data...)
	crc := crc32.ChecksumIEEE(b[4:])
	return binary.BigEndian.AppendUint32(b, crc)
}

func buildPNG(chunks ...rawChunk) []byte {
	b := append([]byte{}, Signature...)
	for _, c := range chunks {
		b = append(b, chunkBytes(c.typ, c.data)...)
	}
	return b
}

func ihdrData(width, height uint32, depth, colorType uint8) []byte {
	b := make([]byte, 13)
	binary.BigEndian.PutUint32(b[0:], width)
	binary.BigEndian.PutUint32(b[4:], height)
	b[8] = depth
	b[9] = colorType
	return b
}

// 1x1 8-bit grayscale: IHDR IDAT IEND
func minimalPNG(colorType uint8) []byte {
	return buildPNG(
		rawChunk{"IHDR", ihdrData(1, 1, 8, colorType)},
		rawChunk{"IDAT", []byte{0x78, 0x9c, 0x63, 0x60, 0x00, 0x00, 0x00, 0x02, 0x00, 0x01}},
		rawChunk{"IEND", nil},
	)
}
