package png

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// File is a parsed PNG datastream.
//
// Valid reports the signature check only. Chunks are walked even when
// the signature does not match, so callers should not trust Chunks of a
// File that is not Valid.
type File struct {
	Valid  bool
	Chunks []Chunk
}

// Parse checks the signature of buf and splits the rest into chunks.
// Any chunk error aborts the walk; no partial File is returned.
// Neither an IEND trailer nor CRCs are checked.
func Parse(buf []byte) (*File, error) {
	valid, err := IsValidSignature(buf)
	if err != nil {
		return nil, err
	}

	f := &File{Valid: valid}
	offset := len(Signature)
	for offset < len(buf) {
		c, err := ReadChunk(buf, offset)
		if err != nil {
			return nil, err
		}
		f.Chunks = append(f.Chunks, c)
		offset = c.End()
	}

	return f, nil
}

// NewFile reads r to the end and parses it.
func NewFile(r io.Reader) (*File, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read png")
	}
	return Parse(buf)
}

// ReadFile reads the named file and parses it.
func ReadFile(name string) (*File, error) {
	buf, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return Parse(buf)
}

// ChunksByType returns the chunks of type t in file order.
func (f *File) ChunksByType(t ChunkType) []Chunk {
	var chunks []Chunk
	for _, c := range f.Chunks {
		if c.Type == t {
			chunks = append(chunks, c)
		}
	}
	return chunks
}

// TextChunks decodes every tEXt chunk. Malformed ones are skipped.
func (f *File) TextChunks() []Text {
	var texts []Text
	for _, c := range f.ChunksByType(TEXT) {
		t, err := decodeText(c)
		if err != nil {
			continue
		}
		texts = append(texts, t)
	}
	return texts
}
