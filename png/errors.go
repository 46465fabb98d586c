package png

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds. Every error returned by this package matches one of them
// with errors.Is.
var (
	ErrInvalidBuffer        = errors.New("invalid buffer")
	ErrMalformedChunk       = errors.New("malformed chunk")
	ErrUnsupportedFeature   = errors.New("unsupported feature")
	ErrDecodeNotImplemented = errors.New("decode not implemented")
)

// FormatError reports where in the stream a problem was detected.
type FormatError struct {
	Kind   error
	Offset int
	Msg    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", e.Kind, e.Offset, e.Msg)
}

// Unwrap returns the error kind.
func (e *FormatError) Unwrap() error {
	return e.Kind
}

func formatError(kind error, offset int, format string, args ...interface{}) error {
	return errors.WithStack(&FormatError{Kind: kind, Offset: offset, Msg: fmt.Sprintf(format, args...)})
}
