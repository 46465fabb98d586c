package png

import "bytes"

// Signature is the first eight bytes of every PNG datastream.
var Signature = []byte{137, 80, 78, 71, 13, 10, 26, 10}

// IsValidSignature compares the head of buf with Signature.
// A buffer too short to hold a signature is an error, not a mismatch.
func IsValidSignature(buf []byte) (bool, error) {
	if len(buf) < len(Signature) {
		return false, formatError(ErrInvalidBuffer, 0, "%d bytes is too short for a signature", len(buf))
	}
	return bytes.Equal(buf[:len(Signature)], Signature), nil
}
