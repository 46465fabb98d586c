package png

// inRange reports whether buf[offset:offset+size] is addressable.
// The sum is done in uint64 so large chunk lengths cannot wrap.
func inRange(buf []byte, offset, size int) bool {
	if offset < 0 || size < 0 {
		return false
	}
	return uint64(offset)+uint64(size) <= uint64(len(buf))
}

// available is the number of bytes of buf at and after offset.
func available(buf []byte, offset int) int {
	if offset < 0 || offset > len(buf) {
		return 0
	}
	return len(buf) - offset
}

// Extract returns a copy of size bytes of buf starting at offset.
// The result never aliases buf.
func Extract(buf []byte, offset, size int) ([]byte, error) {
	if !inRange(buf, offset, size) {
		return nil, formatError(ErrInvalidBuffer, offset, "%d bytes requested, %d available", size, available(buf, offset))
	}

	b := make([]byte, size)
	copy(b, buf[offset:offset+size])
	return b, nil
}

// Uint decodes size bytes at offset as a big-endian unsigned integer.
// size must be between 1 and 4.
func Uint(buf []byte, offset, size int) (uint32, error) {
	if size < 1 || size > 4 {
		return 0, formatError(ErrInvalidBuffer, offset, "cannot decode a %d byte integer", size)
	}
	if !inRange(buf, offset, size) {
		return 0, formatError(ErrInvalidBuffer, offset, "%d bytes requested, %d available", size, available(buf, offset))
	}

	var v uint32
	for _, b := range buf[offset : offset+size] {
		v = v<<8 | uint32(b)
	}
	return v, nil
}
