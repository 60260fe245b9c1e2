// Package wire implements the length-prefixed string encoding used for
// passing descriptors across process boundaries.
package wire

import (
	"encoding/binary"
	"errors"
)

// ErrTruncated is returned when the buffer ends before a complete field.
var ErrTruncated = errors.New("truncated field")

// AppendString appends s to buf as a uvarint length prefix followed by the
// raw bytes. The empty string encodes as a zero-length field.
func AppendString(buf []byte, s string) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}

// ReadString decodes one length-prefixed string from buf and returns it with
// the remaining bytes.
func ReadString(buf []byte) (string, []byte, error) {
	length, n := binary.Uvarint(buf)
	if n <= 0 {
		return "", nil, ErrTruncated
	}
	buf = buf[n:]
	if uint64(len(buf)) < length {
		return "", nil, ErrTruncated
	}
	return string(buf[:length]), buf[length:], nil
}
