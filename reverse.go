// Package linerev implements a filter, that reverses the characters of every
// line of its input, while keeping the order of lines.
package linerev

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

// Version of library.
const Version = "0.1.0"

// Terminator separates lines.
const Terminator = '\n'

// ErrInvalidText is returned, if input cannot be decoded as UTF-8.
var ErrInvalidText = errors.New("stream did not contain valid UTF-8")

// Reverse reverses the characters of each line in b. The last segment after
// splitting on Terminator is always dropped, see KeepSegments.
func Reverse(b []byte) ([]byte, error) {
	if !utf8.Valid(b) {
		return nil, ErrInvalidText
	}
	segments := KeepSegments(bytes.Split(b, []byte{Terminator}))
	var buf bytes.Buffer
	buf.Grow(len(b))
	for i, s := range segments {
		if i > 0 {
			buf.WriteByte(Terminator)
		}
		buf.Write(ReverseLine(s))
	}
	return buf.Bytes(), nil
}

// KeepSegments returns the segments, that make it into the output. The final
// segment is dropped, whether it is empty (input ended with a newline) or not
// (an unterminated last line is lost).
func KeepSegments(segments [][]byte) [][]byte {
	if len(segments) == 0 {
		return segments
	}
	return segments[:len(segments)-1]
}

// ReverseLine returns a new slice with the runes of line in reverse order.
// Line must be valid UTF-8.
func ReverseLine(line []byte) []byte {
	result := make([]byte, len(line))
	i := len(result)
	for len(line) > 0 {
		_, size := utf8.DecodeRune(line)
		i -= size
		copy(result[i:], line[:size])
		line = line[size:]
	}
	return result
}
