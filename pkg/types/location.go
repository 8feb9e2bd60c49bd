package types

import "errors"

// SourceLocation pins a byte range within a source file to 1-based
// line/column coordinates. LineStart/LineEnd and ColumnStart/ColumnEnd are
// 1-based; ByteOffset is 0-based.
type SourceLocation struct {
	LineStart   int
	LineEnd     int
	ColumnStart int
	ColumnEnd   int
	ByteOffset  int
	ByteLength  int
}

// Validate checks that the byte range fits within sourceSize and that
// the end line never precedes the start line.
func (l SourceLocation) Validate(sourceSize int) error {
	if l.LineEnd < l.LineStart {
		return errors.New("location: line_end before line_start")
	}
	if l.ByteOffset < 0 || l.ByteLength < 0 {
		return errors.New("location: negative byte offset or length")
	}
	if l.ByteOffset+l.ByteLength > sourceSize {
		return errors.New("location: byte range exceeds source size")
	}
	return nil
}

// End returns the exclusive byte offset of the location (ByteOffset +
// ByteLength).
func (l SourceLocation) End() int {
	return l.ByteOffset + l.ByteLength
}
