package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) inside one file.
//
// The zero Span is the canonical "no selection" value: it points at file 0
// with an empty range, and NoSpan should be used to make that intent explicit.
type Span struct {
	File  FileID
	Start uint32 // inclusive byte offset
	End   uint32 // exclusive byte offset
}

// NoSpan is the absent-selection sentinel.
var NoSpan = Span{}

// Valid reports whether the span describes an ordered, non-empty range.
// Buffer-bounds checking needs file content and lives in Context/FileSet.
func (s Span) Valid() bool {
	return s.Start < s.End
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover extends s to include other. Spans from different files are left
// untouched.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Text returns the bytes the span selects inside content, or nil when the
// span falls outside the buffer.
func (s Span) Text(content []byte) []byte {
	if !s.Valid() || int(s.End) > len(content) {
		return nil
	}
	return content[s.Start:s.End]
}
