// Package source holds the lexer's view of a single input buffer: its raw
// bytes plus the byte-offset <-> line/column mapping used to stamp every
// token and diagnostic.
package source

import "fmt"

// Span is a half-open byte range [Start, End) into a File's content.
type Span struct {
	Start uint32
	End   uint32
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	start, end := s.Start, s.End
	if other.Start < start {
		start = other.Start
	}
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// Position is a 1-based line/column pair.
type Position struct {
	Line   uint32
	Column uint32
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
