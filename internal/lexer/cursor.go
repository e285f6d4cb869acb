// Package lexer implements a single-pass, peekable-by-one-byte
// scanner: Lexer.Next() recognizes exactly one token at a time, advancing
// past whitespace and '#' line comments first.
package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"pynext/internal/source"
)

// cursor tracks a byte offset into a source.File.
type cursor struct {
	file *source.File
	off  uint32
	n    uint32
}

func newCursor(f *source.File) cursor {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("pynext: source file too large: %w", err))
	}
	return cursor{file: f, n: n}
}

func (c *cursor) eof() bool {
	return c.off >= c.n
}

// peek returns the current byte, or 0 at EOF.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.file.Content[c.off]
}

// peekAt returns the byte `ahead` positions past the current one, or 0 if
// that position is past EOF.
func (c *cursor) peekAt(ahead uint32) byte {
	pos := c.off + ahead
	if pos >= c.n {
		return 0
	}
	return c.file.Content[pos]
}

func (c *cursor) bump() byte {
	if c.eof() {
		return 0
	}
	b := c.file.Content[c.off]
	c.off++
	return b
}

// mark is a saved cursor offset, used with spanFrom to recover the text of
// a just-scanned token.
type mark uint32

func (c *cursor) mark() mark {
	return mark(c.off)
}

func (c *cursor) spanFrom(m mark) source.Span {
	return source.Span{Start: uint32(m), End: c.off}
}
