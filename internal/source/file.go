package source

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// File is a single source buffer, borrowed by a Lexer for the lifetime of
// one compile. Tokens carry Spans into File.Content rather than copies, so
// the File must outlive every token produced from it.
type File struct {
	Path    string
	Content []byte

	// lineIdx[i] is the byte offset of the i-th newline in Content.
	lineIdx []uint32
}

// New builds a File and its line index from raw bytes.
func New(path string, content []byte) *File {
	return &File{
		Path:    path,
		Content: content,
		lineIdx: buildLineIndex(content),
	}
}

// Len returns the content length as a uint32, panicking on overflow the same
// way the lexer's cursor does — sources larger than 4GiB are not supported.
func (f *File) Len() uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("pynext: source file too large: %w", err))
	}
	return n
}

// Position converts a byte offset into a 1-based line/column pair.
func (f *File) Position(off uint32) Position {
	return toLineCol(f.lineIdx, off)
}

// Text returns the substring covered by span.
func (f *File) Text(sp Span) string {
	return string(f.Content[sp.Start:sp.End])
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// toLineCol converts a byte offset to a 1-based line/column using a binary
// search over the newline-offset index: the number of newlines strictly
// before off is the count of completed lines preceding it.
func toLineCol(lineIdx []uint32, off uint32) Position {
	newlinesBefore := sort.Search(len(lineIdx), func(i int) bool {
		return lineIdx[i] >= off
	})

	var lineStart uint32
	if newlinesBefore > 0 {
		lineStart = lineIdx[newlinesBefore-1] + 1
	}
	return Position{Line: uint32(newlinesBefore + 1), Column: off - lineStart + 1}
}
