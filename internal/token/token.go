package token

import "pynext/internal/source"

// Token is an immutable lexeme with its source location. Text is a slice
// into the originating source.File's content and must not outlive it.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}
