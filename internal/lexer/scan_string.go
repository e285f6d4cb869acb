package lexer

import (
	"pynext/internal/diag"
	"pynext/internal/token"
)

// scanString scans "..."; Text is the content without quotes. There is no
// escape processing in this design and an unterminated or
// newline-containing string is a lexical error.
func (lx *Lexer) scanString() token.Token {
	start := lx.cur.mark()
	lx.cur.bump() // opening quote

	contentStart := lx.cur.mark()
	for {
		b := lx.cur.peek()
		if b == '"' {
			content := lx.cur.spanFrom(contentStart)
			text := lx.file.Text(content)
			lx.cur.bump() // closing quote
			return token.Token{Kind: token.StringLit, Span: lx.cur.spanFrom(start), Text: text}
		}
		if b == 0 && lx.cur.eof() {
			sp := lx.cur.spanFrom(start)
			lx.report(diag.LexUnterminatedString, sp, "unterminated string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.file.Text(sp)}
		}
		if b == '\n' {
			sp := lx.cur.spanFrom(start)
			lx.report(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.file.Text(sp)}
		}
		lx.cur.bump()
	}
}
