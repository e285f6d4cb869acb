package lexer

import (
	"pynext/internal/diag"
	"pynext/internal/source"
	"pynext/internal/token"
)

// Lexer scans exactly one source.File into a token stream. A Lexer instance
// is not reusable across files and is driven by exactly one Parser.
type Lexer struct {
	file     *source.File
	cur      cursor
	reporter diag.Reporter

	doneEOF bool
}

// New constructs a Lexer over file, reporting lexical diagnostics to r.
// A nil r discards diagnostics.
func New(file *source.File, r diag.Reporter) *Lexer {
	if r == nil {
		r = diag.NopReporter{}
	}
	return &Lexer{file: file, cur: newCursor(file), reporter: r}
}

// Next advances past insignificant whitespace and comments and returns the
// next significant token. EOF is sticky: once returned, every later call
// also returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.doneEOF {
		return lx.eofToken()
	}

	lx.skipTrivia()

	if lx.cur.eof() {
		lx.doneEOF = true
		return lx.eofToken()
	}

	ch := lx.cur.peek()
	switch {
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()
	case isDigit(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) eofToken() token.Token {
	sp := source.Span{Start: lx.cur.off, End: lx.cur.off}
	return token.Token{Kind: token.EOF, Span: sp, Text: ""}
}

// skipTrivia consumes whitespace and '#'-to-end-of-line comments.
func (lx *Lexer) skipTrivia() {
	for !lx.cur.eof() {
		b := lx.cur.peek()
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			lx.cur.bump()
		case b == '#':
			for !lx.cur.eof() && lx.cur.peek() != '\n' {
				lx.cur.bump()
			}
		default:
			return
		}
	}
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	lx.reporter.Report(diag.Diagnostic{Severity: diag.SevError, Code: code, Message: msg, Primary: sp})
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
