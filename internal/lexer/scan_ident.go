package lexer

import "pynext/internal/token"

// scanIdentOrKeyword scans [A-Za-z_][A-Za-z0-9_]* and classifies it against
// the keyword table; any keyword match wins over Ident.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cur.mark()
	lx.cur.bump()
	for isIdentContinue(lx.cur.peek()) {
		lx.cur.bump()
	}

	sp := lx.cur.spanFrom(start)
	text := lx.file.Text(sp)

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
