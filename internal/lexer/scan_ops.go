package lexer

import (
	"pynext/internal/diag"
	"pynext/internal/token"
)

// scanOperatorOrPunct scans a single operator or punctuation token. All are
// one byte except '->', '==', '!=', which require one byte of lookahead
// after '-', '=', '!' respectively.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cur.mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cur.spanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.file.Text(sp)}
	}

	ch := lx.cur.bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		if lx.cur.peek() == '>' {
			lx.cur.bump()
			return emit(token.Arrow)
		}
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '=':
		if lx.cur.peek() == '=' {
			lx.cur.bump()
			return emit(token.EqEq)
		}
		return emit(token.Assign)
	case '!':
		if lx.cur.peek() == '=' {
			lx.cur.bump()
			return emit(token.BangEq)
		}
		sp := lx.cur.spanFrom(start)
		lx.report(diag.LexUnknownChar, sp, "unexpected character '!'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.file.Text(sp)}
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '.':
		return emit(token.Dot)
	case ',':
		return emit(token.Comma)
	case ':':
		return emit(token.Colon)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	default:
		sp := lx.cur.spanFrom(start)
		lx.report(diag.LexUnknownChar, sp, "unexpected character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.file.Text(sp)}
	}
}
