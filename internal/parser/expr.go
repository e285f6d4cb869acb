package parser

import (
	"pynext/internal/ast"
	"pynext/internal/diag"
	"pynext/internal/token"
)

// precedence returns the binding power of a binary operator token, and
// whether it is one (higher numbers bind tighter). "=" is lowest and right
// associative; the rest are left associative.
func precedence(k token.Kind) (int, bool) {
	switch k {
	case token.Assign:
		return 1, true
	case token.EqEq, token.BangEq:
		return 2, true
	case token.Lt, token.Gt:
		return 3, true
	case token.Plus, token.Minus:
		return 4, true
	case token.Star, token.Slash:
		return 5, true
	default:
		return 0, false
	}
}

func binaryOp(k token.Kind) ast.BinaryOp {
	switch k {
	case token.Plus:
		return ast.OpAdd
	case token.Minus:
		return ast.OpSub
	case token.Star:
		return ast.OpMul
	case token.Slash:
		return ast.OpDiv
	case token.Lt:
		return ast.OpLt
	case token.Gt:
		return ast.OpGt
	case token.EqEq:
		return ast.OpEq
	case token.BangEq:
		return ast.OpNe
	case token.Assign:
		return ast.OpAssign
	default:
		panic("binaryOp: not a binary operator token")
	}
}

// parseExpr parses an expression at the lowest precedence level (1),
// i.e. a full expression including top-level assignment.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseBinary(1)
}

// parseBinary implements Pratt precedence climbing. minPrec is the lowest
// operator precedence this call is willing to consume. "=" is right
// associative, so it recurses at the same precedence on its right operand;
// every other operator recurses at its own precedence plus one (prec+1).
func (p *Parser) parseBinary(minPrec int) ast.Expr {
	left := p.parsePostfix()

	for {
		prec, ok := precedence(p.cur.Kind)
		if !ok || prec < minPrec {
			return left
		}
		opTok := p.advance()
		op := binaryOp(opTok.Kind)

		nextMin := prec + 1
		if op == ast.OpAssign {
			nextMin = prec
		}
		right := p.parseBinary(nextMin)
		left = ast.NewBinary(left.Span().Cover(right.Span()), op, left, right)
	}
}

// parsePostfix parses a primary expression followed by a chain of
// "." IDENT (MemberAccess) and "[" expr "]" (Index) suffixes.
func (p *Parser) parsePostfix() ast.Expr {
	e := p.parsePrimary()
	for {
		switch p.cur.Kind {
		case token.Dot:
			p.advance()
			member := p.consume(token.Ident)
			e = ast.NewMemberAccess(e.Span().Cover(member.Span), e, member.Text)
		case token.LBracket:
			p.advance()
			idx := p.parseExpr()
			end := p.consume(token.RBracket)
			e = ast.NewIndex(e.Span().Cover(end.Span), e, idx)
		default:
			return e
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	switch p.cur.Kind {
	case token.IntLit:
		tok := p.advance()
		return ast.NewIntLiteral(tok.Span, tok.Text)
	case token.FloatLit:
		tok := p.advance()
		return ast.NewFloatLiteral(tok.Span, tok.Text)
	case token.StringLit:
		tok := p.advance()
		return ast.NewStringLiteral(tok.Span, tok.Text)
	case token.KwTrue, token.KwFalse:
		tok := p.advance()
		return ast.NewBoolLiteral(tok.Span, tok.Text)
	case token.Ident:
		return p.parseIdentOrCall()
	case token.LBracket:
		return p.parseArrayLiteral()
	case token.LParen:
		p.advance()
		e := p.parseExpr()
		p.consume(token.RParen)
		return e
	default:
		p.reportFatal(diag.SynUnexpectedToken, p.cur.Span, "expected an expression")
		panic(fatal{}) // unreachable; reportFatal always panics
	}
}

// parseIdentOrCall parses a bare identifier (Variable) or IDENT "(" args
// ")" (Call).
func (p *Parser) parseIdentOrCall() ast.Expr {
	name := p.advance()
	if !p.at(token.LParen) {
		return ast.NewVariable(name.Span, name.Text)
	}
	p.advance()
	var args []ast.Expr
	for !p.at(token.RParen) {
		args = append(args, p.parseExpr())
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	end := p.consume(token.RParen)
	return ast.NewCall(name.Span.Cover(end.Span), name.Text, args)
}

// parseArrayLiteral parses "[" (expr ("," expr)*)? "]".
func (p *Parser) parseArrayLiteral() ast.Expr {
	start := p.consume(token.LBracket).Span
	var elems []ast.Expr
	for !p.at(token.RBracket) {
		elems = append(elems, p.parseExpr())
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	end := p.consume(token.RBracket)
	return ast.NewArrayLiteral(start.Cover(end.Span), elems)
}
