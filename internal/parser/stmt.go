package parser

import (
	"pynext/internal/ast"
	"pynext/internal/diag"
	"pynext/internal/token"
)

// parseBlock parses the statements up to (but not consuming) the next
// "end", "else", or EOF.
func (p *Parser) parseBlock() *ast.Block {
	start := p.cur.Span
	var stmts []ast.Stmt
	for !p.at(token.KwEnd) && !p.at(token.KwElse) && !p.at(token.EOF) {
		stmts = append(stmts, p.parseStatement())
	}
	return ast.NewBlock(start.Cover(p.cur.Span), stmts)
}

// blockTerminator reports whether kind closes a block without being
// consumed by it.
func blockTerminator(k token.Kind) bool {
	return k == token.KwEnd || k == token.KwElse || k == token.EOF
}

func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur.Kind {
	case token.KwReturn:
		return p.parseReturn()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwVar:
		return p.parseVarDecl()
	default:
		return p.parseExprStatement()
	}
}

// parseReturn parses "return" [expr]. The expression is omitted when the
// following token closes the enclosing block.
func (p *Parser) parseReturn() *ast.Return {
	start := p.consume(token.KwReturn).Span
	if blockTerminator(p.cur.Kind) {
		return ast.NewReturn(start, nil)
	}
	val := p.parseExpr()
	return ast.NewReturn(start.Cover(val.Span()), val)
}

// parseIf parses "if" expr block ["else" block] "end".
func (p *Parser) parseIf() *ast.If {
	start := p.consume(token.KwIf).Span
	cond := p.parseExpr()
	then := p.parseBlock()
	var els *ast.Block
	if p.at(token.KwElse) {
		p.advance()
		els = p.parseBlock()
	}
	end := p.consume(token.KwEnd)
	return ast.NewIf(start.Cover(end.Span), cond, then, els)
}

// parseWhile parses "while" expr block "end".
func (p *Parser) parseWhile() *ast.While {
	start := p.consume(token.KwWhile).Span
	cond := p.parseExpr()
	body := p.parseBlock()
	end := p.consume(token.KwEnd)
	return ast.NewWhile(start.Cover(end.Span), cond, body)
}

// parseVarDecl parses "var" IDENT [":" TYPENAME] ["=" expr], rejecting the
// case where both the type and the initializer are absent.
func (p *Parser) parseVarDecl() *ast.VarDecl {
	start := p.consume(token.KwVar).Span
	name := p.consume(token.Ident)

	var typ *ast.TypeName
	if p.at(token.Colon) {
		p.advance()
		tn := p.parseTypeName()
		typ = &tn
	}

	var init ast.Expr
	end := name.Span
	if p.at(token.Assign) {
		p.advance()
		init = p.parseExpr()
		end = init.Span()
	} else if typ != nil {
		end = p.cur.Span
	}

	if typ == nil && init == nil {
		p.reportFatal(
			diag.SynVarNeedsTypeOrInit,
			start.Cover(name.Span),
			"var declaration needs a type annotation or an initializer",
		)
	}

	return ast.NewVarDecl(start.Cover(end), name.Text, typ, init)
}

func (p *Parser) parseExprStatement() *ast.ExprStmt {
	e := p.parseExpr()
	return ast.NewExprStmt(e.Span(), e)
}
