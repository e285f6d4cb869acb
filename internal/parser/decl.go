package parser

import (
	"pynext/internal/ast"
	"pynext/internal/token"
)

// parseParams parses "(" (IDENT ":" TYPENAME ("," IDENT ":" TYPENAME)*)? ")".
func (p *Parser) parseParams() []ast.Param {
	p.consume(token.LParen)
	var params []ast.Param
	for !p.at(token.RParen) {
		name := p.consume(token.Ident)
		p.consume(token.Colon)
		typ := p.parseTypeName()
		params = append(params, ast.Param{Name: name.Text, Type: typ})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.consume(token.RParen)
	return params
}

// parseReturnType parses an optional "->" TYPENAME suffix.
func (p *Parser) parseReturnType() *ast.TypeName {
	if !p.at(token.Arrow) {
		return nil
	}
	p.advance()
	tn := p.parseTypeName()
	return &tn
}

// parseFunction parses "def" IDENT params ["->" TYPENAME] block "end".
func (p *Parser) parseFunction() *ast.FunctionDecl {
	start := p.consume(token.KwDef).Span
	name := p.consume(token.Ident)
	params := p.parseParams()
	ret := p.parseReturnType()
	body := p.parseBlock()
	end := p.consume(token.KwEnd)
	return ast.NewFunctionDecl(start.Cover(end.Span), name.Text, params, ret, body, false)
}

// parseExternFunction parses "extern" "def" IDENT params ["->" TYPENAME],
// with no body and no terminating "end".
func (p *Parser) parseExternFunction() *ast.FunctionDecl {
	start := p.consume(token.KwExtern).Span
	p.consume(token.KwDef)
	name := p.consume(token.Ident)
	params := p.parseParams()
	ret := p.parseReturnType()
	return ast.NewFunctionDecl(start.Cover(name.Span), name.Text, params, ret, nil, true)
}

// parseStruct parses "struct" IDENT (IDENT ":" TYPENAME)* "end".
func (p *Parser) parseStruct() *ast.StructDecl {
	start := p.consume(token.KwStruct).Span
	name := p.consume(token.Ident)
	var fields []ast.StructField
	for !p.at(token.KwEnd) && !p.at(token.EOF) {
		fieldName := p.consume(token.Ident)
		p.consume(token.Colon)
		typ := p.parseTypeName()
		fields = append(fields, ast.StructField{Name: fieldName.Text, Type: typ})
	}
	end := p.consume(token.KwEnd)
	return ast.NewStructDecl(start.Cover(end.Span), name.Text, fields)
}
