package parser

import (
	"pynext/internal/ast"
	"pynext/internal/token"
)

// parseTypeName parses IDENT ("[" "]")*, preserving the textual array-depth
// form for Sema to resolve later.
func (p *Parser) parseTypeName() ast.TypeName {
	base := p.consume(token.Ident)
	dims := 0
	for p.at(token.LBracket) {
		p.advance()
		p.consume(token.RBracket)
		dims++
	}
	return ast.TypeName{Base: base.Text, Dims: dims}
}
