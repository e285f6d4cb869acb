// Package parser turns a token stream into an AST: recursive descent for
// statements and top-level items, Pratt precedence climbing for
// expressions. A parse error is fatal — there is no error-recovery or
// resync logic, unlike a parser meant to keep going after the first
// mistake.
package parser

import (
	"fmt"

	"pynext/internal/ast"
	"pynext/internal/diag"
	"pynext/internal/lexer"
	"pynext/internal/source"
	"pynext/internal/token"
)

// fatal unwinds the recursive-descent call stack back to Parse once a
// syntax error has already been reported.
type fatal struct{}

// Parser consumes a Lexer's output with exactly one token of lookahead.
// A Parser instance processes exactly one module and is not reusable.
type Parser struct {
	lx       *lexer.Lexer
	reporter diag.Reporter
	cur      token.Token
}

// New constructs a Parser over lx, reporting diagnostics to r (nil
// discards them).
func New(lx *lexer.Lexer, r diag.Reporter) *Parser {
	if r == nil {
		r = diag.NopReporter{}
	}
	p := &Parser{lx: lx, reporter: r}
	p.cur = p.lx.Next()
	return p
}

// Parse runs the parser to completion, returning the parsed Module or an
// error on the first syntax error (already reported to the Parser's
// Reporter).
func (p *Parser) Parse() (mod *ast.Module, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(fatal); ok {
				mod, err = nil, fmt.Errorf("parse error")
				return
			}
			panic(r)
		}
	}()
	mod = p.parseModule()
	return mod, nil
}

func (p *Parser) parseModule() *ast.Module {
	mod := &ast.Module{}
	for p.cur.Kind != token.EOF {
		switch p.cur.Kind {
		case token.KwExtern:
			mod.Functions = append(mod.Functions, p.parseExternFunction())
		case token.KwDef:
			mod.Functions = append(mod.Functions, p.parseFunction())
		case token.KwStruct:
			mod.Structs = append(mod.Structs, p.parseStruct())
		default:
			mod.TopLevel = append(mod.TopLevel, p.parseStatement())
		}
	}
	return mod
}

func (p *Parser) advance() token.Token {
	tok := p.cur
	p.cur = p.lx.Next()
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return p.cur.Kind == k
}

// consume requires the current token to have kind k, reports a fatal
// diagnostic and unwinds otherwise, and advances past it.
func (p *Parser) consume(k token.Kind) token.Token {
	if p.cur.Kind != k {
		p.reportFatal(diag.SynUnexpectedToken, p.cur.Span,
			fmt.Sprintf("expected %s, found %s", k, p.cur.Kind))
	}
	return p.advance()
}

func (p *Parser) reportFatal(code diag.Code, sp source.Span, msg string) {
	p.reporter.Report(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  sp,
	})
	panic(fatal{})
}
