// Package sema implements the type checker: a single walk of the module
// AST that resolves names against a two-level symbol table, registers
// struct and function types, and annotates every reachable expression
// node with its semantic type.
package sema

import (
	"fmt"

	"pynext/internal/ast"
	"pynext/internal/diag"
	"pynext/internal/source"
	"pynext/internal/types"
)

// Checker holds the registries a module-level walk needs: a symbol table
// (name -> semantic type, the currently visible bindings) and a struct
// registry (struct name -> Struct type). There are exactly two scope
// levels — module and function — with no inner block scopes, so a single
// map snapshot/restore stands in for a full scope stack.
type Checker struct {
	reporter diag.Reporter
	symbols  map[string]*types.Type
	structs  map[string]*types.Type
}

// NewChecker constructs a Checker. A nil reporter discards diagnostics.
func NewChecker(r diag.Reporter) *Checker {
	if r == nil {
		r = diag.NopReporter{}
	}
	return &Checker{
		reporter: r,
		symbols:  make(map[string]*types.Type),
		structs:  make(map[string]*types.Type),
	}
}

// Check walks mod once, mutating every reachable Expr's type slot in
// place. A Checker instance processes exactly one module and is not
// reusable.
func (c *Checker) Check(mod *ast.Module) {
	for _, sd := range mod.Structs {
		c.checkStructDecl(sd)
	}
	for _, fd := range mod.Functions {
		c.registerFunction(fd)
	}
	for _, fd := range mod.Functions {
		c.checkFunctionBody(fd)
	}
	for _, stmt := range mod.TopLevel {
		c.checkStmt(stmt)
	}
}

func (c *Checker) report(code diag.Code, sp source.Span, msg string) {
	c.reporter.Report(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  sp,
	})
}

func (c *Checker) reportf(code diag.Code, sp source.Span, format string, args ...any) {
	c.report(code, sp, fmt.Sprintf(format, args...))
}
