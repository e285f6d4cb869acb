// Package codegen lowers an annotated AST (post-Sema) into the ir
// package's typed SSA module: functions, basic blocks, stack allocations
// for locals, aggregate layout for structs, and heap allocation via the
// host malloc symbol for array literals.
package codegen

import (
	"pynext/internal/ast"
	"pynext/internal/diag"
	"pynext/internal/ir"
	"pynext/internal/source"
)

// CodeGen owns the module under construction plus the bookkeeping a
// single lowering pass needs: the current function/builder, namedValues
// (name -> stack slot for the current function), structTypes (struct
// name -> IR layout), and a lazily-declared malloc global.
type CodeGen struct {
	reporter diag.Reporter

	mod *ir.Module

	curFunc    *ir.Func
	builder    *ir.Builder
	namedValues map[string]*ir.Value

	structTypes map[string]*ir.StructLayout
	mallocFn    *ir.Value
}

// New constructs a CodeGen targeting a fresh module. A nil reporter
// discards diagnostics.
func New(r diag.Reporter) *CodeGen {
	if r == nil {
		r = diag.NopReporter{}
	}
	return &CodeGen{
		reporter:    r,
		mod:         &ir.Module{},
		namedValues: make(map[string]*ir.Value),
		structTypes: make(map[string]*ir.StructLayout),
	}
}

// Generate lowers mod (already checked by sema.Checker) into an ir.Module.
// A CodeGen instance processes exactly one module and is not reusable.
func (g *CodeGen) Generate(mod *ast.Module) *ir.Module {
	for _, sd := range mod.Structs {
		g.lowerStructDecl(sd)
	}
	for _, fd := range mod.Functions {
		g.declareFunction(fd)
	}
	for _, fd := range mod.Functions {
		if !fd.Extern {
			g.lowerFunctionBody(fd)
		}
	}
	g.lowerEntryPoint(mod)
	return g.mod
}

func (g *CodeGen) report(code diag.Code, sp source.Span, msg string) {
	g.reporter.Report(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  sp,
	})
}
