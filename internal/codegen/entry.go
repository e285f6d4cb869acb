package codegen

import (
	"pynext/internal/ast"
	"pynext/internal/ir"
)

// lowerEntryPoint materializes the implicit top-level entry function:
// __init if the user declared their own main, otherwise main. Its
// signature is always () -> int, and every top-level non-declaration
// statement is lowered into it in source order.
func (g *CodeGen) lowerEntryPoint(mod *ast.Module) {
	name := "main"
	if g.mod.FindFunc("main") != nil {
		name = "__init"
	}

	entry := &ir.Block{Name: "entry"}
	fn := &ir.Func{Name: name, ResultType: ir.Int64, Blocks: []*ir.Block{entry}}
	g.mod.Funcs = append(g.mod.Funcs, fn)

	g.curFunc = fn
	g.builder = ir.NewBuilder(fn, entry)
	g.namedValues = make(map[string]*ir.Value)

	for _, stmt := range mod.TopLevel {
		g.lowerStmt(stmt)
	}

	if !g.builder.Block().Terminated() {
		g.builder.Ret(ir.ConstInt64(0))
	}
}
