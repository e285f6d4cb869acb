package codegen

import (
	"pynext/internal/ast"
	"pynext/internal/diag"
	"pynext/internal/ir"
)

// lowerFunctionBody lowers a defined function's body: a fresh entry
// block, stack slots for each parameter, the statement sequence, and a
// fabricated terminator if the body falls off the end unterminated. The
// previous insertion point and namedValues map are saved and restored
// around the call, matching Sema's own snapshot/restore discipline for
// function scopes.
func (g *CodeGen) lowerFunctionBody(fd *ast.FunctionDecl) {
	fn := g.mod.FindFunc(fd.Name)
	if fn == nil {
		g.report(diag.CodegenMissingFunction, fd.Span(), "internal: function was not declared before lowering")
		return
	}

	savedFunc, savedBuilder, savedNamed := g.curFunc, g.builder, g.namedValues

	entry := &ir.Block{Name: "entry"}
	fn.Blocks = []*ir.Block{entry}
	g.curFunc = fn
	g.builder = ir.NewBuilder(fn, entry)
	g.namedValues = make(map[string]*ir.Value)

	for i, p := range fd.Params {
		slot := g.builder.Alloca(p.Name, fn.Params[i].Type)
		g.builder.Store(slot, fn.Params[i])
		g.namedValues[p.Name] = slot
	}

	g.lowerStmt(fd.Body)

	if !g.builder.Block().Terminated() {
		g.fabricateReturn(fn.ResultType)
	}

	g.curFunc, g.builder, g.namedValues = savedFunc, savedBuilder, savedNamed
}

// fabricateReturn appends the missing terminator a function body fell off
// the end without: void for a void-returning function, a zero constant
// for an int-returning one, and a best-effort zero value for anything
// else (the language has no "undef" constant at this IR layer, so a
// same-typed zero stands in for it).
func (g *CodeGen) fabricateReturn(resultType *ir.Type) {
	switch resultType.Kind {
	case ir.VoidTy:
		g.builder.Ret(nil)
	case ir.Int64Ty:
		g.builder.Ret(ir.ConstInt64(0))
	case ir.Float64Ty:
		g.builder.Ret(ir.ConstFloat64(0))
	case ir.Bool1Ty:
		g.builder.Ret(ir.ConstBool1(false))
	default:
		g.builder.Ret(&ir.Value{Kind: ir.ConstValue, Type: resultType})
	}
}
