package codegen

import (
	"pynext/internal/ast"
	"pynext/internal/ir"
)

func (g *CodeGen) lowerStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.Block:
		for _, inner := range st.Statements {
			g.lowerStmt(inner)
		}
	case *ast.ExprStmt:
		g.lowerExpr(st.Expr)
	case *ast.Return:
		g.lowerReturn(st)
	case *ast.VarDecl:
		g.lowerVarDecl(st)
	case *ast.If:
		g.lowerIf(st)
	case *ast.While:
		g.lowerWhile(st)
	}
}

func (g *CodeGen) lowerReturn(r *ast.Return) {
	if r.Value == nil {
		g.builder.Ret(nil)
		return
	}
	g.builder.Ret(g.lowerExpr(r.Value))
}

// lowerVarDecl always allocates the local's stack slot in the function's
// entry block (a stable address, enabling a later mem2reg-style pass),
// regardless of where in the body the declaration textually appears.
func (g *CodeGen) lowerVarDecl(vd *ast.VarDecl) {
	elemType := g.localType(vd)

	entry := g.curFunc.EntryBlock()
	savedBlock := g.builder.Block()
	g.builder.SetBlock(entry)
	slot := g.builder.Alloca(vd.Name, elemType)
	g.builder.SetBlock(savedBlock)

	if vd.Init != nil {
		val := g.lowerExpr(vd.Init)
		g.builder.Store(slot, val)
	} else {
		g.zeroInit(slot, elemType)
	}
	g.namedValues[vd.Name] = slot
}

// zeroInit stores the type's zero value at addr. An aggregate has no
// single-instruction zero constant in this IR, so a struct is zeroed
// field by field instead of as one whole-aggregate store.
func (g *CodeGen) zeroInit(addr *ir.Value, t *ir.Type) {
	if t.Kind != ir.StructTy {
		g.builder.Store(addr, zeroValue(t))
		return
	}
	layout := g.mod.FindStruct(t.Name)
	if layout == nil {
		return
	}
	for i, fieldType := range layout.FieldTypes {
		fieldAddr := g.builder.GEPField(addr, i, fieldType)
		g.zeroInit(fieldAddr, fieldType)
	}
}

// localType prefers the declared type name (CodeGen's own, independent
// resolution) when present, falling back to the initializer expression's
// Sema-checked type otherwise.
func (g *CodeGen) localType(vd *ast.VarDecl) *ir.Type {
	if vd.Type != nil {
		return g.mapTypeName(vd.Type)
	}
	return g.mapType(vd.Init.Type())
}

func zeroValue(t *ir.Type) *ir.Value {
	switch t.Kind {
	case ir.Float64Ty:
		return ir.ConstFloat64(0)
	case ir.Bool1Ty:
		return ir.ConstBool1(false)
	case ir.PtrTy:
		return &ir.Value{Kind: ir.ConstValue, Type: t}
	default:
		return ir.ConstInt64(0)
	}
}

// lowerIf creates then/else/merge blocks. Each block is appended to the
// function's block list when lowering reaches it, in then, else, merge
// order. The merge block is always appended and becomes the insertion
// point; when every branch has already returned it has no predecessors,
// and it is terminated by whatever is lowered next (or by the caller's
// fabricated return).
func (g *CodeGen) lowerIf(ifStmt *ast.If) {
	cond := g.widenToBool(g.lowerExpr(ifStmt.Cond))

	thenBlock := &ir.Block{Name: "then"}
	mergeBlock := &ir.Block{Name: "merge"}

	var elseBlock *ir.Block
	if ifStmt.Else != nil {
		elseBlock = &ir.Block{Name: "else"}
		g.builder.CondBr(cond, thenBlock, elseBlock)
	} else {
		g.builder.CondBr(cond, thenBlock, mergeBlock)
	}

	g.curFunc.Blocks = append(g.curFunc.Blocks, thenBlock)
	g.builder.SetBlock(thenBlock)
	g.lowerStmt(ifStmt.Then)
	if !g.builder.Block().Terminated() {
		g.builder.Br(mergeBlock)
	}

	if elseBlock != nil {
		g.curFunc.Blocks = append(g.curFunc.Blocks, elseBlock)
		g.builder.SetBlock(elseBlock)
		g.lowerStmt(ifStmt.Else)
		if !g.builder.Block().Terminated() {
			g.builder.Br(mergeBlock)
		}
	}

	g.curFunc.Blocks = append(g.curFunc.Blocks, mergeBlock)
	g.builder.SetBlock(mergeBlock)
}

// lowerWhile creates cond/body/after blocks in the standard
// branch-to-cond, test, branch-to-body-or-after shape.
func (g *CodeGen) lowerWhile(w *ast.While) {
	condBlock := &ir.Block{Name: "cond"}
	bodyBlock := &ir.Block{Name: "body"}
	afterBlock := &ir.Block{Name: "after"}

	g.builder.Br(condBlock)

	g.curFunc.Blocks = append(g.curFunc.Blocks, condBlock)
	g.builder.SetBlock(condBlock)
	cond := g.widenToBool(g.lowerExpr(w.Cond))
	g.builder.CondBr(cond, bodyBlock, afterBlock)

	g.curFunc.Blocks = append(g.curFunc.Blocks, bodyBlock)
	g.builder.SetBlock(bodyBlock)
	g.lowerStmt(w.Body)
	if !g.builder.Block().Terminated() {
		g.builder.Br(condBlock)
	}

	g.curFunc.Blocks = append(g.curFunc.Blocks, afterBlock)
	g.builder.SetBlock(afterBlock)
}

// widenToBool compares a 64-bit integer condition against 0 to produce a
// 1-bit value; any value that is already 1-bit passes through unchanged.
func (g *CodeGen) widenToBool(v *ir.Value) *ir.Value {
	if v.Type.Kind == ir.Bool1Ty {
		return v
	}
	return g.builder.ICmp(ir.OpICmpNe, v, ir.ConstInt64(0))
}
