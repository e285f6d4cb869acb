package codegen

import (
	"pynext/internal/ast"
	"pynext/internal/diag"
	"pynext/internal/ir"
)

func (g *CodeGen) lowerExpr(e ast.Expr) *ir.Value {
	switch ex := e.(type) {
	case *ast.Literal:
		return g.lowerLiteral(ex)
	case *ast.Variable:
		return g.lowerVariable(ex)
	case *ast.Binary:
		return g.lowerBinary(ex)
	case *ast.Call:
		return g.lowerCall(ex)
	case *ast.MemberAccess:
		addr := g.lvalueAddress(ex)
		return g.builder.Load(addr)
	case *ast.Index:
		addr := g.lvalueAddress(ex)
		return g.builder.Load(addr)
	case *ast.ArrayLiteral:
		return g.lowerArrayLiteral(ex)
	default:
		return ir.ConstInt64(0)
	}
}

func (g *CodeGen) lowerLiteral(lit *ast.Literal) *ir.Value {
	switch {
	case lit.IsInt:
		return ir.ConstInt64(parseIntLiteral(lit.Text))
	case lit.IsFloat:
		return ir.ConstFloat64(parseFloatLiteral(lit.Text))
	case lit.IsBool:
		return ir.ConstBool1(lit.Text == "true")
	case lit.IsString:
		return ir.ConstStringPtr(lit.Text)
	default:
		return ir.ConstInt64(0)
	}
}

func (g *CodeGen) lowerVariable(v *ast.Variable) *ir.Value {
	slot, ok := g.namedValues[v.Name]
	if !ok {
		g.report(diag.CodegenMissingVariable, v.Span(), "undefined variable "+v.Name)
		return ir.ConstInt64(0)
	}
	return g.builder.Load(slot)
}

// lowerBinary lowers assignment through lvalueAddress and every other
// operator as signed-integer arithmetic or comparison, matching Sema's
// own permissive typing: the IR op chosen does not depend on whether the
// operand's semantic type was actually int.
func (g *CodeGen) lowerBinary(b *ast.Binary) *ir.Value {
	if b.Op == ast.OpAssign {
		addr := g.lvalueAddress(b.Left)
		val := g.lowerExpr(b.Right)
		g.builder.Store(addr, val)
		return val
	}

	lhs := g.lowerExpr(b.Left)
	rhs := g.lowerExpr(b.Right)

	switch b.Op {
	case ast.OpAdd:
		return g.builder.Add(lhs, rhs)
	case ast.OpSub:
		return g.builder.Sub(lhs, rhs)
	case ast.OpMul:
		return g.builder.Mul(lhs, rhs)
	case ast.OpDiv:
		return g.builder.Div(lhs, rhs)
	case ast.OpLt:
		return g.builder.ICmp(ir.OpICmpLt, lhs, rhs)
	case ast.OpGt:
		return g.builder.ICmp(ir.OpICmpGt, lhs, rhs)
	case ast.OpEq:
		return g.builder.ICmp(ir.OpICmpEq, lhs, rhs)
	case ast.OpNe:
		return g.builder.ICmp(ir.OpICmpNe, lhs, rhs)
	default:
		return ir.ConstInt64(0)
	}
}

func (g *CodeGen) lowerCall(call *ast.Call) *ir.Value {
	fn := g.mod.FindFunc(call.Callee)
	if fn == nil {
		g.report(diag.CodegenMissingFunction, call.Span(), "undefined function "+call.Callee)
		return ir.ConstInt64(0)
	}
	if len(call.Args) != len(fn.Params) {
		g.report(diag.CodegenArityMismatch, call.Span(), "call to "+call.Callee+" has the wrong number of arguments")
	}

	args := make([]*ir.Value, len(call.Args))
	for i, a := range call.Args {
		args[i] = g.lowerExpr(a)
	}
	callee := &ir.Value{Kind: ir.GlobalValue, Name: fn.Name, Type: fn.ResultType}
	result := g.builder.Call(callee, args, fn.ResultType)
	if result == nil {
		return ir.ConstInt64(0)
	}
	return result
}

// lowerArrayLiteral heap-allocates N*sizeof(T) bytes via the host malloc
// symbol and stores each element at its index.
func (g *CodeGen) lowerArrayLiteral(al *ast.ArrayLiteral) *ir.Value {
	elemType := g.mapType(al.Type().Elem)
	n := int64(len(al.Elements))

	mallocFn := g.mallocDecl()
	size := ir.ConstInt64(n * elemSize(elemType))
	rawPtr := g.builder.Call(mallocFn, []*ir.Value{size}, ir.NewPtr(ir.Int8))

	base := &ir.Value{Kind: ir.RegisterValue, ID: rawPtr.ID, Type: ir.NewPtr(elemType)}
	for i, elemExpr := range al.Elements {
		val := g.lowerExpr(elemExpr)
		addr := g.builder.GEPIndex(base, ir.ConstInt64(int64(i)), elemType)
		g.builder.Store(addr, val)
	}
	return base
}

// mallocDecl declares the host malloc function on first use, lazily, and
// caches it for the rest of the module.
func (g *CodeGen) mallocDecl() *ir.Value {
	if g.mallocFn != nil {
		return g.mallocFn
	}
	resultType := ir.NewPtr(ir.Int8)
	if g.mod.FindFunc("malloc") == nil {
		g.mod.Funcs = append(g.mod.Funcs, &ir.Func{
			Name:       "malloc",
			Params:     []*ir.Value{{Kind: ir.ParamValue, Type: ir.Int64, Name: "size"}},
			ResultType: resultType,
			Extern:     true,
		})
	}
	g.mallocFn = &ir.Value{Kind: ir.GlobalValue, Name: "malloc", Type: resultType}
	return g.mallocFn
}

func elemSize(t *ir.Type) int64 {
	switch t.Kind {
	case ir.Bool1Ty, ir.Int8Ty:
		return 1
	default:
		return 8
	}
}
