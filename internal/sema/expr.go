package sema

import (
	"pynext/internal/ast"
	"pynext/internal/diag"
	"pynext/internal/types"
)

// checkExpr dispatches on the expression's concrete kind and fills in its
// type slot. Every case sets a type, even on error paths (void), so that
// after a full walk every reachable expression node has a non-null type.
func (c *Checker) checkExpr(e ast.Expr) {
	switch ex := e.(type) {
	case *ast.Literal:
		c.checkLiteral(ex)
	case *ast.Variable:
		c.checkVariable(ex)
	case *ast.Binary:
		c.checkBinary(ex)
	case *ast.Call:
		c.checkCall(ex)
	case *ast.MemberAccess:
		c.checkMemberAccess(ex)
	case *ast.Index:
		c.checkIndex(ex)
	case *ast.ArrayLiteral:
		c.checkArrayLiteral(ex)
	}
}

func (c *Checker) checkLiteral(lit *ast.Literal) {
	switch {
	case lit.IsInt:
		lit.SetType(types.IntType)
	case lit.IsFloat:
		lit.SetType(types.FloatType)
	case lit.IsBool:
		lit.SetType(types.BoolType)
	case lit.IsString:
		lit.SetType(types.StringType)
	}
}

func (c *Checker) checkVariable(v *ast.Variable) {
	t, ok := c.symbols[v.Name]
	if !ok {
		c.reportf(diag.SemaUndefinedName, v.Span(), "undefined name %q", v.Name)
		v.SetType(types.VoidType)
		return
	}
	v.SetType(t)
}

// checkBinary implements the expression type rules, including the two
// documented permissive behaviors: non-assignment Binary falls back to the
// left operand's type whenever both sides aren't int (rather than
// rejecting mismatched operands), and arithmetic is not restricted to
// numeric types at the type-checking stage.
func (c *Checker) checkBinary(b *ast.Binary) {
	if b.Op == ast.OpAssign {
		c.checkAssign(b)
		return
	}

	c.checkExpr(b.Left)
	c.checkExpr(b.Right)

	lt, rt := b.Left.Type(), b.Right.Type()
	if lt.Kind == types.Int && rt.Kind == types.Int {
		b.SetType(types.IntType)
		return
	}
	b.SetType(lt)
}

// checkAssign requires the left side to be an l-value (Variable,
// MemberAccess, or Index). Both sides are walked regardless; the result
// type is always the right side's type, with no compatibility check
// against the left side's existing type.
func (c *Checker) checkAssign(b *ast.Binary) {
	switch b.Left.(type) {
	case *ast.Variable, *ast.MemberAccess, *ast.Index:
	default:
		c.report(diag.SemaInvalidLValue, b.Left.Span(), "left side of '=' is not assignable")
	}
	c.checkExpr(b.Left)
	c.checkExpr(b.Right)
	b.SetType(b.Right.Type())
}

func (c *Checker) checkCall(call *ast.Call) {
	for _, arg := range call.Args {
		c.checkExpr(arg)
	}

	fnType, ok := c.symbols[call.Callee]
	if !ok {
		c.reportf(diag.SemaUndefinedName, call.Span(), "undefined function %q", call.Callee)
		call.SetType(types.VoidType)
		return
	}
	if fnType.Kind != types.Func {
		c.reportf(diag.SemaNotAFunction, call.Span(), "%q is not a function", call.Callee)
		call.SetType(types.VoidType)
		return
	}
	if len(call.Args) != len(fnType.Params) {
		c.reportf(diag.SemaArityMismatch, call.Span(),
			"%q expects %d argument(s), got %d", call.Callee, len(fnType.Params), len(call.Args))
	}
	call.SetType(fnType.Result)
}

func (c *Checker) checkMemberAccess(ma *ast.MemberAccess) {
	c.checkExpr(ma.Object)
	objType := ma.Object.Type()

	if objType.Kind != types.Struct {
		c.report(diag.SemaNotAStruct, ma.Object.Span(), "member access on a non-struct value")
		ma.SetType(types.VoidType)
		return
	}
	fieldType := objType.FieldType(ma.Member)
	if fieldType == nil {
		c.reportf(diag.SemaUnknownMember, ma.Span(), "%q has no field %q", objType.Name, ma.Member)
		ma.SetType(types.VoidType)
		return
	}
	ma.SetType(fieldType)
}

func (c *Checker) checkIndex(ix *ast.Index) {
	c.checkExpr(ix.Object)
	c.checkExpr(ix.Idx)

	objType := ix.Object.Type()
	if objType.Kind != types.Array {
		c.report(diag.SemaNotAnArray, ix.Object.Span(), "index on a non-array value")
		ix.SetType(types.VoidType)
		return
	}
	if ix.Idx.Type().Kind != types.Int {
		c.report(diag.SemaIndexNotInt, ix.Idx.Span(), "array index must be int")
	}
	ix.SetType(objType.Elem)
}

// checkArrayLiteral types an empty literal as array-of-int and a
// non-empty literal as array-of-(first element's type). Elements beyond
// the first are walked but not checked against it.
func (c *Checker) checkArrayLiteral(al *ast.ArrayLiteral) {
	if len(al.Elements) == 0 {
		al.SetType(types.NewArray(types.IntType))
		return
	}
	for _, elem := range al.Elements {
		c.checkExpr(elem)
	}
	al.SetType(types.NewArray(al.Elements[0].Type()))
}
