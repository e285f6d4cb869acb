package codegen

import (
	"pynext/internal/ast"
	"pynext/internal/diag"
	"pynext/internal/ir"
)

// lvalueAddress returns a pointer to e's storage. The two composite cases
// are deliberately asymmetric: a struct lives in a stack slot, so
// MemberAccess recurses to an address and GEPs through it; an array is
// held as a bare pointer value, so Index instead lowers its object to a
// value directly and GEPs from that.
func (g *CodeGen) lvalueAddress(e ast.Expr) *ir.Value {
	switch ex := e.(type) {
	case *ast.Variable:
		slot, ok := g.namedValues[ex.Name]
		if !ok {
			g.report(diag.CodegenMissingVariable, ex.Span(), "undefined variable "+ex.Name)
			return &ir.Value{Kind: ir.ConstValue, Type: ir.NewPtr(ir.Int64)}
		}
		return slot
	case *ast.MemberAccess:
		return g.memberAddress(ex)
	case *ast.Index:
		return g.indexAddress(ex)
	default:
		g.report(diag.SemaInvalidLValue, e.Span(), "expression is not assignable")
		return &ir.Value{Kind: ir.ConstValue, Type: ir.NewPtr(ir.Int64)}
	}
}

// memberAddress obtains the object's address and GEPs the struct with the
// field index implied by the object's static struct type, as annotated
// by Sema. This is the same index both Sema diagnostics and CodeGen use.
func (g *CodeGen) memberAddress(ma *ast.MemberAccess) *ir.Value {
	objAddr := g.lvalueAddress(ma.Object)

	objType := ma.Object.Type()
	idx := objType.FieldIndex(ma.Member)
	if idx < 0 {
		g.report(diag.SemaUnknownMember, ma.Span(), "struct has no field "+ma.Member)
		return &ir.Value{Kind: ir.ConstValue, Type: ir.NewPtr(ir.Int64)}
	}
	fieldType := g.mapType(objType.Fields[idx].Type)
	return g.builder.GEPField(objAddr, idx, fieldType)
}

// indexAddress lowers the object to an array-pointer value (not an
// address of an address) and the index to a value, then GEPs using the
// element's IR type.
func (g *CodeGen) indexAddress(ix *ast.Index) *ir.Value {
	base := g.lowerExpr(ix.Object)
	idx := g.lowerExpr(ix.Idx)
	elemType := g.mapType(ix.Object.Type().Elem)
	return g.builder.GEPIndex(base, idx, elemType)
}
