package codegen

import (
	"pynext/internal/ast"
	"pynext/internal/ir"
	"pynext/internal/types"
)

// mapTypeName resolves a syntactic type name (as written in a parameter,
// return, or struct field declaration) directly, independently of Sema's
// own resolveType. This mirrors a known inconsistency between the two
// stages: Sema degrades an unresolved name to void, while CodeGen's
// resolution of the very same unresolved name falls back to a 64-bit
// integer here. The two stages are not reconciled; both fallbacks are
// reachable in the same program, on the same malformed type name.
func (g *CodeGen) mapTypeName(tn *ast.TypeName) *ir.Type {
	if tn == nil {
		return ir.Void
	}
	base := g.mapBaseTypeName(tn.Base)
	for i := 0; i < tn.Dims; i++ {
		base = ir.NewPtr(base)
	}
	return base
}

func (g *CodeGen) mapBaseTypeName(name string) *ir.Type {
	switch name {
	case "void":
		return ir.Void
	case "int":
		return ir.Int64
	case "float":
		return ir.Float64
	case "bool":
		return ir.Bool1
	case "string":
		return ir.NewPtr(ir.Int8)
	}
	if _, ok := g.structTypes[name]; ok {
		return ir.NewStructRef(name)
	}
	return ir.Int64
}

// mapType converts a semantic type (as annotated onto an expression node
// by Sema) into its IR shape, for lowering decisions driven by an
// expression's checked type rather than by a syntactic type name.
func (g *CodeGen) mapType(t *types.Type) *ir.Type {
	if t == nil {
		return ir.Int64
	}
	switch t.Kind {
	case types.Int:
		return ir.Int64
	case types.Float:
		return ir.Float64
	case types.Bool:
		return ir.Bool1
	case types.String:
		return ir.NewPtr(ir.Int8)
	case types.Void:
		return ir.Void
	case types.Struct:
		return ir.NewStructRef(t.Name)
	case types.Array:
		return ir.NewPtr(g.mapType(t.Elem))
	default:
		return ir.Int64
	}
}
