package sema

import (
	"pynext/internal/ast"
	"pynext/internal/types"
)

// resolveTypeName resolves an ast.TypeName, or VoidType if tn is nil (an
// omitted return type means void).
func (c *Checker) resolveTypeName(tn *ast.TypeName) *types.Type {
	if tn == nil {
		return types.VoidType
	}
	return c.resolveType(tn.Base, tn.Dims)
}

// resolveType turns a textual TypeName into a semantic Type: scalar/void
// keywords first, then the struct registry, then (for a name ending in at
// least one "[]") recursion on the base name wrapped in array-of. An
// unknown name degrades silently to void, matching this language's
// permissive treatment of unresolved type references rather than making
// it a hard error.
func (c *Checker) resolveType(base string, dims int) *types.Type {
	resolved := c.resolveScalarOrStruct(base)
	for i := 0; i < dims; i++ {
		resolved = types.NewArray(resolved)
	}
	return resolved
}

func (c *Checker) resolveScalarOrStruct(name string) *types.Type {
	switch name {
	case "void":
		return types.VoidType
	case "int":
		return types.IntType
	case "float":
		return types.FloatType
	case "bool":
		return types.BoolType
	case "string":
		return types.StringType
	}
	if st, ok := c.structs[name]; ok {
		return st
	}
	return types.VoidType
}
