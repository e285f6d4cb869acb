package sema

import (
	"pynext/internal/ast"
	"pynext/internal/types"
)

// checkStructDecl resolves each field's declared type and registers a
// Struct type under the declaration's name. Recursive struct references
// (a field whose type names the struct currently being declared) are not
// supported: forward declarations would need a separate registration pass
// before fields are resolved, which this single-pass walk does not do.
func (c *Checker) checkStructDecl(sd *ast.StructDecl) {
	fields := make([]types.Field, len(sd.Fields))
	for i, f := range sd.Fields {
		fields[i] = types.Field{
			Name: f.Name,
			Type: c.resolveType(f.Type.Base, f.Type.Dims),
		}
	}
	c.structs[sd.Name] = types.NewStruct(sd.Name, fields)
}

// registerFunction resolves a function's signature and registers it in
// the symbol table before any function body is walked, so that mutually
// and self-recursive calls resolve correctly.
func (c *Checker) registerFunction(fd *ast.FunctionDecl) {
	params := make([]*types.Type, len(fd.Params))
	for i, p := range fd.Params {
		params[i] = c.resolveType(p.Type.Base, p.Type.Dims)
	}
	result := c.resolveTypeName(fd.ReturnType)
	c.symbols[fd.Name] = types.NewFunc(params, result)
}

// checkFunctionBody walks a defined function's body in a snapshotted
// symbol-table scope: parameters are bound, the body is walked, and the
// pre-call snapshot is restored afterward. An extern function (no body)
// has nothing further to check.
func (c *Checker) checkFunctionBody(fd *ast.FunctionDecl) {
	if fd.Body == nil {
		return
	}
	snapshot := c.snapshotSymbols()
	for _, p := range fd.Params {
		c.symbols[p.Name] = c.resolveType(p.Type.Base, p.Type.Dims)
	}
	c.checkStmt(fd.Body)
	c.restoreSymbols(snapshot)
}

func (c *Checker) snapshotSymbols() map[string]*types.Type {
	snap := make(map[string]*types.Type, len(c.symbols))
	for k, v := range c.symbols {
		snap[k] = v
	}
	return snap
}

func (c *Checker) restoreSymbols(snap map[string]*types.Type) {
	c.symbols = snap
}
