package sema

import (
	"pynext/internal/ast"
	"pynext/internal/types"
)

// checkStmt dispatches on the statement's concrete kind. No inner block
// scope is introduced for If/While bodies: a VarDecl nested inside one
// leaks its binding into the enclosing function (or module) scope, since
// there is no scope stack beyond the single module/function snapshot.
func (c *Checker) checkStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.ExprStmt:
		c.checkExpr(st.Expr)
	case *ast.Return:
		if st.Value != nil {
			c.checkExpr(st.Value)
		}
	case *ast.Block:
		for _, inner := range st.Statements {
			c.checkStmt(inner)
		}
	case *ast.If:
		c.checkExpr(st.Cond)
		c.checkStmt(st.Then)
		if st.Else != nil {
			c.checkStmt(st.Else)
		}
	case *ast.While:
		c.checkExpr(st.Cond)
		c.checkStmt(st.Body)
	case *ast.VarDecl:
		c.checkVarDecl(st)
	case *ast.FunctionDecl, *ast.StructDecl:
		// Nested declarations do not occur in this language's grammar;
		// nothing to do if one somehow reaches here.
	}
}

// checkVarDecl computes the binding's type as the declared type if
// present, else the initializer's type, and registers it in the symbol
// table.
func (c *Checker) checkVarDecl(vd *ast.VarDecl) {
	if vd.Init != nil {
		c.checkExpr(vd.Init)
	}

	var declared *types.Type
	if vd.Type != nil {
		declared = c.resolveType(vd.Type.Base, vd.Type.Dims)
	}

	switch {
	case declared != nil:
		c.symbols[vd.Name] = declared
	case vd.Init != nil:
		c.symbols[vd.Name] = vd.Init.Type()
	default:
		// The parser rejects `var x` with neither a type nor an
		// initializer, so this is unreachable for a well-formed AST.
		c.symbols[vd.Name] = types.VoidType
	}
}
