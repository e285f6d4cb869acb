package main

import (
	"fmt"
	"io"
	"strings"

	"pynext/internal/ast"
)

// dumpModule writes a one-line-per-node indented tree of mod to w.
func dumpModule(w io.Writer, mod *ast.Module) {
	for _, s := range mod.Structs {
		dumpStruct(w, s)
	}
	for _, fn := range mod.Functions {
		dumpFunc(w, fn)
	}
	if len(mod.TopLevel) > 0 {
		fmt.Fprintln(w, "TopLevel")
		for _, st := range mod.TopLevel {
			dumpStmt(w, st, 1)
		}
	}
}

func dumpStruct(w io.Writer, s *ast.StructDecl) {
	fmt.Fprintf(w, "StructDecl %s\n", s.Name)
	for _, f := range s.Fields {
		fmt.Fprintf(w, "  %s: %s\n", f.Name, f.Type)
	}
}

func dumpFunc(w io.Writer, fn *ast.FunctionDecl) {
	ret := "void"
	if fn.ReturnType != nil {
		ret = fn.ReturnType.String()
	}
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = fmt.Sprintf("%s: %s", p.Name, p.Type)
	}
	extern := ""
	if fn.Extern {
		extern = "extern "
	}
	fmt.Fprintf(w, "%sFunctionDecl %s(%s) -> %s\n", extern, fn.Name, strings.Join(params, ", "), ret)
	if fn.Body != nil {
		dumpStmt(w, fn.Body, 1)
	}
}

func indent(w io.Writer, depth int) {
	fmt.Fprint(w, strings.Repeat("  ", depth))
}

func dumpStmt(w io.Writer, s ast.Stmt, depth int) {
	switch n := s.(type) {
	case *ast.Block:
		indent(w, depth)
		fmt.Fprintln(w, "Block")
		for _, st := range n.Statements {
			dumpStmt(w, st, depth+1)
		}
	case *ast.VarDecl:
		indent(w, depth)
		fmt.Fprintf(w, "VarDecl %s\n", n.Name)
		if n.Init != nil {
			dumpExpr(w, n.Init, depth+1)
		}
	case *ast.ExprStmt:
		indent(w, depth)
		fmt.Fprintln(w, "ExprStmt")
		dumpExpr(w, n.Expr, depth+1)
	case *ast.Return:
		indent(w, depth)
		fmt.Fprintln(w, "Return")
		if n.Value != nil {
			dumpExpr(w, n.Value, depth+1)
		}
	case *ast.If:
		indent(w, depth)
		fmt.Fprintln(w, "If")
		dumpExpr(w, n.Cond, depth+1)
		dumpStmt(w, n.Then, depth+1)
		if n.Else != nil {
			dumpStmt(w, n.Else, depth+1)
		}
	case *ast.While:
		indent(w, depth)
		fmt.Fprintln(w, "While")
		dumpExpr(w, n.Cond, depth+1)
		dumpStmt(w, n.Body, depth+1)
	default:
		indent(w, depth)
		fmt.Fprintf(w, "%T\n", n)
	}
}

func dumpExpr(w io.Writer, e ast.Expr, depth int) {
	switch n := e.(type) {
	case *ast.Literal:
		indent(w, depth)
		fmt.Fprintf(w, "Literal %s\n", n.Text)
	case *ast.Variable:
		indent(w, depth)
		fmt.Fprintf(w, "Variable %s\n", n.Name)
	case *ast.Binary:
		indent(w, depth)
		fmt.Fprintf(w, "Binary %s\n", n.Op)
		dumpExpr(w, n.Left, depth+1)
		dumpExpr(w, n.Right, depth+1)
	case *ast.Call:
		indent(w, depth)
		fmt.Fprintf(w, "Call %s\n", n.Callee)
		for _, a := range n.Args {
			dumpExpr(w, a, depth+1)
		}
	case *ast.MemberAccess:
		indent(w, depth)
		fmt.Fprintf(w, "MemberAccess .%s\n", n.Member)
		dumpExpr(w, n.Object, depth+1)
	case *ast.Index:
		indent(w, depth)
		fmt.Fprintln(w, "Index")
		dumpExpr(w, n.Object, depth+1)
		dumpExpr(w, n.Idx, depth+1)
	case *ast.ArrayLiteral:
		indent(w, depth)
		fmt.Fprintln(w, "ArrayLiteral")
		for _, el := range n.Elements {
			dumpExpr(w, el, depth+1)
		}
	default:
		indent(w, depth)
		fmt.Fprintf(w, "%T\n", n)
	}
}
