package parser

import (
	"testing"

	"pynext/internal/ast"
	"pynext/internal/lexer"
	"pynext/internal/source"
)

func parse(t *testing.T, src string) *ast.Module {
	t.Helper()
	f := source.New("t.next", []byte(src))
	lx := lexer.New(f, nil)
	p := New(lx, nil)
	mod, err := p.Parse()
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", src, err)
	}
	return mod
}

func TestParseSimpleFunction(t *testing.T) {
	mod := parse(t, `
def add(a: int, b: int) -> int
    return a + b
end
`)
	if len(mod.Functions) != 1 {
		t.Fatalf("got %d functions, want 1", len(mod.Functions))
	}
	fn := mod.Functions[0]
	if fn.Name != "add" || len(fn.Params) != 2 || fn.Extern {
		t.Fatalf("unexpected function: %+v", fn)
	}
	if fn.ReturnType == nil || fn.ReturnType.String() != "int" {
		t.Fatalf("unexpected return type: %v", fn.ReturnType)
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(fn.Body.Statements))
	}
	ret, ok := fn.Body.Statements[0].(*ast.Return)
	if !ok {
		t.Fatalf("got %T, want *ast.Return", fn.Body.Statements[0])
	}
	bin, ok := ret.Value.(*ast.Binary)
	if !ok || bin.Op != ast.OpAdd {
		t.Fatalf("got %+v, want a+b", ret.Value)
	}
}

func TestParseExtern(t *testing.T) {
	mod := parse(t, `extern def print_int(val: int)`)
	if len(mod.Functions) != 1 || !mod.Functions[0].Extern || mod.Functions[0].Body != nil {
		t.Fatalf("unexpected extern decl: %+v", mod.Functions[0])
	}
}

func TestParseStruct(t *testing.T) {
	mod := parse(t, `
struct Point
    x: int
    y: int
end
`)
	if len(mod.Structs) != 1 {
		t.Fatalf("got %d structs, want 1", len(mod.Structs))
	}
	st := mod.Structs[0]
	if st.Name != "Point" || len(st.Fields) != 2 || st.Fields[1].Name != "y" {
		t.Fatalf("unexpected struct: %+v", st)
	}
}

func TestParseArrayTypeName(t *testing.T) {
	mod := parse(t, `
def f(xs: int[][]) -> int
    return 0
end
`)
	tn := mod.Functions[0].Params[0].Type
	if tn.String() != "int[][]" {
		t.Fatalf("got %q, want int[][]", tn.String())
	}
}

func TestParsePrecedence(t *testing.T) {
	mod := parse(t, "1 + 2 * 3")
	stmt := mod.TopLevel[0].(*ast.ExprStmt)
	bin := stmt.Expr.(*ast.Binary)
	if bin.Op != ast.OpAdd {
		t.Fatalf("top-level op = %v, want +", bin.Op)
	}
	rhs, ok := bin.Right.(*ast.Binary)
	if !ok || rhs.Op != ast.OpMul {
		t.Fatalf("rhs = %+v, want 2*3", bin.Right)
	}
}

func TestParseAssignIsRightAssociative(t *testing.T) {
	mod := parse(t, "var a: int\nvar b: int\na = b = 1")
	stmt := mod.TopLevel[2].(*ast.ExprStmt)
	bin := stmt.Expr.(*ast.Binary)
	if bin.Op != ast.OpAssign {
		t.Fatalf("got %v, want assign", bin.Op)
	}
	rhs, ok := bin.Right.(*ast.Binary)
	if !ok || rhs.Op != ast.OpAssign {
		t.Fatalf("rhs = %+v, want nested assign", bin.Right)
	}
}

func TestParsePostfixChain(t *testing.T) {
	mod := parse(t, "a.b[0].c")
	stmt := mod.TopLevel[0].(*ast.ExprStmt)
	ma, ok := stmt.Expr.(*ast.MemberAccess)
	if !ok || ma.Member != "c" {
		t.Fatalf("got %+v, want trailing .c", stmt.Expr)
	}
	idx, ok := ma.Object.(*ast.Index)
	if !ok {
		t.Fatalf("got %+v, want index in the middle", ma.Object)
	}
	inner, ok := idx.Object.(*ast.MemberAccess)
	if !ok || inner.Member != "b" {
		t.Fatalf("got %+v, want a.b", idx.Object)
	}
}

func TestParseIfElse(t *testing.T) {
	mod := parse(t, `
def f() -> int
    if true
        return 1
    else
        return 2
    end
end
`)
	ifStmt := mod.Functions[0].Body.Statements[0].(*ast.If)
	if ifStmt.Else == nil {
		t.Fatal("expected an else block")
	}
}

func TestParseWhile(t *testing.T) {
	mod := parse(t, `
def f() -> int
    var i: int = 0
    while i < 10
        i = i + 1
    end
    return i
end
`)
	body := mod.Functions[0].Body.Statements
	if _, ok := body[1].(*ast.While); !ok {
		t.Fatalf("got %T, want *ast.While", body[1])
	}
}

func TestParseVarMissingTypeAndInitIsFatal(t *testing.T) {
	f := source.New("t.next", []byte("var x"))
	lx := lexer.New(f, nil)
	p := New(lx, nil)
	if _, err := p.Parse(); err == nil {
		t.Fatal("expected a parse error for `var x` with no type or init")
	}
}

func TestParseArrayLiteral(t *testing.T) {
	mod := parse(t, "[1, 2, 3]")
	stmt := mod.TopLevel[0].(*ast.ExprStmt)
	arr, ok := stmt.Expr.(*ast.ArrayLiteral)
	if !ok || len(arr.Elements) != 3 {
		t.Fatalf("got %+v, want 3-element array literal", stmt.Expr)
	}
}

func TestParseReturnWithoutValue(t *testing.T) {
	mod := parse(t, `
def f()
    return
end
`)
	ret := mod.Functions[0].Body.Statements[0].(*ast.Return)
	if ret.Value != nil {
		t.Fatalf("got %+v, want a bare return", ret.Value)
	}
}
