package sema

import (
	"testing"

	"pynext/internal/ast"
	"pynext/internal/diag"
	"pynext/internal/lexer"
	"pynext/internal/parser"
	"pynext/internal/source"
	"pynext/internal/types"
)

func checkSrc(t *testing.T, src string) (*ast.Module, *diag.Bag) {
	t.Helper()
	f := source.New("t.next", []byte(src))
	lx := lexer.New(f, nil)
	p := parser.New(lx, nil)
	mod, err := p.Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var bag diag.Bag
	NewChecker(&bag).Check(mod)
	return mod, &bag
}

func TestLiteralTypes(t *testing.T) {
	mod, bag := checkSrc(t, "1\n1.5\ntrue\n\"s\"")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	wantKinds := []types.Kind{types.Int, types.Float, types.Bool, types.String}
	for i, k := range wantKinds {
		got := mod.TopLevel[i].(*ast.ExprStmt).Expr.Type().Kind
		if got != k {
			t.Errorf("stmt %d: got %v, want %v", i, got, k)
		}
	}
}

func TestUndefinedVariableReportsAndDegradesToVoid(t *testing.T) {
	mod, bag := checkSrc(t, "x")
	if !bag.HasErrors() {
		t.Fatal("expected an undefined-name diagnostic")
	}
	got := mod.TopLevel[0].(*ast.ExprStmt).Expr.Type()
	if got.Kind != types.Void {
		t.Fatalf("got %v, want void", got.Kind)
	}
}

func TestFunctionRecursion(t *testing.T) {
	_, bag := checkSrc(t, `
def fib(n: int) -> int
    if n < 2
        return n
    end
    return fib(n - 1) + fib(n - 2)
end
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
}

func TestParamScopeDoesNotLeakAcrossFunctions(t *testing.T) {
	_, bag := checkSrc(t, `
def f(a: int) -> int
    return a
end
def g() -> int
    return a
end
`)
	if !bag.HasErrors() {
		t.Fatal("expected g's body to fail to resolve f's parameter a")
	}
}

func TestVarDeclLeaksIntoFunctionScope(t *testing.T) {
	_, bag := checkSrc(t, `
def f() -> int
    if true
        var x: int = 1
    end
    return x
end
`)
	if bag.HasErrors() {
		t.Fatalf("expected the if-nested var to leak into function scope: %+v", bag.Items())
	}
}

func TestStructFieldAccess(t *testing.T) {
	mod, bag := checkSrc(t, `
struct Point
    x: int
    y: int
end
def f(p: Point) -> int
    return p.x
end
`)
	_ = mod
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
}

func TestUnknownMemberReportsAndDegradesToVoid(t *testing.T) {
	_, bag := checkSrc(t, `
struct Point
    x: int
end
def f(p: Point) -> int
    return p.z
end
`)
	if !bag.HasErrors() {
		t.Fatal("expected an unknown-member diagnostic")
	}
}

func TestArrayIndexing(t *testing.T) {
	mod, bag := checkSrc(t, "var xs: int[] = [1, 2, 3]\nxs[0]")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	got := mod.TopLevel[1].(*ast.ExprStmt).Expr.Type()
	if got.Kind != types.Int {
		t.Fatalf("got %v, want int", got.Kind)
	}
}

func TestEmptyArrayLiteralDefaultsToArrayOfInt(t *testing.T) {
	mod, _ := checkSrc(t, "[]")
	got := mod.TopLevel[0].(*ast.ExprStmt).Expr.Type()
	if got.Kind != types.Array || got.Elem.Kind != types.Int {
		t.Fatalf("got %v, want array of int", got)
	}
}

func TestAssignToNonLValueReportsButStillTypes(t *testing.T) {
	mod, bag := checkSrc(t, "1 = 2")
	if !bag.HasErrors() {
		t.Fatal("expected an invalid-lvalue diagnostic")
	}
	got := mod.TopLevel[0].(*ast.ExprStmt).Expr.Type()
	if got == nil || got.Kind != types.Int {
		t.Fatalf("got %v, want int (the right side's type)", got)
	}
}

func TestBinaryPermissiveFallback(t *testing.T) {
	// int + float: not both int, so the result falls back to the left
	// operand's type (int) rather than being rejected or promoted.
	mod, bag := checkSrc(t, "1 + 1.5")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	got := mod.TopLevel[0].(*ast.ExprStmt).Expr.Type()
	if got.Kind != types.Int {
		t.Fatalf("got %v, want int (permissive left-side fallback)", got.Kind)
	}
}

func TestUnknownTypeNameResolvesToVoid(t *testing.T) {
	_, bag := checkSrc(t, "var x: Nonexistent")
	_ = bag
	c := NewChecker(nil)
	got := c.resolveType("Nonexistent", 0)
	if got.Kind != types.Void {
		t.Fatalf("got %v, want void", got.Kind)
	}
}
