package codegen

import (
	"testing"

	"pynext/internal/ast"
	"pynext/internal/ir"
	"pynext/internal/lexer"
	"pynext/internal/parser"
	"pynext/internal/sema"
	"pynext/internal/source"
)

func compile(t *testing.T, src string) *ir.Module {
	t.Helper()
	f := source.New("t.next", []byte(src))
	lx := lexer.New(f, nil)
	p := parser.New(lx, nil)
	mod, err := p.Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sema.NewChecker(nil).Check(mod)
	return New(nil).Generate(mod)
}

func TestEntryPointDefaultsToMain(t *testing.T) {
	m := compile(t, "1 + 2")
	if m.FindFunc("main") == nil {
		t.Fatal("expected an implicit main")
	}
}

func TestEntryPointRenamedWhenUserDeclaresMain(t *testing.T) {
	m := compile(t, `
def main() -> int
    return 0
end
1 + 2
`)
	if m.FindFunc("__init") == nil {
		t.Fatal("expected __init when the user declared main")
	}
	if m.FindFunc("main") == nil {
		t.Fatal("expected the user's main to still be present")
	}
}

func TestEveryBlockHasOneTerminator(t *testing.T) {
	m := compile(t, `
def f(n: int) -> int
    if n < 2
        return n
    end
    return n
end
`)
	fn := m.FindFunc("f")
	for _, b := range fn.Blocks {
		if !b.Terminated() {
			t.Fatalf("block %q has no terminator", b.Name)
		}
	}
}

func TestFallOffEndFabricatesIntReturn(t *testing.T) {
	m := compile(t, `
def f() -> int
    var x: int = 1
end
`)
	fn := m.FindFunc("f")
	last := fn.Blocks[len(fn.Blocks)-1]
	if last.Term.Kind != ir.TermRet || last.Term.Value == nil || last.Term.Value.ConstInt != 0 {
		t.Fatalf("got %+v, want return 0", last.Term)
	}
}

func TestFallOffEndFabricatesVoidReturn(t *testing.T) {
	m := compile(t, `
def f()
    var x: int = 1
end
`)
	fn := m.FindFunc("f")
	last := fn.Blocks[len(fn.Blocks)-1]
	if last.Term.Kind != ir.TermRet || last.Term.Value != nil {
		t.Fatalf("got %+v, want return void", last.Term)
	}
}

func TestStructFieldIndexMatchesDeclarationOrder(t *testing.T) {
	m := compile(t, `
struct Point
    x: int
    y: int
end
`)
	st := m.FindStruct("Point")
	if st.FieldIndex("y") != 1 {
		t.Fatalf("got %d, want 1", st.FieldIndex("y"))
	}
}

func TestArrayLiteralAllocatesViaMalloc(t *testing.T) {
	m := compile(t, "var xs: int[] = [1, 2, 3]")
	if m.FindFunc("malloc") == nil {
		t.Fatal("expected a lazily declared malloc")
	}
}

func TestUninitializedStructLocalZeroesEveryField(t *testing.T) {
	m := compile(t, `
struct Point
    x: int
    y: int
end
def f()
    var p: Point
end
`)
	fn := m.FindFunc("f")
	var gepCount, storeCount int
	for _, b := range fn.Blocks {
		for _, instr := range b.Instrs {
			if instr.Op == ir.OpGEPField {
				gepCount++
			}
			if instr.Op == ir.OpStore {
				storeCount++
			}
		}
	}
	if gepCount != 2 || storeCount != 2 {
		t.Fatalf("got %d GEPs and %d stores, want one pair per field", gepCount, storeCount)
	}
}

func TestLocalsAllocatedInEntryBlock(t *testing.T) {
	m := compile(t, `
def f() -> int
    if true
        var x: int = 1
        return x
    end
    return 0
end
`)
	fn := m.FindFunc("f")
	entry := fn.EntryBlock()
	found := false
	for _, instr := range entry.Instrs {
		if instr.Op == ir.OpAlloca && instr.Dst.Name == "x" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the if-nested local's alloca to live in the entry block")
	}
}

func TestUnknownTypeNameFallsBackToInt64InCodeGen(t *testing.T) {
	g := New(nil)
	tn := &ast.TypeName{Base: "Nonexistent", Dims: 0}
	got := g.mapTypeName(tn)
	if got.Kind != ir.Int64Ty {
		t.Fatalf("got %v, want Int64 (CodeGen's own unknown-name fallback)", got.Kind)
	}
}
