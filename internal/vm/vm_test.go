package vm

import (
	"bytes"
	"strings"
	"testing"

	"pynext/internal/codegen"
	"pynext/internal/ir"
	"pynext/internal/lexer"
	"pynext/internal/parser"
	"pynext/internal/sema"
	"pynext/internal/source"
)

func run(t *testing.T, src string) string {
	t.Helper()
	f := source.New("t.next", []byte(src))
	lx := lexer.New(f, nil)
	p := parser.New(lx, nil)
	mod, err := p.Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sema.NewChecker(nil).Check(mod)
	irMod := codegen.New(nil).Generate(mod)

	var buf bytes.Buffer
	if _, err := New(irMod, &buf).Run(); err != nil {
		t.Fatalf("run error: %v", err)
	}
	return buf.String()
}

func compileOnly(t *testing.T, src string) *ir.Module {
	t.Helper()
	f := source.New("t.next", []byte(src))
	lx := lexer.New(f, nil)
	p := parser.New(lx, nil)
	mod, err := p.Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sema.NewChecker(nil).Check(mod)
	return codegen.New(nil).Generate(mod)
}

func TestImplicitMainTopLevelExpression(t *testing.T) {
	got := run(t, `
extern def print_int(val: int)
print_int(2 + 3 * 4)
`)
	if got != "Output: 14\n" {
		t.Fatalf("got %q", got)
	}
}

func TestRecursiveFibonacci(t *testing.T) {
	got := run(t, `
extern def print_int(val: int)
def fib(n: int) -> int
    if n < 2
        return n
    end
    return fib(n - 1) + fib(n - 2)
end
def main() print_int(fib(10)) end
`)
	if got != "Output: 55\n" {
		t.Fatalf("got %q", got)
	}
}

func TestStructFieldAccess(t *testing.T) {
	got := run(t, `
extern def print_int(val: int)
struct Point
    x: int
    y: int
end
def main()
    var p: Point
    p.x = 5
    p.y = 7
    print_int(p.x + p.y)
end
`)
	if got != "Output: 12\n" {
		t.Fatalf("got %q", got)
	}
}

func TestArrayLiteralIndexing(t *testing.T) {
	got := run(t, `
extern def print_int(val: int)
def main()
    var a: int[] = [10, 20, 30]
    print_int(a[0] + a[2])
end
`)
	if got != "Output: 40\n" {
		t.Fatalf("got %q", got)
	}
}

func TestWhileLoopSum(t *testing.T) {
	got := run(t, `
extern def print_int(val: int)
def main()
    var s: int = 0
    var i: int = 0
    while i < 5
        s = s + i
        i = i + 1
    end
    print_int(s)
end
`)
	if got != "Output: 10\n" {
		t.Fatalf("got %q", got)
	}
}

func TestPrintStringOutputFormat(t *testing.T) {
	got := run(t, `
extern def print_string(s: string)
def main()
    print_string("hello")
end
`)
	if got != "Output: hello\n" {
		t.Fatalf("got %q", got)
	}
}

func TestUserDeclaredMainLeavesTopLevelInUnreachableInit(t *testing.T) {
	mod := compileOnly(t, `
def main() -> int
    return 0
end
1 + 2
`)
	if mod.FindFunc("main") == nil || mod.FindFunc("__init") == nil {
		t.Fatal("expected both main and __init to exist")
	}

	var buf bytes.Buffer
	n, err := New(mod, &buf).Run()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("got %d, want 0 (the user's own main ran, not __init)", n)
	}
	if strings.TrimSpace(buf.String()) != "" {
		t.Fatalf("got output %q, want none", buf.String())
	}
}
