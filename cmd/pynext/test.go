package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pynext/internal/codegen"
	"pynext/internal/diag"
	"pynext/internal/lexer"
	"pynext/internal/parser"
	"pynext/internal/sema"
	"pynext/internal/source"
	"pynext/internal/vm"
)

// sampleProgram is the built-in smoke-test program: recursive fib(10),
// printed through the host print_int ABI.
const sampleProgram = `extern def print_int(val: int)

def fib(n: int) -> int
    if n < 2
        return n
    end
    return fib(n-1) + fib(n-2)
end

def main() print_int(fib(10)) end
`

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Compile and run the built-in sample program",
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	f := source.New("<builtin>", []byte(sampleProgram))
	bag := &diag.Bag{}
	lx := lexer.New(f, bag)
	p := parser.New(lx, bag)

	mod, err := p.Parse()
	if err != nil {
		printDiagnostics(cmd, f, bag)
		return fmt.Errorf("built-in sample failed to parse: %w", err)
	}

	sema.NewChecker(bag).Check(mod)
	irMod := codegen.New(bag).Generate(mod)
	printDiagnostics(cmd, f, bag)
	if bag.HasErrors() {
		return fmt.Errorf("built-in sample failed to compile")
	}

	var out bytes.Buffer
	code, err := vm.New(irMod, &out).Run()
	if err != nil {
		return err
	}
	os.Stdout.Write(out.Bytes())
	if code != 0 {
		return fmt.Errorf("built-in sample exited with code %d", code)
	}
	return nil
}
