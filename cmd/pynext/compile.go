package main

import (
	"os"

	"github.com/spf13/cobra"

	"pynext/internal/ast"
	"pynext/internal/codegen"
	"pynext/internal/diag"
	"pynext/internal/diagfmt"
	"pynext/internal/ir"
	"pynext/internal/lexer"
	"pynext/internal/parser"
	"pynext/internal/sema"
	"pynext/internal/source"
)

// compileResult is one source file's front-end-through-codegen output.
type compileResult struct {
	File   *source.File
	Module *ast.Module
	IR     *ir.Module
	Bag    *diag.Bag
}

func compileFile(path string) (compileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return compileResult{}, err
	}

	f := source.New(path, data)
	bag := &diag.Bag{}
	lx := lexer.New(f, bag)
	p := parser.New(lx, bag)

	mod, err := p.Parse()
	if err != nil {
		return compileResult{File: f, Bag: bag}, err
	}

	sema.NewChecker(bag).Check(mod)
	irMod := codegen.New(bag).Generate(mod)

	return compileResult{File: f, Module: mod, IR: irMod, Bag: bag}, nil
}

func colorModeFromFlags(cmd *cobra.Command) diagfmt.ColorMode {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "on":
		return diagfmt.ColorOn
	case "off":
		return diagfmt.ColorOff
	default:
		return diagfmt.ColorAuto
	}
}

// printDiagnostics renders bag's items to stderr, honoring --color and
// --max-diagnostics.
func printDiagnostics(cmd *cobra.Command, f *source.File, bag *diag.Bag) {
	if bag == nil {
		return
	}
	max, _ := cmd.Flags().GetInt("max-diagnostics")
	items := bag.Items()
	if max > 0 && len(items) > max {
		items = items[:max]
	}

	printer := diagfmt.New(os.Stderr, colorModeFromFlags(cmd), diagfmt.IsTerminal(os.Stderr))
	for _, d := range items {
		printer.Print(f, d)
	}
}
