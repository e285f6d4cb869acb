package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pynext/internal/diag"
	"pynext/internal/lexer"
	"pynext/internal/parser"
	"pynext/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	f := source.New(path, data)
	bag := &diag.Bag{}
	lx := lexer.New(f, bag)
	p := parser.New(lx, bag)

	mod, err := p.Parse()
	printDiagnostics(cmd, f, bag)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	dumpModule(os.Stdout, mod)
	return nil
}
