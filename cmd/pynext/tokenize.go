package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pynext/internal/diag"
	"pynext/internal/lexer"
	"pynext/internal/source"
	"pynext/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Scan a source file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	f := source.New(path, data)
	bag := &diag.Bag{}
	lx := lexer.New(f, bag)

	for {
		tok := lx.Next()
		pos := f.Position(tok.Span.Start)
		fmt.Printf("%4d:%-3d %-12s %q\n", pos.Line, pos.Column, tok.Kind, tok.Text)
		if tok.Kind == token.EOF {
			break
		}
	}

	printDiagnostics(cmd, f, bag)
	if bag.HasErrors() {
		return fmt.Errorf("tokenization failed with errors")
	}
	return nil
}
