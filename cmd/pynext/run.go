package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pynext/internal/vm"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Compile and execute a pynext source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExecution,
}

func runExecution(cmd *cobra.Command, args []string) error {
	res, err := compileFile(args[0])
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	printDiagnostics(cmd, res.File, res.Bag)
	if res.Bag.HasErrors() {
		return fmt.Errorf("compilation failed with errors")
	}

	code, err := vm.New(res.IR, os.Stdout).Run()
	if err != nil {
		return err
	}
	if code != 0 {
		os.Exit(int(code))
	}
	return nil
}
