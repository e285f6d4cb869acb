package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pynext/internal/backend/llvmtext"
	"pynext/internal/cache"
	"pynext/internal/driver"
	"pynext/internal/ir"
	"pynext/internal/project"
	"pynext/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:   "build [path]",
	Short: "Emit textual LLVM IR for a file or a pynext.toml project",
	Args:  cobra.MaximumNArgs(1),
	RunE:  buildExecution,
}

func init() {
	buildCmd.Flags().String("out", "", "output directory for .ll files (default: alongside each source)")
	buildCmd.Flags().Bool("ui", false, "show a live progress view while building a project")
	buildCmd.Flags().Bool("no-cache", false, "ignore and do not populate the on-disk compile cache")
}

func buildExecution(cmd *cobra.Command, args []string) error {
	start := "."
	if len(args) == 1 {
		start = args[0]
	}

	if info, err := os.Stat(start); err == nil && !info.IsDir() && strings.HasSuffix(start, ".next") {
		return buildSingleFile(cmd, start)
	}

	m, ok, err := project.Load(start)
	if err != nil {
		return err
	}
	if !ok {
		return buildSingleFile(cmd, start)
	}
	return buildProject(cmd, m)
}

func buildSingleFile(cmd *cobra.Command, path string) error {
	res, err := compileFile(path)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	printDiagnostics(cmd, res.File, res.Bag)
	if res.Bag.HasErrors() {
		return fmt.Errorf("compilation failed with errors")
	}
	return writeLL(cmd, path, res.IR)
}

// writeLL renders mod to textual LLVM IR and writes it next to srcPath
// (same base name, .ll extension), or under --out if the flag is set.
func writeLL(cmd *cobra.Command, srcPath string, mod *ir.Module) error {
	text := llvmtext.Emit(mod)

	outDir, _ := cmd.Flags().GetString("out")
	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath)) + ".ll"

	dest := base
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
		dest = filepath.Join(outDir, base)
	} else {
		dest = filepath.Join(filepath.Dir(srcPath), base)
	}

	return os.WriteFile(dest, []byte(text), 0o644)
}

func buildProject(cmd *cobra.Command, m *project.Manifest) error {
	noCache, _ := cmd.Flags().GetBool("no-cache")
	var store *cache.Store
	if !noCache {
		s, err := cache.Open()
		if err == nil {
			store = s
		}
	}

	files := m.SourceFiles()
	showUI, _ := cmd.Flags().GetBool("ui")

	var events chan ui.Event
	var done chan error
	if showUI {
		events = make(chan ui.Event, len(files))
		done = make(chan error, 1)
		go func() {
			p := tea.NewProgram(ui.NewProgressModel("pynext build", files, events))
			_, err := p.Run()
			done <- err
		}()
	}

	for _, f := range files {
		if events != nil {
			events <- ui.Event{File: f, Status: ui.StatusWorking}
		}
	}

	results, err := driver.CompileProject(context.Background(), m, store, 0)
	if events != nil {
		for i, f := range files {
			status := ui.StatusDone
			if err != nil || (i < len(results) && results[i].Bag != nil && results[i].Bag.HasErrors()) {
				status = ui.StatusError
			}
			events <- ui.Event{File: f, Status: status}
		}
		close(events)
		<-done
	}
	if err != nil {
		return err
	}

	hadErrors := false
	for _, r := range results {
		if r.Bag != nil {
			printDiagnostics(cmd, r.File, r.Bag)
			if r.Bag.HasErrors() {
				hadErrors = true
			}
		}
		if r.IR != nil {
			if err := writeLL(cmd, r.Path, r.IR); err != nil {
				return err
			}
		}
	}
	if hadErrors {
		return fmt.Errorf("compilation failed with errors")
	}
	return nil
}
