// Package driver orchestrates compiling every source file a project
// manifest names, in parallel, and merging their per-file results in
// manifest order regardless of completion order.
package driver

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"pynext/internal/ast"
	"pynext/internal/cache"
	"pynext/internal/codegen"
	"pynext/internal/diag"
	"pynext/internal/ir"
	"pynext/internal/lexer"
	"pynext/internal/parser"
	"pynext/internal/project"
	"pynext/internal/sema"
	"pynext/internal/source"
)

// FileResult is one source file's compiled output.
type FileResult struct {
	Path   string
	File   *source.File
	Module *ast.Module
	IR     *ir.Module
	Bag    *diag.Bag
	Cached bool
}

// CompileProject compiles every file m.SourceFiles() names concurrently,
// consulting store (if non-nil) before recompiling a file whose content
// hash already has a cached ir.Module. jobs <= 0 defaults to GOMAXPROCS.
func CompileProject(ctx context.Context, m *project.Manifest, store *cache.Store, jobs int) ([]FileResult, error) {
	files := m.SourceFiles()
	if len(files) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			r, err := compileFile(path, store)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func compileFile(path string, store *cache.Store) (FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileResult{}, err
	}
	f := source.New(path, data)
	digest := project.HashBytes(data)

	if store != nil {
		if mod, ok, err := store.Get(digest); err == nil && ok {
			return FileResult{Path: path, File: f, IR: mod, Cached: true}, nil
		}
	}

	bag := &diag.Bag{}
	lx := lexer.New(f, bag)
	p := parser.New(lx, bag)
	mod, err := p.Parse()
	if err != nil {
		return FileResult{Path: path, File: f, Bag: bag}, nil
	}

	sema.NewChecker(bag).Check(mod)
	irMod := codegen.New(bag).Generate(mod)

	if store != nil {
		_ = store.Put(digest, irMod)
	}

	return FileResult{Path: path, File: f, Module: mod, IR: irMod, Bag: bag}, nil
}
