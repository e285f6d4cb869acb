package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"pynext/internal/cache"
	"pynext/internal/project"
)

func writeManifest(t *testing.T, dir string) *project.Manifest {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "main.next"), []byte("def f() -> int\n    return 1\nend\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "util.next"), []byte("def g() -> int\n    return 2\nend\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	manifest := `
[package]
name = "demo"

[build]
main = "main.next"
sources = ["util.next"]
`
	if err := os.WriteFile(filepath.Join(dir, project.ManifestFile), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	m, ok, err := project.Load(dir)
	if err != nil || !ok {
		t.Fatalf("Load() = %v, %v, %v", m, ok, err)
	}
	return m
}

func TestCompileProjectPreservesManifestOrder(t *testing.T) {
	dir := t.TempDir()
	m := writeManifest(t, dir)

	results, err := CompileProject(context.Background(), m, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if filepath.Base(results[0].Path) != "main.next" || filepath.Base(results[1].Path) != "util.next" {
		t.Fatalf("unexpected order: %s, %s", results[0].Path, results[1].Path)
	}
	for _, r := range results {
		if r.IR == nil {
			t.Fatalf("%s: expected a compiled module", r.Path)
		}
	}
}

func TestCompileProjectReusesCacheOnSecondRun(t *testing.T) {
	dir := t.TempDir()
	m := writeManifest(t, dir)
	store, err := cache.OpenAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := CompileProject(context.Background(), m, store, 0); err != nil {
		t.Fatal(err)
	}
	results, err := CompileProject(context.Background(), m, store, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range results {
		if !r.Cached {
			t.Fatalf("%s: expected a cache hit on the second compile", r.Path)
		}
	}
}
