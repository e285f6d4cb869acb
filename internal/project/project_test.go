package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, ManifestFile)
	content := `
[package]
name = "demo"

[build]
main = "main.next"
sources = ["util.next"]
`
	if err := os.WriteFile(manifestPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, ok, err := Load(dir)
	if err != nil || !ok {
		t.Fatalf("Load() = %v, %v, %v", m, ok, err)
	}
	if m.Package.Name != "demo" || m.Build.Main != "main.next" {
		t.Fatalf("unexpected manifest: %+v", m)
	}
	files := m.SourceFiles()
	if len(files) != 2 || files[0] != filepath.Join(dir, "main.next") {
		t.Fatalf("unexpected source files: %v", files)
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ManifestFile), []byte("[package]\nname=\"x\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path, ok, err := FindManifest(nested)
	if err != nil || !ok {
		t.Fatalf("FindManifest() = %v, %v, %v", path, ok, err)
	}
}

func TestHashBytesIsStable(t *testing.T) {
	a := HashBytes([]byte("hello"))
	b := HashBytes([]byte("hello"))
	if a != b {
		t.Fatal("expected identical input to hash identically")
	}
	if a == HashBytes([]byte("world")) {
		t.Fatal("expected different input to hash differently")
	}
}
