// Package project locates and parses pynext.toml, the project manifest
// that names a multi-file project's member source files and its entry
// file.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestFile is the name of the project manifest, the pynext analogue
// of a build file, searched for by walking up from the current
// directory.
const ManifestFile = "pynext.toml"

// Manifest is a project's decoded pynext.toml.
type Manifest struct {
	Path string // absolute path to pynext.toml
	Root string // directory containing it

	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
}

// PackageConfig is the [package] table.
type PackageConfig struct {
	Name string `toml:"name"`
}

// BuildConfig is the [build] table: the entry file and any additional
// source files compiled alongside it.
type BuildConfig struct {
	Main    string   `toml:"main"`
	Sources []string `toml:"sources"`
}

// FindManifest walks up from startDir looking for pynext.toml, returning
// its path and whether one was found.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolving start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load walks up from startDir, parses pynext.toml if found, and returns
// the decoded Manifest. ok is false (with a nil error) when no manifest
// exists anywhere above startDir.
func Load(startDir string) (m *Manifest, ok bool, err error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg Manifest
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	cfg.Root = filepath.Dir(path)
	return &cfg, true, nil
}

// SourceFiles returns every file the manifest names, main first: the
// entry file followed by each additional source, with relative paths
// resolved against the manifest's directory.
func (m *Manifest) SourceFiles() []string {
	files := make([]string, 0, 1+len(m.Build.Sources))
	if m.Build.Main != "" {
		files = append(files, filepath.Join(m.Root, m.Build.Main))
	}
	for _, s := range m.Build.Sources {
		files = append(files, filepath.Join(m.Root, s))
	}
	return files
}
