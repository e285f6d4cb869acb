package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"pynext/internal/ir"
	"pynext/internal/project"
)

// Store is a directory of msgpack-encoded compiled modules, one file per
// content digest.
type Store struct {
	dir string
}

// Open resolves the cache directory (XDG_CACHE_HOME, falling back to
// ~/.cache) and returns a Store backed by its "pynext/modules" subdirectory,
// creating it if necessary.
func Open() (*Store, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, "pynext", "modules")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// OpenAt returns a Store rooted at an explicit directory, for tests.
func OpenAt(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) pathFor(key project.Digest) string {
	return filepath.Join(s.dir, string(key)+".mp")
}

// Put encodes mod and writes it under key, via a temp file plus rename so
// a crash mid-write never leaves a corrupt cache entry visible.
func (s *Store) Put(key project.Digest, mod *ir.Module) error {
	tmp, err := os.CreateTemp(s.dir, "tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp cache file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := msgpack.NewEncoder(tmp).Encode(Encode(mod)); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp cache file: %w", err)
	}
	if err := os.Rename(tmpPath, s.pathFor(key)); err != nil {
		return fmt.Errorf("installing cache entry: %w", err)
	}
	return nil
}

// Get looks up key, returning the decoded module and true on a hit. A
// missing entry is reported as (nil, false, nil), not an error.
func (s *Store) Get(key project.Digest) (*ir.Module, bool, error) {
	f, err := os.Open(s.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("opening cache entry: %w", err)
	}
	defer f.Close()

	var cm CachedModule
	if err := msgpack.NewDecoder(f).Decode(&cm); err != nil {
		return nil, false, fmt.Errorf("decoding cache entry: %w", err)
	}
	if cm.Schema != schemaVersion {
		return nil, false, nil
	}
	return Decode(cm), true, nil
}
