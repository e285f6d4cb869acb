package project

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
)

// Digest is a hex-encoded sha256 content hash, used by internal/cache to
// key a file's memoized compile result.
type Digest string

// HashFile reads path and returns its content digest.
func HashFile(path string) (Digest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return HashBytes(data), nil
}

// HashBytes returns data's content digest.
func HashBytes(data []byte) Digest {
	sum := sha256.Sum256(data)
	return Digest(hex.EncodeToString(sum[:]))
}
