package normalize

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"github.com/gyeh/unspsc/pkg/unspsc"
)

// FileHash computes the hex-encoded SHA-256 of the file at path.
func FileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for hash: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// TableDigest computes a stable hex SHA-256 over entries in order.
// Code and description are separated and terminated by NUL bytes, so any
// change in membership, order, or wording yields a different digest.
func TableDigest(entries []unspsc.Entry) string {
	h := sha256.New()
	for _, e := range entries {
		h.Write([]byte(e.Code))
		h.Write([]byte{0})
		h.Write([]byte(e.Description))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
