// Package ledger provides content digests for import deduplication.
package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// ComputeFileDigest streams the file at path through SHA-256 and returns the
// hex-encoded digest. The digest depends only on file contents, so a renamed
// but byte-identical file produces the same value.
func ComputeFileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for digest: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("digest %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
