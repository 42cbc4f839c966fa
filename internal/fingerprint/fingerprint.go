// Package fingerprint computes content digests of mod artifacts so the same
// jar can be recognized across renames.
package fingerprint

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// Size is the digest length in bytes.
const Size = 32

// Digest is a BLAKE3-256 content digest.
type Digest [Size]byte

// String returns the lowercase hex encoding of the digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Reader hashes everything read from r.
func Reader(r io.Reader) (Digest, error) {
	h := blake3.New()
	if _, err := io.Copy(h, r); err != nil {
		return Digest{}, fmt.Errorf("hash content: %w", err)
	}

	var d Digest
	copy(d[:], h.Sum(nil))
	return d, nil
}

// File hashes the file at path.
func File(path string) (Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Digest{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Reader(f)
}
