// Package hashutil computes digests and random byte strings.
package hashutil

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"io"

	"lukechampine.com/blake3"
)

const (
	// DefaultLength is the output size used when no length is given.
	DefaultLength = 32

	// MaxLength caps BLAKE3 and random output lengths.
	MaxLength = 1024
)

// ErrInvalidLength is returned for lengths outside 1..MaxLength.
var ErrInvalidLength = errors.New("length must be between 1 and 1024 bytes")

// SHA256 returns the 32-byte SHA-256 digest of data.
func SHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// SHA512 returns the 64-byte SHA-512 digest of data.
func SHA512(data []byte) []byte {
	sum := sha512.Sum512(data)
	return sum[:]
}

// Blake3 returns length bytes of BLAKE3 output for data. Lengths beyond the
// standard 32 bytes are read from the extendable output, so shorter outputs
// are prefixes of longer ones.
func Blake3(data []byte, length int) ([]byte, error) {
	if err := checkLength(length); err != nil {
		return nil, err
	}

	h := blake3.New(DefaultLength, nil)
	h.Write(data)
	out := make([]byte, length)
	if _, err := io.ReadFull(h.XOF(), out); err != nil {
		return nil, fmt.Errorf("failed to read blake3 output: %w", err)
	}
	return out, nil
}

// Random reads length bytes from r.
func Random(r io.Reader, length int) ([]byte, error) {
	if err := checkLength(length); err != nil {
		return nil, err
	}

	out := make([]byte, length)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return out, nil
}

func checkLength(n int) error {
	if n < 1 || n > MaxLength {
		return fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}
	return nil
}
