// Package codec encodes bytes as Crockford Base32 or hex.
package codec

import (
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"strings"
)

// Alphabet is the Crockford Base32 alphabet shared with ULIDs.
const Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

var crockford = base32.NewEncoding(Alphabet).WithPadding(base32.NoPadding)

// Crockford's decoding rules accept visually ambiguous letters.
var normalizer = strings.NewReplacer(
	"-", "",
	" ", "",
	"I", "1",
	"L", "1",
	"O", "0",
)

// EncodeBase32 encodes data with the Crockford alphabet and no padding.
func EncodeBase32(data []byte) string {
	return crockford.EncodeToString(data)
}

// DecodeBase32 decodes Crockford Base32. Input is case-insensitive, I and L
// read as 1, O reads as 0, and hyphens are ignored.
func DecodeBase32(s string) ([]byte, error) {
	norm := normalizer.Replace(strings.ToUpper(strings.TrimSpace(s)))
	out, err := crockford.DecodeString(norm)
	if err != nil {
		return nil, fmt.Errorf("invalid base32 input: %w", err)
	}
	return out, nil
}

// EncodeHex encodes data as hex, lowercase unless upper is set.
func EncodeHex(data []byte, upper bool) string {
	s := hex.EncodeToString(data)
	if upper {
		return strings.ToUpper(s)
	}
	return s
}

// DecodeHex decodes hex in either case. An optional 0x prefix is accepted.
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	out, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return out, nil
}
