package altid

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// UUIDGenerator generates random (v4) or time-ordered (v7) UUIDs.
type UUIDGenerator struct {
	version int
}

// NewUUIDGenerator creates a UUIDGenerator for version 4 or 7.
func NewUUIDGenerator(version int) *UUIDGenerator {
	return &UUIDGenerator{version: version}
}

func (g *UUIDGenerator) Generate() (string, error) {
	var (
		id  uuid.UUID
		err error
	)
	if g.version == 7 {
		id, err = uuid.NewV7()
	} else {
		id, err = uuid.NewRandom()
	}
	if err != nil {
		return "", fmt.Errorf("failed to generate UUID: %w", err)
	}
	return id.String(), nil
}

func (g *UUIDGenerator) GenerateBatch(count int) ([]string, error) {
	return generateBatch(g, count)
}

func (g *UUIDGenerator) Validate(id string) (bool, string) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false, fmt.Sprintf("invalid UUID format: %v", err)
	}
	if int(parsed.Version()) != g.version {
		return false, fmt.Sprintf("expected UUID v%d, got v%d", g.version, parsed.Version())
	}
	return true, ""
}

func (g *UUIDGenerator) Parse(id string) (*ParseResult, error) {
	valid, reason := g.Validate(id)
	if !valid {
		return nil, fmt.Errorf("invalid UUID: %s", reason)
	}
	parsed := uuid.MustParse(id)

	kind := "uuid"
	var ts int64
	if g.version == 7 {
		kind = "uuid7"
		ts = V7Millis(parsed)
	}
	return &ParseResult{
		Kind:        kind,
		TimestampMs: ts,
		UUIDVersion: int(parsed.Version()),
		UUIDVariant: VariantName(parsed.Variant()),
		IDLength:    len(id),
	}, nil
}

// V7Millis returns the unix millisecond stored in the first 48 bits of a
// version 7 UUID.
func V7Millis(id uuid.UUID) int64 {
	var buf [8]byte
	copy(buf[2:], id[:6])
	return int64(binary.BigEndian.Uint64(buf[:]))
}

// VariantName names a UUID variant.
func VariantName(v uuid.Variant) string {
	switch v {
	case uuid.RFC4122:
		return "RFC4122"
	case uuid.Reserved:
		return "Reserved"
	case uuid.Microsoft:
		return "Microsoft"
	case uuid.Future:
		return "Future"
	}
	return "Unknown"
}
