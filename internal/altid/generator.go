// Package altid generates the identifiers recommended instead of ULIDs for
// security-sensitive values.
package altid

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Flyrell/ulidkit/internal/value"
)

// Generator generates, validates and parses one kind of identifier.
type Generator interface {
	Generate() (string, error)
	GenerateBatch(count int) ([]string, error)
	Validate(id string) (bool, string) // (valid, reason)
	Parse(id string) (*ParseResult, error)
}

// ParseResult holds the parsed fields of an identifier. Zero fields do not
// apply to the kind.
type ParseResult struct {
	Kind          string
	TimestampMs   int64  // uuid7, ksuid
	UUIDVersion   int    // uuid, uuid7
	UUIDVariant   string // uuid, uuid7
	RandomPayload string // ksuid: hex-encoded payload
	IDLength      int
	Alphabet      string // nanoid
}

// Record renders the fields that apply to the parsed kind.
func (p *ParseResult) Record() value.Record {
	r := value.New("kind", p.Kind, "length", p.IDLength)
	if p.UUIDVersion != 0 {
		r = r.Add("version", p.UUIDVersion).Add("variant", p.UUIDVariant)
	}
	if p.TimestampMs != 0 {
		r = r.Add("timestamp_ms", p.TimestampMs)
	}
	if p.RandomPayload != "" {
		r = r.Add("payload", p.RandomPayload)
	}
	if p.Alphabet != "" {
		r = r.Add("alphabet", p.Alphabet)
	}
	return r
}

var factories = map[string]func() (Generator, error){
	"uuid":   func() (Generator, error) { return NewUUIDGenerator(4), nil },
	"uuid7":  func() (Generator, error) { return NewUUIDGenerator(7), nil },
	"ksuid":  func() (Generator, error) { return NewKSUIDGenerator(), nil },
	"nanoid": func() (Generator, error) { return NewNanoIDGenerator(DefaultNanoIDSize, DefaultNanoIDAlphabet) },
	"cuid2":  func() (Generator, error) { return NewCUID2Generator(DefaultCUID2Length) },
}

// Kinds lists the supported identifier kinds.
func Kinds() []string {
	kinds := make([]string, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// New returns the generator for kind.
func New(kind string) (Generator, error) {
	f, ok := factories[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("unknown identifier kind %q, expected one of: %s", kind, strings.Join(Kinds(), ", "))
	}
	return f()
}

func generateBatch(g Generator, count int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("count must not be negative, got %d", count)
	}
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := g.Generate()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
