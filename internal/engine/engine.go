// Package engine generates, parses and validates ULIDs.
//
// A ULID is 128 bits: a 48-bit millisecond timestamp followed by 80 bits of
// randomness, rendered as 26 Crockford Base32 characters. The codec itself
// is github.com/oklog/ulid/v2; this package adds the limits, error taxonomy
// and structured views the commands need.
package engine

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	// StringLength is the length of an encoded ULID.
	StringLength = 26

	// Charset is the Crockford Base32 alphabet used by ULIDs.
	Charset = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

	TimestampBits  = 48
	RandomnessBits = 80
	TotalBits      = TimestampBits + RandomnessBits

	// DefaultBulkLimit caps a single bulk generation request.
	DefaultBulkLimit = 10_000
)

// Components is the parsed view of a ULID string.
type Components struct {
	ULID          string `json:"ulid"`
	TimestampMs   uint64 `json:"timestamp_ms"`
	RandomnessHex string `json:"randomness_hex"`
	Valid         bool   `json:"valid"`
}

// Time returns the embedded timestamp in UTC.
func (c Components) Time() time.Time {
	return ulid.Time(c.TimestampMs).UTC()
}

// ValidationResult lists every rule a candidate string violates.
type ValidationResult struct {
	Valid          bool     `json:"valid"`
	Length         int      `json:"length"`
	CharsetValid   bool     `json:"charset_valid"`
	TimestampValid bool     `json:"timestamp_valid"`
	Errors         []string `json:"errors"`
}

// Engine generates and inspects ULIDs. The zero value is not usable; call New.
type Engine struct {
	entropy   io.Reader
	now       func() time.Time
	bulkLimit int
}

// Option configures an Engine.
type Option func(*Engine)

// WithEntropy replaces the random source. Tests pass deterministic readers.
func WithEntropy(r io.Reader) Option {
	return func(e *Engine) { e.entropy = r }
}

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithBulkLimit overrides DefaultBulkLimit. Non-positive values are ignored.
func WithBulkLimit(limit int) Option {
	return func(e *Engine) {
		if limit > 0 {
			e.bulkLimit = limit
		}
	}
}

// New creates an Engine backed by crypto/rand and time.Now.
func New(opts ...Option) *Engine {
	e := &Engine{
		entropy:   rand.Reader,
		now:       time.Now,
		bulkLimit: DefaultBulkLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// BulkLimit returns the maximum count accepted by GenerateMany.
func (e *Engine) BulkLimit() int {
	return e.bulkLimit
}

// Generate returns a ULID for the current millisecond.
func (e *Engine) Generate() (ulid.ULID, error) {
	return e.newULID(ulid.Timestamp(e.now()), e.entropy)
}

// GenerateWithTimestamp returns a ULID for the given unix millisecond.
func (e *Engine) GenerateWithTimestamp(ms uint64) (ulid.ULID, error) {
	if err := checkTimestamp(ms); err != nil {
		return ulid.ULID{}, err
	}
	return e.newULID(ms, e.entropy)
}

// BulkRequest describes a GenerateMany call.
type BulkRequest struct {
	Count int
	// Timestamp pins every ULID to one millisecond. Nil reads the clock per ULID.
	Timestamp *uint64
	// Monotonic increments the previous randomness instead of drawing fresh
	// bytes when two ULIDs share a millisecond.
	Monotonic bool
}

// GenerateBulk returns count independent ULIDs.
func (e *Engine) GenerateBulk(count int) ([]ulid.ULID, error) {
	return e.GenerateMany(BulkRequest{Count: count})
}

// GenerateBulkAt returns count ULIDs pinned to ms.
func (e *Engine) GenerateBulkAt(count int, ms uint64, monotonic bool) ([]ulid.ULID, error) {
	return e.GenerateMany(BulkRequest{Count: count, Timestamp: &ms, Monotonic: monotonic})
}

// GenerateMany generates req.Count ULIDs, failing rather than truncating when
// the count exceeds the bulk limit.
func (e *Engine) GenerateMany(req BulkRequest) ([]ulid.ULID, error) {
	if req.Count < 0 {
		return nil, &InvalidInputError{Message: "count must not be negative"}
	}
	if req.Count > e.bulkLimit {
		return nil, &InvalidInputError{
			Message: fmt.Sprintf("bulk generation limited to %s ULIDs per request", formatThousands(e.bulkLimit)),
		}
	}
	if req.Timestamp != nil {
		if err := checkTimestamp(*req.Timestamp); err != nil {
			return nil, err
		}
	}

	entropy := e.entropy
	if req.Monotonic {
		entropy = ulid.Monotonic(e.entropy, 1)
	}

	ids := make([]ulid.ULID, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		ms := ulid.Timestamp(e.now())
		if req.Timestamp != nil {
			ms = *req.Timestamp
		}
		id, err := e.newULID(ms, entropy)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (e *Engine) newULID(ms uint64, entropy io.Reader) (ulid.ULID, error) {
	id, err := ulid.New(ms, entropy)
	if err != nil {
		return ulid.ULID{}, &GenerationError{Reason: err.Error(), Err: err}
	}
	return id, nil
}

func checkTimestamp(ms uint64) error {
	if ms > ulid.MaxTime() {
		return &TimestampOutOfRangeError{Timestamp: ms, Max: ulid.MaxTime()}
	}
	return nil
}

// Parse decodes s into its components.
func Parse(s string) (Components, error) {
	id, err := ulid.ParseStrict(s)
	if err != nil {
		return Components{}, &InvalidFormatError{Input: s, Reason: "parse error: " + err.Error()}
	}
	return Components{
		ULID:          s,
		TimestampMs:   id.Time(),
		RandomnessHex: hex.EncodeToString(id.Entropy()),
		Valid:         true,
	}, nil
}

// Validate reports whether s is a decodable ULID.
func Validate(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}

// ValidateDetailed checks length, then every character, then the full
// decode, and collects all violations instead of stopping at the first.
func ValidateDetailed(s string) ValidationResult {
	res := ValidationResult{
		Valid:          true,
		Length:         len(s),
		CharsetValid:   true,
		TimestampValid: true,
		Errors:         []string{},
	}

	if len(s) != StringLength {
		res.Valid = false
		res.Errors = append(res.Errors, fmt.Sprintf("invalid length: expected %d characters, got %d", StringLength, len(s)))
	}

	pos := 0
	for _, c := range s {
		if !strings.ContainsRune(Charset, c) {
			res.Valid = false
			res.CharsetValid = false
			res.Errors = append(res.Errors, fmt.Sprintf("invalid character '%c' at position %d. Valid characters: %s", c, pos, Charset))
		}
		pos++
	}

	if res.Valid {
		if _, err := ulid.ParseStrict(s); err != nil {
			res.Valid = false
			res.TimestampValid = false
			res.Errors = append(res.Errors, "parse error: "+err.Error())
		}
	}

	return res
}

// ExtractTimestamp returns the unix millisecond embedded in s.
func ExtractTimestamp(s string) (uint64, error) {
	id, err := ulid.ParseStrict(s)
	if err != nil {
		return 0, &InvalidFormatError{Input: s, Reason: "cannot extract timestamp: " + err.Error()}
	}
	return id.Time(), nil
}

// ExtractRandomness returns the 80-bit randomness field of s.
func ExtractRandomness(s string) ([10]byte, error) {
	var out [10]byte
	id, err := ulid.ParseStrict(s)
	if err != nil {
		return out, &InvalidFormatError{Input: s, Reason: "cannot extract randomness: " + err.Error()}
	}
	copy(out[:], id.Entropy())
	return out, nil
}

// Compare orders two ULID strings by timestamp, falling back to plain string
// comparison when the timestamps match or either side fails to parse.
func Compare(a, b string) int {
	ta, errA := ExtractTimestamp(a)
	tb, errB := ExtractTimestamp(b)
	if errA == nil && errB == nil && ta != tb {
		if ta < tb {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func formatThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if n < 0 {
		return s
	}
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}
