package engine

import (
	"encoding/base64"
	"encoding/hex"
	"math"
	"time"

	"github.com/Flyrell/ulidkit/internal/timeconv"
	"github.com/Flyrell/ulidkit/internal/value"
)

// CollisionProbabilityPerMs describes the odds of two random 80-bit fields
// colliding within one millisecond.
const CollisionProbabilityPerMs = "~1 in 1.2 x 10^24"

// InspectOptions selects the views Inspect includes.
type InspectOptions struct {
	Compact       bool
	TimestampOnly bool
	Stats         bool
}

// Inspect builds the detailed report for c relative to now.
func (c Components) Inspect(opts InspectOptions, now time.Time) value.Record {
	r := value.Record{}
	if !opts.TimestampOnly {
		r = r.Add("ulid", c.ULID).Add("valid", c.Valid)
	}
	r = r.Add("timestamp", c.timestampView(opts.Compact, now))
	if opts.TimestampOnly {
		return r
	}

	r = r.Add("randomness", c.randomnessView(opts.Compact))
	if opts.Stats {
		r = r.Add("statistics", value.New(
			"timestamp_bits", TimestampBits,
			"randomness_bits", RandomnessBits,
			"total_bits", TotalBits,
			"randomness_entropy", HexEntropy(c.RandomnessHex),
			"collision_probability_per_ms", CollisionProbabilityPerMs,
		))
	}
	return r
}

func (c Components) timestampView(compact bool, now time.Time) any {
	t := c.Time()
	if compact {
		return t.Format("2006-01-02 15:04:05.000 UTC")
	}

	age := "in the future"
	if now.Sub(t) >= time.Second {
		age = timeconv.Human(t, now)
	}
	return value.New(
		"milliseconds", c.TimestampMs,
		"seconds", c.TimestampMs/1000,
		"iso8601", t.Format(ISO8601Millis),
		"rfc3339", t.Format(time.RFC3339Nano),
		"human", t.Format("2006-01-02 15:04:05 UTC"),
		"age", age,
	)
}

func (c Components) randomnessView(compact bool) any {
	if compact {
		return c.RandomnessHex
	}
	r := value.New("hex", c.RandomnessHex)
	if b, err := hex.DecodeString(c.RandomnessHex); err == nil {
		r = r.Add("bytes", len(b)).Add("base64", base64.StdEncoding.EncodeToString(b))
	}
	return r
}

// HexEntropy is the Shannon entropy, in bits per character, of the
// character distribution of s.
func HexEntropy(s string) float64 {
	if s == "" {
		return 0
	}
	counts := make(map[rune]int)
	for _, c := range s {
		counts[c]++
	}

	total := float64(len(s))
	var entropy float64
	for _, n := range counts {
		p := float64(n) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}
