package engine

import (
	"github.com/Flyrell/ulidkit/internal/value"
	"github.com/oklog/ulid/v2"
)

// ISO8601Millis is the millisecond-precision UTC layout used in every view.
const ISO8601Millis = "2006-01-02T15:04:05.000Z"

// Record renders the rich view {ulid, timestamp{ms, iso8601, unix}, randomness{hex}, valid}.
func (c Components) Record() value.Record {
	ts := c.Time()
	return value.New(
		"ulid", c.ULID,
		"timestamp", value.New(
			"ms", c.TimestampMs,
			"iso8601", ts.Format(ISO8601Millis),
			"unix", ts.Unix(),
		),
		"randomness", value.New("hex", c.RandomnessHex),
		"valid", c.Valid,
	)
}

// Compact renders the flat view {ulid, timestamp_ms, randomness}.
func (c Components) Compact() value.Record {
	return value.New(
		"ulid", c.ULID,
		"timestamp_ms", c.TimestampMs,
		"randomness", c.RandomnessHex,
	)
}

// Record renders the detailed validation report.
func (r ValidationResult) Record() value.Record {
	return value.New(
		"valid", r.Valid,
		"length", r.Length,
		"charset_valid", r.CharsetValid,
		"timestamp_valid", r.TimestampValid,
		"errors", r.Errors,
	)
}

// ComponentsOf builds the parsed view of an in-memory ULID.
func ComponentsOf(id ulid.ULID) Components {
	c, _ := Parse(id.String())
	return c
}
