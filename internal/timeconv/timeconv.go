// Package timeconv converts between timestamp representations.
//
// Numeric input is interpreted by magnitude: values above MillisThreshold
// are unix milliseconds, anything else is unix seconds.
package timeconv

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Flyrell/ulidkit/internal/value"
)

const (
	// MillisThreshold separates second timestamps from millisecond ones.
	MillisThreshold = 1_000_000_000_000

	// ISO8601Millis is the layout ULID timestamps are shown in.
	ISO8601Millis = "2006-01-02T15:04:05.000Z"

	// maxUnixSeconds keeps UnixMilli from overflowing.
	maxUnixSeconds = math.MaxInt64 / 1000
)

var errOutOfRange = errors.New("timestamp is out of range")

// Formats accepted by Format.
const (
	FormatISO8601 = "iso8601"
	FormatRFC3339 = "rfc3339"
	FormatMillis  = "millis"
	FormatSeconds = "seconds"
)

// Format renders t in the named format. millis and seconds yield int64,
// the others strings. An empty format means iso8601.
func Format(t time.Time, format string) (any, error) {
	t = t.UTC()
	switch format {
	case "", FormatISO8601:
		return t.Format(ISO8601Millis), nil
	case FormatRFC3339:
		return t.Format(time.RFC3339Nano), nil
	case FormatMillis:
		return t.UnixMilli(), nil
	case FormatSeconds:
		return t.Unix(), nil
	}
	return nil, fmt.Errorf("unknown format '%s'. Valid formats: iso8601, rfc3339, millis, seconds", format)
}

// Parse reads an RFC 3339 string, an integer or a float timestamp.
func Parse(input string) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n > MillisThreshold {
			return time.UnixMilli(n).UTC(), nil
		}
		if n < -maxUnixSeconds {
			return time.Time{}, errOutOfRange
		}
		return time.Unix(n, 0).UTC(), nil
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return time.Time{}, errOutOfRange
		}
		if f > MillisThreshold {
			f /= 1000
		}
		if math.Abs(f) > maxUnixSeconds {
			return time.Time{}, errOutOfRange
		}
		sec, frac := math.Modf(f)
		nsec := int64(math.Round(frac * 1e9))
		return time.Unix(int64(sec), nsec).UTC(), nil
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp format: %w", err)
	}
	return t.UTC(), nil
}

// Millis converts input to unix milliseconds; an empty input means now.
func Millis(input string, now time.Time) (int64, error) {
	if strings.TrimSpace(input) == "" {
		return now.UnixMilli(), nil
	}
	t, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}

// Breakdown is every view of a parsed timestamp.
type Breakdown struct {
	ISO8601     string
	RFC3339     string
	UnixSeconds int64
	UnixMillis  int64
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Nanosecond  int
}

// Explain breaks t down into its fields.
func Explain(t time.Time) Breakdown {
	t = t.UTC()
	return Breakdown{
		ISO8601:     t.Format(ISO8601Millis),
		RFC3339:     t.Format(time.RFC3339Nano),
		UnixSeconds: t.Unix(),
		UnixMillis:  t.UnixMilli(),
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Nanosecond:  t.Nanosecond(),
	}
}

// Record renders the breakdown.
func (b Breakdown) Record() value.Record {
	return value.New(
		"iso8601", b.ISO8601,
		"rfc3339", b.RFC3339,
		"unix_seconds", b.UnixSeconds,
		"unix_millis", b.UnixMillis,
		"year", b.Year,
		"month", b.Month,
		"day", b.Day,
		"hour", b.Hour,
		"minute", b.Minute,
		"second", b.Second,
		"nanosecond", b.Nanosecond,
	)
}

// Human describes how far t lies from now, e.g. "3 days ago".
// The distance is computed in milliseconds so timestamps centuries away do
// not saturate time.Duration.
func Human(t, now time.Time) string {
	ms := now.UnixMilli() - t.UnixMilli()
	suffix := "ago"
	if ms < 0 {
		ms = -ms
		suffix = "from now"
	}
	if ms < 1000 {
		return "just now"
	}

	const (
		minute = 60
		hour   = 60 * minute
		day    = 24 * hour
		year   = 365 * day
	)
	secs := ms / 1000
	switch {
	case secs < minute:
		return plural(secs, "second", suffix)
	case secs < hour:
		return plural(secs/minute, "minute", suffix)
	case secs < day:
		return plural(secs/hour, "hour", suffix)
	case secs < year:
		return plural(secs/day, "day", suffix)
	}
	return plural(secs/year, "year", suffix)
}
func plural(n int64, unit, suffix string) string {
	if n != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s %s", n, unit, suffix)
}
