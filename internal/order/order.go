// Package order sorts ULID strings, or records carrying one, by embedded
// timestamp or by plain string order.
//
// Entries that are not ULIDs do not fail the sort. They are tagged
// Unparsable and placed before every valid entry. Entries without a usable
// key (a non-string element, or a record lacking the sort column) are
// tagged Missing and placed last.
package order

import (
	"context"
	"slices"
	"strings"

	"github.com/Flyrell/ulidkit/internal/engine"
	"github.com/Flyrell/ulidkit/internal/logging"
	"github.com/Flyrell/ulidkit/internal/value"
)

// Kind classifies a sort key.
type Kind int

const (
	Unparsable Kind = iota
	Valid
	Missing
)

func (k Kind) String() string {
	switch k {
	case Unparsable:
		return "unparsable"
	case Valid:
		return "valid"
	case Missing:
		return "missing"
	}
	return "unknown"
}

// Key is the tagged sort key of one element.
type Key struct {
	Kind      Kind
	Timestamp uint64
	Text      string
}

// KeyOf classifies s.
func KeyOf(s string) Key {
	ts, err := engine.ExtractTimestamp(s)
	if err != nil {
		return Key{Kind: Unparsable, Text: s}
	}
	return Key{Kind: Valid, Timestamp: ts, Text: s}
}

// MissingKey is the key of an element with nothing to sort on.
func MissingKey() Key {
	return Key{Kind: Missing}
}

// Compare orders keys by kind, then by timestamp, then by text.
func Compare(a, b Key) int {
	if a.Kind != b.Kind {
		return int(a.Kind) - int(b.Kind)
	}
	if a.Kind == Valid && a.Timestamp != b.Timestamp {
		if a.Timestamp < b.Timestamp {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Text, b.Text)
}

// CompareNatural orders keys by text only. Missing keys still sort last.
func CompareNatural(a, b Key) int {
	am, bm := a.Kind == Missing, b.Kind == Missing
	switch {
	case am && bm:
		return 0
	case am:
		return 1
	case bm:
		return -1
	}
	return strings.Compare(a.Text, b.Text)
}

// Options controls Sort.
type Options struct {
	Reverse bool
	Natural bool
}

// Sort returns a sorted copy of items. The sort is stable; Reverse flips
// the finished slice so it mirrors the forward order exactly.
func Sort[T any](ctx context.Context, items []T, key func(T) Key, opts Options) []T {
	log := logging.Ctx(ctx)

	type keyed struct {
		item T
		key  Key
	}
	entries := make([]keyed, len(items))
	for i, item := range items {
		k := key(item)
		if k.Kind == Unparsable && !opts.Natural {
			log.Debug().Int("index", i).Str("value", k.Text).Msg("unparsable ULID sorts first")
		}
		entries[i] = keyed{item: item, key: k}
	}

	cmp := Compare
	if opts.Natural {
		cmp = CompareNatural
	}
	slices.SortStableFunc(entries, func(a, b keyed) int { return cmp(a.key, b.key) })

	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = e.item
	}
	if opts.Reverse {
		slices.Reverse(out)
	}
	return out
}

// Strings sorts plain identifier strings.
func Strings(ctx context.Context, ids []string, opts Options) []string {
	return Sort(ctx, ids, KeyOf, opts)
}

// FieldKey builds a key function for records, reading column from each one.
// Elements that are not records, or whose column is absent or not a string, get
// MissingKey. A plain string element is used directly when column is empty.
func FieldKey(column string) func(any) Key {
	return func(v any) Key {
		switch x := v.(type) {
		case string:
			if column == "" {
				return KeyOf(x)
			}
		case value.Record:
			if v, ok := x.Get(column); ok {
				if s, ok := v.(string); ok {
					return KeyOf(s)
				}
			}
		case map[string]any:
			if s, ok := x[column].(string); ok {
				return KeyOf(s)
			}
		}
		return MissingKey()
	}
}
