package order

import (
	"bytes"
	"context"
	"testing"

	"github.com/Flyrell/ulidkit/internal/engine"
	"github.com/Flyrell/ulidkit/internal/logging"
	"github.com/Flyrell/ulidkit/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func ulidAt(t *testing.T, ms uint64) string {
	t.Helper()
	id, err := engine.New(engine.WithEntropy(zeroReader{})).GenerateWithTimestamp(ms)
	require.NoError(t, err)
	return id.String()
}

func TestKeyOf(t *testing.T) {
	k := KeyOf("01AN4Z07BY79KA1307SR9X4MV3")
	assert.Equal(t, Valid, k.Kind)
	assert.Equal(t, uint64(1465824320894), k.Timestamp)

	k = KeyOf("not-a-ulid")
	assert.Equal(t, Unparsable, k.Kind)
	assert.Equal(t, "not-a-ulid", k.Text)
}

func TestStringsByTimestamp(t *testing.T) {
	a, b, c := ulidAt(t, 3000), ulidAt(t, 1000), ulidAt(t, 2000)

	got := Strings(context.Background(), []string{a, b, c}, Options{})

	assert.Equal(t, []string{b, c, a}, got)
}

func TestStringsUnparsableFirst(t *testing.T) {
	a := ulidAt(t, 1000)

	got := Strings(context.Background(), []string{a, "zzz", "aaa"}, Options{})

	assert.Equal(t, []string{"aaa", "zzz", a}, got)
}

func TestStringsReverseMirrorsForward(t *testing.T) {
	in := []string{ulidAt(t, 5), "junk", ulidAt(t, 1), ulidAt(t, 3), "also junk"}

	forward := Strings(context.Background(), in, Options{})
	reverse := Strings(context.Background(), in, Options{Reverse: true})

	require.Len(t, reverse, len(forward))
	for i := range forward {
		assert.Equal(t, forward[i], reverse[len(reverse)-1-i])
	}
}

func TestStringsNatural(t *testing.T) {
	got := Strings(context.Background(), []string{"b", "c", "a"}, Options{Natural: true})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestStringsDoesNotMutateInput(t *testing.T) {
	in := []string{"b", "a"}
	_ = Strings(context.Background(), in, Options{Natural: true})
	assert.Equal(t, []string{"b", "a"}, in)
}

func TestSortStableOnEqualKeys(t *testing.T) {
	type row struct {
		id  string
		tag int
	}
	id := ulidAt(t, 42)
	rows := []row{{id, 1}, {id, 2}, {id, 3}}

	got := Sort(context.Background(), rows, func(r row) Key { return KeyOf(r.id) }, Options{})

	assert.Equal(t, []int{1, 2, 3}, []int{got[0].tag, got[1].tag, got[2].tag})
}

func TestFieldKeyRecords(t *testing.T) {
	late, early := ulidAt(t, 2000), ulidAt(t, 1000)
	items := []any{
		map[string]any{"id": late, "name": "late"},
		map[string]any{"name": "no id"},
		42,
		map[string]any{"id": early, "name": "early"},
	}

	got := Sort(context.Background(), items, FieldKey("id"), Options{})

	assert.Equal(t, "early", got[0].(map[string]any)["name"])
	assert.Equal(t, "late", got[1].(map[string]any)["name"])
	assert.Equal(t, "no id", got[2].(map[string]any)["name"])
	assert.Equal(t, 42, got[3])
}

func TestFieldKeyPlainStrings(t *testing.T) {
	assert.Equal(t, Valid, FieldKey("")("01AN4Z07BY79KA1307SR9X4MV3").Kind)
	assert.Equal(t, Missing, FieldKey("id")("01AN4Z07BY79KA1307SR9X4MV3").Kind)
}

func TestNaturalMissingLast(t *testing.T) {
	items := []any{7, "b", "a"}
	got := Sort(context.Background(), items, FieldKey(""), Options{Natural: true})
	assert.Equal(t, []any{"a", "b", 7}, got)
}

func TestSortLogsUnparsable(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.New(logging.Config{Level: "debug", Out: &buf}))

	Strings(ctx, []string{"nope"}, Options{})

	assert.Contains(t, buf.String(), "unparsable ULID sorts first")
	assert.Contains(t, buf.String(), `"value":"nope"`)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "unparsable", Unparsable.String())
	assert.Equal(t, "valid", Valid.String())
	assert.Equal(t, "missing", Missing.String())
}

func TestFieldKeyOrderedRecords(t *testing.T) {
	late, early := ulidAt(t, 2000), ulidAt(t, 1000)
	items := []any{
		value.New("ulid", late),
		value.New("ulid", 7),
		value.New("ulid", early),
	}

	got := Sort(context.Background(), items, FieldKey("ulid"), Options{})

	assert.Equal(t, value.New("ulid", early), got[0])
	assert.Equal(t, value.New("ulid", late), got[1])
	assert.Equal(t, value.New("ulid", 7), got[2])
}
