package altid

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	assert.Equal(t, []string{"cuid2", "ksuid", "nanoid", "uuid", "uuid7"}, Kinds())
}

func TestNewUnknownKind(t *testing.T) {
	_, err := New("snowflake")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected one of")
}

func TestGeneratorsRoundTrip(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind, func(t *testing.T) {
			g, err := New(kind)
			require.NoError(t, err)

			id, err := g.Generate()
			require.NoError(t, err)

			valid, reason := g.Validate(id)
			assert.True(t, valid, reason)

			res, err := g.Parse(id)
			require.NoError(t, err)
			assert.Equal(t, kind, res.Kind)
			assert.Equal(t, len(id), res.IDLength)
		})
	}
}

func TestGenerateBatch(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind, func(t *testing.T) {
			g, err := New(kind)
			require.NoError(t, err)

			ids, err := g.GenerateBatch(20)
			require.NoError(t, err)
			assert.Len(t, ids, 20)

			seen := map[string]bool{}
			for _, id := range ids {
				assert.False(t, seen[id], "duplicate %s", id)
				seen[id] = true
			}

			_, err = g.GenerateBatch(-1)
			assert.Error(t, err)
		})
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind, func(t *testing.T) {
			g, err := New(kind)
			require.NoError(t, err)

			valid, reason := g.Validate("!")
			assert.False(t, valid)
			assert.NotEmpty(t, reason)

			_, err = g.Parse("!")
			assert.Error(t, err)
		})
	}
}

func TestUUIDVersionMismatch(t *testing.T) {
	v4 := uuid.New().String()

	valid, reason := NewUUIDGenerator(7).Validate(v4)
	assert.False(t, valid)
	assert.Equal(t, "expected UUID v7, got v4", reason)
}

func TestUUID7Timestamp(t *testing.T) {
	id, err := uuid.NewV7()
	require.NoError(t, err)

	res, err := NewUUIDGenerator(7).Parse(id.String())
	require.NoError(t, err)
	assert.Positive(t, res.TimestampMs)
	assert.Equal(t, "RFC4122", res.UUIDVariant)
	assert.Equal(t, 7, res.UUIDVersion)
}

func TestV7Millis(t *testing.T) {
	id := uuid.MustParse("017f22e2-79b0-7cc3-98c4-dc0c0c07398f")
	assert.Equal(t, int64(0x017f22e279b0), V7Millis(id))
}

func TestNanoIDAlphabet(t *testing.T) {
	g, err := NewNanoIDGenerator(8, "ab")
	require.NoError(t, err)

	id, err := g.Generate()
	require.NoError(t, err)
	assert.Empty(t, strings.Trim(id, "ab"))

	valid, reason := g.Validate("abababac")
	assert.False(t, valid)
	assert.Contains(t, reason, "not in alphabet")
}

func TestNanoIDBounds(t *testing.T) {
	_, err := NewNanoIDGenerator(0, DefaultNanoIDAlphabet)
	assert.Error(t, err)
	_, err = NewNanoIDGenerator(10, "a")
	assert.Error(t, err)
}

func TestCUID2Bounds(t *testing.T) {
	_, err := NewCUID2Generator(1)
	assert.Error(t, err)
	_, err = NewCUID2Generator(33)
	assert.Error(t, err)
}

func TestParseResultRecord(t *testing.T) {
	rec := (&ParseResult{Kind: "ksuid", IDLength: 27, TimestampMs: 5, RandomPayload: "ab"}).Record()
	assert.Equal(t, []string{"kind", "length", "timestamp_ms", "payload"}, rec.Keys())

	rec = (&ParseResult{Kind: "uuid", IDLength: 36, UUIDVersion: 4, UUIDVariant: "RFC4122"}).Record()
	assert.Equal(t, []string{"kind", "length", "version", "variant"}, rec.Keys())
}
