package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentsRecord(t *testing.T) {
	c, err := Parse(knownULID)
	require.NoError(t, err)

	data, err := json.Marshal(c.Record())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"ulid": "01AN4Z07BY79KA1307SR9X4MV3",
		"timestamp": {"ms": 1465824320894, "iso8601": "2016-06-13T13:25:20.894Z", "unix": 1465824320},
		"randomness": {"hex": "3a66a08c07ce13d25363"},
		"valid": true
	}`, string(data))
}

func TestComponentsCompact(t *testing.T) {
	c, err := Parse(knownULID)
	require.NoError(t, err)

	assert.Equal(t, []string{"ulid", "timestamp_ms", "randomness"}, c.Compact().Keys())
}

func TestValidationResultRecord(t *testing.T) {
	r := ValidateDetailed("bad")
	rec := r.Record()

	v, ok := rec.Get("valid")
	require.True(t, ok)
	assert.Equal(t, false, v)
	assert.Equal(t, []string{"valid", "length", "charset_valid", "timestamp_valid", "errors"}, rec.Keys())
}
