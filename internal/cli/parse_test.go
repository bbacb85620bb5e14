package cli

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKnownULID(t *testing.T) {
	cmd, stdout := testCmd(formatJSON)

	require.NoError(t, runParse(cmd, knownULID))

	var got struct {
		ULID      string `json:"ulid"`
		Timestamp struct {
			Ms      uint64 `json:"ms"`
			ISO8601 string `json:"iso8601"`
			Unix    int64  `json:"unix"`
		} `json:"timestamp"`
		Randomness struct {
			Hex string `json:"hex"`
		} `json:"randomness"`
		Valid bool `json:"valid"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, knownULID, got.ULID)
	assert.Equal(t, uint64(knownMs), got.Timestamp.Ms)
	assert.Equal(t, "2016-06-13T13:25:20.894Z", got.Timestamp.ISO8601)
	assert.Equal(t, int64(1465824320), got.Timestamp.Unix)
	assert.Len(t, got.Randomness.Hex, 20)
	assert.True(t, got.Valid)
}

func TestParseText(t *testing.T) {
	cmd, stdout := testCmd(formatText)

	require.NoError(t, runParse(cmd, knownULID))
	out := stdout.String()
	assert.Contains(t, out, "ulid: "+knownULID)
	assert.Contains(t, out, "timestamp:")
	assert.Contains(t, out, "  ms: 1465824320894")
}

func TestParseInvalid(t *testing.T) {
	cmd, _ := testCmd(formatText)

	err := runParse(cmd, "invalid")

	var labeled *LabeledError
	require.True(t, errors.As(err, &labeled))
	assert.Equal(t, "Invalid ULID format", labeled.Title)
	assert.Contains(t, labeled.Message, "'invalid'")
}
