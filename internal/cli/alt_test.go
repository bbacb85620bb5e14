package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Flyrell/ulidkit/internal/altid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAltGenerateEveryKind(t *testing.T) {
	for _, kind := range altid.Kinds() {
		t.Run(kind, func(t *testing.T) {
			cmd, stdout := testCmd(formatText)
			require.NoError(t, runAltGenerate(cmd, kind, nil))

			id := strings.TrimSpace(stdout.String())
			gen, err := altid.New(kind)
			require.NoError(t, err)
			valid, reason := gen.Validate(id)
			assert.True(t, valid, reason)
		})
	}
}

func TestAltGenerateCount(t *testing.T) {
	cmd, stdout := testCmd(formatJSON)

	require.NoError(t, runAltGenerate(cmd, "nanoid", intPtr(4)))

	var ids []string
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &ids))
	assert.Len(t, ids, 4)
}

func TestAltGenerateUnknownKind(t *testing.T) {
	cmd, _ := testCmd(formatText)

	err := runAltGenerate(cmd, "snowflake", nil)

	var labeled *LabeledError
	require.ErrorAs(t, err, &labeled)
	assert.Equal(t, "Unknown identifier kind", labeled.Title)
	assert.Contains(t, labeled.Help, "alt --help")
}

func TestAltValidate(t *testing.T) {
	cmd, stdout := testCmd(formatJSON)

	require.NoError(t, runAltValidate(cmd, "uuid", "not-a-uuid"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, "uuid", got["kind"])
	assert.Equal(t, false, got["valid"])
	assert.NotEmpty(t, got["reason"])
}

func TestAltParseUUID7(t *testing.T) {
	cmd, stdout := testCmd(formatJSON)

	require.NoError(t, runAltParse(cmd, "uuid7", "01932c07-a76a-7000-8000-000000000000"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, "uuid7", got["kind"])
	assert.Equal(t, float64(0x01932c07a76a), got["timestamp_ms"])
}

func TestAltParseInvalid(t *testing.T) {
	cmd, _ := testCmd(formatText)

	err := runAltParse(cmd, "ksuid", "short")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Parse failed")
}
