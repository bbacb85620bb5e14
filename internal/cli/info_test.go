package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo(t *testing.T) {
	cmd, stdout := testCmd(formatJSON)

	require.NoError(t, runInfo(cmd))

	var got map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, "ulidkit", got["name"])
	assert.Equal(t, "MIT", got["license"])
	assert.Equal(t, float64(10000), got["bulk_limit"])
	assert.Equal(t, float64(100000), got["stream_limit"])
	assert.Equal(t, "none", got["config_file"])
}

func TestInfoKeyOrder(t *testing.T) {
	cmd, stdout := testCmd(formatText)

	require.NoError(t, runInfo(cmd))
	assert.Regexp(t, `(?s)^name: ulidkit\nversion: .*\ncommit: `, stdout.String())
}
