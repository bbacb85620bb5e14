package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityAdviceText(t *testing.T) {
	cmd, stdout := testCmd(formatText)

	require.NoError(t, runSecurityAdvice(cmd, ""))
	out := stdout.String()
	assert.Contains(t, out, "title: ULID Security Considerations")
	assert.Contains(t, out, "safe_use_cases:")
	assert.Contains(t, out, "secure_alternatives:")
	assert.Contains(t, out, "  -\n")
}

func TestSecurityAdviceWithContext(t *testing.T) {
	cmd, stdout := testCmd(formatJSON)

	require.NoError(t, runSecurityAdvice(cmd, "API_KEY"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, "API_KEY", got["context"])
	assert.Equal(t, "High", got["rating"])
	assert.Equal(t, true, got["sensitive"])
	assert.Contains(t, got, "guidance")
}

func TestSecurityAdviceYAML(t *testing.T) {
	cmd, stdout := testCmd(formatYAML)

	require.NoError(t, runSecurityAdvice(cmd, "log correlation"))
	out := stdout.String()
	assert.Contains(t, out, "context: log correlation\n")
	assert.Contains(t, out, "rating: Low\n")
	assert.Contains(t, out, "sensitive: false\n")
}
