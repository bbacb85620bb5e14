package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBase32(t *testing.T) {
	stdout, _, err := execRoot(t, "", "encode", "base32", "hello")

	require.NoError(t, err)
	assert.Equal(t, "D1JPRV3F\n", stdout)
}

func TestEncodeBase32Stdin(t *testing.T) {
	stdout, _, err := execRoot(t, "foobar", "encode", "base32")

	require.NoError(t, err)
	assert.Equal(t, "CSQPYRK1E8\n", stdout)
}

func TestEncodeHex(t *testing.T) {
	stdout, _, err := execRoot(t, "", "encode", "hex", "hello")
	require.NoError(t, err)
	assert.Equal(t, "68656c6c6f\n", stdout)

	stdout, _, err = execRoot(t, "", "encode", "hex", "--uppercase", "hello")
	require.NoError(t, err)
	assert.Equal(t, "68656C6C6F\n", stdout)
}

func TestDecodeBase32Raw(t *testing.T) {
	stdout, _, err := execRoot(t, "", "decode", "base32", "d1jprv3f")

	require.NoError(t, err)
	assert.Equal(t, "hello", stdout)
}

func TestDecodeHexText(t *testing.T) {
	stdout, _, err := execRoot(t, "", "decode", "hex", "68656c6c6f", "--text", "-o", "json")

	require.NoError(t, err)
	assert.Equal(t, "\"hello\"\n", stdout)
}

func TestDecodeInvalidUTF8(t *testing.T) {
	cmd, _ := testCmd(formatText)

	err := emitDecoded(cmd, []byte{0xff, 0xfe}, true)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid UTF-8")
}

func TestDecodeInvalidInput(t *testing.T) {
	_, _, err := execRoot(t, "", "decode", "hex", "zz")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid hex")

	_, _, err = execRoot(t, "", "decode", "base32", "U!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid Base32")
}
