package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBase32(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{[]byte(""), ""},
		{[]byte("f"), "CR"},
		{[]byte("hello"), "D1JPRV3F"},
		{[]byte("foobar"), "CSQPYRK1E8"},
		{[]byte{0x00, 0xff}, "03ZG"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeBase32(tt.in))
		})
	}
}

func TestDecodeBase32(t *testing.T) {
	got, err := DecodeBase32("CSQPYRK1E8")
	require.NoError(t, err)
	assert.Equal(t, "foobar", string(got))
}

func TestDecodeBase32Lenient(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"lowercase", "csqpyrk1e8"},
		{"hyphens", "CSQP-YRK1-E8"},
		{"ambiguous I", "CSQPYRKIE8"},
		{"ambiguous l", "csqpyrkle8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBase32(tt.in)
			require.NoError(t, err)
			assert.Equal(t, "foobar", string(got))
		})
	}

	zero, err := DecodeBase32("OO")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, zero)
}

func TestDecodeBase32Invalid(t *testing.T) {
	_, err := DecodeBase32("UUUU")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid base32 input")
}

func TestBase32RoundTrip(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0xfe}
	got, err := DecodeBase32(EncodeBase32(data))
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestEncodeHex(t *testing.T) {
	assert.Equal(t, "68656c6c6f", EncodeHex([]byte("hello"), false))
	assert.Equal(t, "00FF", EncodeHex([]byte{0x00, 0xff}, true))
}

func TestDecodeHex(t *testing.T) {
	got, err := DecodeHex("68656C6C6F")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))

	got, err = DecodeHex("0x00ff")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff}, got)

	_, err = DecodeHex("abc")
	assert.Error(t, err)

	_, err = DecodeHex("zz")
	assert.Error(t, err)
}
