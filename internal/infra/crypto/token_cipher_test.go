package crypto

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() string {
	return strings.Repeat("ab", 32)
}

func TestNewTokenCipher(t *testing.T) {
	t.Run("valid key", func(t *testing.T) {
		cipher, err := NewTokenCipher(testKey())
		require.NoError(t, err)
		assert.NotNil(t, cipher)
	})

	t.Run("rejects non-hex key", func(t *testing.T) {
		_, err := NewTokenCipher("not-hex")
		assert.Error(t, err)
	})

	t.Run("rejects short key", func(t *testing.T) {
		_, err := NewTokenCipher(hex.EncodeToString([]byte("short")))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "32 bytes")
	})
}

func TestTokenCipher_RoundTrip(t *testing.T) {
	cipher, err := NewTokenCipher(testKey())
	require.NoError(t, err)

	sealed, err := cipher.Seal("EAABsbCS1234PageToken")
	require.NoError(t, err)
	assert.NotEqual(t, "EAABsbCS1234PageToken", sealed)

	opened, err := cipher.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "EAABsbCS1234PageToken", opened)
}

func TestTokenCipher_SealIsRandomized(t *testing.T) {
	cipher, err := NewTokenCipher(testKey())
	require.NoError(t, err)

	first, err := cipher.Seal("same-token")
	require.NoError(t, err)
	second, err := cipher.Seal("same-token")
	require.NoError(t, err)

	// Fresh nonce per seal; identical plaintexts must not leak equality.
	assert.NotEqual(t, first, second)
}

func TestTokenCipher_OpenRejectsTampering(t *testing.T) {
	cipher, err := NewTokenCipher(testKey())
	require.NoError(t, err)

	t.Run("garbage input", func(t *testing.T) {
		_, err := cipher.Open("%%%")
		assert.Error(t, err)
	})

	t.Run("truncated input", func(t *testing.T) {
		_, err := cipher.Open("c2hvcnQ=")
		assert.Error(t, err)
	})

	t.Run("wrong key", func(t *testing.T) {
		sealed, err := cipher.Seal("token")
		require.NoError(t, err)

		other, err := NewTokenCipher(strings.Repeat("cd", 32))
		require.NoError(t, err)

		_, err = other.Open(sealed)
		assert.Error(t, err)
	})
}
