package login

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2Hasher(t *testing.T) {
	hasher := NewArgon2Hasher()

	t.Run("hash and verify roundtrip", func(t *testing.T) {
		hash, err := hasher.Hash("secret password")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

		valid, err := hasher.Verify("secret password", hash)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("wrong password does not verify", func(t *testing.T) {
		hash, err := hasher.Hash("secret password")
		require.NoError(t, err)

		valid, err := hasher.Verify("other password", hash)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("same password hashes differently each time", func(t *testing.T) {
		first, err := hasher.Hash("secret password")
		require.NoError(t, err)
		second, err := hasher.Hash("secret password")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("malformed hash", func(t *testing.T) {
		_, err := hasher.Verify("secret password", "not-a-hash")
		assert.Error(t, err)
	})
}
