package twofa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePasscode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		passcode, err := GeneratePasscode()
		require.NoError(t, err)
		assert.Len(t, passcode, PasscodeLength)
		assert.Regexp(t, `^[0-9]{6}$`, passcode)
		seen[passcode] = true
	}
	// 100 draws from a million values should not all collide.
	assert.Greater(t, len(seen), 1)
}

func TestNewCodeHasher(t *testing.T) {
	t.Run("requires a secret", func(t *testing.T) {
		_, err := NewCodeHasher("")
		assert.ErrorIs(t, err, ErrMissingHMACKey)
	})

	t.Run("creates hasher with secret", func(t *testing.T) {
		hasher, err := NewCodeHasher("test-secret")
		require.NoError(t, err)
		assert.NotNil(t, hasher)
	})
}

func TestCodeHasherHash(t *testing.T) {
	hasher, err := NewCodeHasher("test-secret")
	require.NoError(t, err)

	t.Run("is deterministic", func(t *testing.T) {
		assert.Equal(t, hasher.Hash("123456"), hasher.Hash("123456"))
	})

	t.Run("different codes produce different digests", func(t *testing.T) {
		assert.NotEqual(t, hasher.Hash("123456"), hasher.Hash("654321"))
	})

	t.Run("different keys produce different digests", func(t *testing.T) {
		other, err := NewCodeHasher("other-secret")
		require.NoError(t, err)
		assert.NotEqual(t, hasher.Hash("123456"), other.Hash("123456"))
	})

	t.Run("digest is hex encoded sha256", func(t *testing.T) {
		digest := hasher.Hash("123456")
		assert.Len(t, digest, 64)
		assert.Regexp(t, `^[0-9a-f]{64}$`, digest)
	})
}
