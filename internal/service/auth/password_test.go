package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	t.Run("hash and compare round trip", func(t *testing.T) {
		t.Parallel()

		digest, err := hasher.Hash("secret123")
		require.NoError(t, err)
		require.NotEmpty(t, digest)

		// The digest is one-way: it never equals the plaintext.
		assert.NotEqual(t, "secret123", digest)

		assert.NoError(t, hasher.Compare(digest, "secret123"))
	})

	t.Run("compare rejects a wrong password", func(t *testing.T) {
		t.Parallel()

		digest, err := hasher.Hash("secret123")
		require.NoError(t, err)

		assert.Error(t, hasher.Compare(digest, "wrong-password"))
	})

	t.Run("distinct hashes for the same password", func(t *testing.T) {
		t.Parallel()

		first, err := hasher.Hash("secret123")
		require.NoError(t, err)
		second, err := hasher.Hash("secret123")
		require.NoError(t, err)

		// bcrypt salts every digest.
		assert.NotEqual(t, first, second)
	})
}
