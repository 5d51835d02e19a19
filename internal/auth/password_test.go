package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_Roundtrip(t *testing.T) {
	h := NewPasswordHasher(DefaultCost)

	digest, err := h.Hash("password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", digest)

	assert.True(t, h.Verify("password123", digest))
	assert.False(t, h.Verify("password124", digest))
}

func TestPasswordHasher_DigestsDiffer(t *testing.T) {
	h := NewPasswordHasher(DefaultCost)

	first, err := h.Hash("password123")
	require.NoError(t, err)
	second, err := h.Hash("password123")
	require.NoError(t, err)

	// Embedded random salt makes digests incomparable by equality.
	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("password123", first))
	assert.True(t, h.Verify("password123", second))
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	h := NewPasswordHasher(DefaultCost)

	assert.False(t, h.Verify("password123", "not-a-bcrypt-digest"))
	assert.False(t, h.Verify("password123", ""))
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	h := NewPasswordHasher(0)
	assert.Equal(t, DefaultCost, h.cost)

	h = NewPasswordHasher(100)
	assert.Equal(t, DefaultCost, h.cost)
}
