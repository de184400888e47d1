package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("sekret")
	require.NoError(t, err)
	assert.NotEqual(t, "sekret", hash)

	assert.True(t, VerifyPassword("sekret", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}

func TestVerifyPasswordBadHash(t *testing.T) {
	assert.False(t, VerifyPassword("sekret", "not-a-bcrypt-hash"))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("sekret")
	require.NoError(t, err)
	h2, err := HashPassword("sekret")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
