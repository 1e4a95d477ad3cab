package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("investor12345")
	require.NoError(t, err)
	assert.NotEqual(t, "investor12345", hash)

	assert.True(t, CompareHashAndPassword(hash, "investor12345"))
	assert.False(t, CompareHashAndPassword(hash, "investor12346"))
	assert.False(t, CompareHashAndPassword(hash, ""))
}

func TestHashPasswordProducesUniqueSalts(t *testing.T) {
	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestCompareHashAndPasswordRejectsGarbageHash(t *testing.T) {
	assert.False(t, CompareHashAndPassword("not-a-bcrypt-hash", "whatever"))
}
