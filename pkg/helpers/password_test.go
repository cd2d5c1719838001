package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.True(t, len(hash) > 20)

	// bcrypt is salted, two hashes of the same input differ
	hash2, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCompareHashAndPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.True(t, CompareHashAndPassword(hash, "secret1"))
	assert.False(t, CompareHashAndPassword(hash, "wrong"))
	assert.False(t, CompareHashAndPassword("not-a-hash", "secret1"))
}
