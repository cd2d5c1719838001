package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("testsecret", 24*time.Hour)

	token, exp, err := m.Generate("u1", "a@x.com", "user")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, time.Minute)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestJWTWrongSecret(t *testing.T) {
	m := NewJWTManager("testsecret", time.Hour)
	token, _, err := m.Generate("u1", "a@x.com", "user")
	require.NoError(t, err)

	other := NewJWTManager("othersecret", time.Hour)
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	// A negative TTL stands in for a token whose 24h lifetime has elapsed.
	m := &JWTManager{Secret: []byte("testsecret"), TTL: -time.Hour}
	token, _, err := m.Generate("u1", "a@x.com", "user")
	require.NoError(t, err)

	fresh := &JWTManager{Secret: []byte("testsecret"), TTL: 24 * time.Hour}
	_, err = fresh.Parse(token)
	assert.Error(t, err)
}

func TestGenOpaqueToken(t *testing.T) {
	a, err := GenOpaqueToken(32)
	require.NoError(t, err)
	b, err := GenOpaqueToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.NotEmpty(t, a)
}
