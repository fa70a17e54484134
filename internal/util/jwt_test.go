package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundtrip(t *testing.T) {
	token, err := GenerateJWT(7, "user@example.com", "secret-a", time.Minute)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret-a")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(7, "user@example.com", "secret-a", time.Minute)
	require.NoError(t, err)

	// Refresh tokens signed with the other secret must not validate as
	// access tokens.
	_, err = ParseJWT(token, "secret-b")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateJWT(7, "user@example.com", "secret-a", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret-a")
	assert.ErrorIs(t, err, ErrTokenExpired)
}
