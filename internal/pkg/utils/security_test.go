package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionJWTRoundTrip(t *testing.T) {
	token, err := GenerateSessionJWT("session-123", "secret", 1)
	require.NoError(t, err)

	sessionID, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "session-123", sessionID)
}

func TestParseJWT(t *testing.T) {
	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", "secret", 1)
		require.NoError(t, err)

		_, err = ParseJWT(token, "another-secret")
		assert.Error(t, err)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"session_id": "session-123",
			"exp":        time.Now().Add(-time.Hour).Unix(),
		})
		tokenString, err := token.SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = ParseJWT(tokenString, "secret")
		assert.Error(t, err)
	})

	t.Run("Missing Session Claim", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		tokenString, err := token.SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = ParseJWT(tokenString, "secret")
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseJWT("not-a-token", "secret")
		assert.Error(t, err)
	})
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, CheckPasswordHash("s3cret!", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
