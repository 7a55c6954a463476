package utils_test

import (
	"testing"
	"time"

	"github.com/blogweb/backend/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-for-token-tests"
	testIssuer = "blogweb-backend"
)

func TestGenerateAndParseJWTRoundTrip(t *testing.T) {
	token, err := utils.GenerateJWT("user-42", testSecret, time.Hour, testIssuer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestParseAndValidateJWTExpired(t *testing.T) {
	// Zero and negative validity windows must always fail with an
	// expiry-class error, distinguishable from structural failures.
	for _, ttl := range []time.Duration{0, -time.Minute} {
		token, err := utils.GenerateJWT("user-42", testSecret, ttl, testIssuer)
		require.NoError(t, err)

		_, err = utils.ParseAndValidateJWT(token, testSecret)
		require.Error(t, err)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	}
}

func TestParseAndValidateJWTWrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("user-42", "some-other-secret", time.Hour, testIssuer)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, testSecret)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseAndValidateJWTMalformed(t *testing.T) {
	for _, tokenStr := range []string{"", "garbage", "a.b.c", "invalid.token.here"} {
		_, err := utils.ParseAndValidateJWT(tokenStr, testSecret)
		assert.Error(t, err, "token %q should not parse", tokenStr)
	}
}
