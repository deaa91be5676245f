package auth

import (
	"testing"
	"time"

	"roost/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test_jwt_secret_key_very_long_for_testing"

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.AuthBackend = &config.AuthBackendConfig{JWTSecret: secret}

	return cfg
}

// signTestToken mints a token the way the hosted auth service would.
func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestTokenService_ParseAccessToken(t *testing.T) {
	tokenService, err := NewTokenService(testConfig(testJWTSecret))
	require.NoError(t, err)

	userID := uuid.New()
	expiry := time.Now().Add(time.Hour)
	tokenString := signTestToken(t, testJWTSecret, jwt.MapClaims{
		"sub":   userID.String(),
		"email": "owner@example.com",
		"role":  "authenticated",
		"iat":   time.Now().Unix(),
		"exp":   expiry.Unix(),
	})

	claims, err := tokenService.ParseAccessToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, "authenticated", claims.Role)
	assert.WithinDuration(t, expiry, claims.ExpiresAt, time.Second)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	tokenService, err := NewTokenService(testConfig(testJWTSecret))
	require.NoError(t, err)

	tokenString := signTestToken(t, "a_different_secret_entirely", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := tokenService.ParseAccessToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	tokenService, err := NewTokenService(testConfig(testJWTSecret))
	require.NoError(t, err)

	tokenString := signTestToken(t, testJWTSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	claims, err := tokenService.ParseAccessToken(tokenString)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	tokenService, err := NewTokenService(testConfig(testJWTSecret))
	require.NoError(t, err)

	claims, err := tokenService.ParseAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenService_RejectsNonUUIDSubject(t *testing.T) {
	tokenService, err := NewTokenService(testConfig(testJWTSecret))
	require.NoError(t, err)

	tokenString := signTestToken(t, testJWTSecret, jwt.MapClaims{
		"sub": "service-account",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := tokenService.ParseAccessToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenService_EmptySecret(t *testing.T) {
	tokenService, err := NewTokenService(testConfig(""))
	assert.Error(t, err)
	assert.Nil(t, tokenService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
