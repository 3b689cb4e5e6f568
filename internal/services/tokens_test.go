package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokens() TokenService {
	return TokenService{
		Secret:   []byte("test-secret"),
		Issuer:   "enertek",
		Audience: "enertek-web",
		TTL:      time.Hour,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testTokens()
	signed, exp, err := svc.CreateToken(42, "Ana Popescu", "ana@example.com", "Admin")
	require.NoError(t, err)
	assert.Greater(t, exp, time.Now().Unix())

	token, claims, err := svc.ParseToken(signed)
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "enertek", claims["iss"])
	assert.Equal(t, "ana@example.com", claims["email"])
	assert.Equal(t, "Admin", claims["role"])
	assert.Equal(t, float64(42), claims["sub"])
}

func TestParseTokenRejectsWrongIssuer(t *testing.T) {
	other := testTokens()
	other.Issuer = "someone-else"
	signed, _, err := other.CreateToken(1, "x", "x@example.com", "User")
	require.NoError(t, err)

	_, _, err = testTokens().ParseToken(signed)
	assert.Error(t, err)
}

func TestParseTokenRejectsTamperedSignature(t *testing.T) {
	svc := testTokens()
	signed, _, err := svc.CreateToken(1, "x", "x@example.com", "User")
	require.NoError(t, err)

	svc.Secret = []byte("different-secret")
	_, _, err = svc.ParseToken(signed)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	svc := testTokens()
	hash, err := svc.HashPassword("secret1!")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1!", hash)
	assert.True(t, svc.VerifyPassword("secret1!", hash))
	assert.False(t, svc.VerifyPassword("wrong", hash))
}
