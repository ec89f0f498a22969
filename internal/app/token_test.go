package app

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenExpiry(t *testing.T) {
	exp := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "Wallet-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	got, ok := tokenExpiry(signed)
	assert.True(t, ok)
	assert.True(t, exp.Equal(got))
}

func TestTokenExpiry_OpaqueToken(t *testing.T) {
	_, ok := tokenExpiry("not-a-jwt")
	assert.False(t, ok)
}

func TestTokenExpiry_NoExpiry(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "x"}).SignedString([]byte("k"))
	require.NoError(t, err)
	_, ok := tokenExpiry(signed)
	assert.False(t, ok)
}
