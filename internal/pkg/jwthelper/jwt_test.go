package jwthelper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sit-project/sit-api/internal/domain"
)

var testKey = []byte("test-signing-key")

func TestGenerateAndParseToken(t *testing.T) {
	claims := domain.Claims{
		UserID:    7,
		PersonID:  3,
		Email:     "ana@example.com",
		Username:  "ana",
		FirstName: "Ana",
		LastName:  "Mora",
		Cedula:    "504440123",
	}

	token, err := GenerateToken(testKey, claims, time.Minute)
	require.NoError(t, err)

	parsed, err := ParseToken(testKey, token)
	require.NoError(t, err)
	assert.Equal(t, claims, parsed)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(testKey, domain.Claims{UserID: 1}, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testKey, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongKey(t *testing.T) {
	token, err := GenerateToken(testKey, domain.Claims{UserID: 1}, time.Minute)
	require.NoError(t, err)

	_, err = ParseToken([]byte("another-key"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_RejectsOtherAlgorithms(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		Claims: domain.Claims{UserID: 1},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	signed, err := token.SignedString(testKey)
	require.NoError(t, err)

	_, err = ParseToken(testKey, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateOpaqueToken(t *testing.T) {
	a, err := GenerateOpaqueToken()
	require.NoError(t, err)
	b, err := GenerateOpaqueToken()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
