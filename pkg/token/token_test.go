package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestGenerateAndValidate(t *testing.T) {
	team := uint64(12)
	tok, err := GenerateJWT(7, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", &team, secret, 0)
	require.NoError(t, err)

	claims, err := ValidateJWT(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", claims.WalletAddress)
	require.NotNil(t, claims.TeamID)
	assert.Equal(t, uint64(12), *claims.TeamID)
	assert.WithinDuration(t, time.Now().Add(DefaultSessionTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestValidate_WrongSecret(t *testing.T) {
	tok, err := GenerateJWT(1, "alice.eth", nil, secret, time.Hour)
	require.NoError(t, err)

	_, err = ValidateJWT(tok, "other-secret")
	assert.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	claims := &Claims{
		UserID:        1,
		WalletAddress: "alice.eth",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = ValidateJWT(tok, secret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidate_MissingExpiry(t *testing.T) {
	claims := &Claims{UserID: 1, WalletAddress: "alice.eth"}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = ValidateJWT(tok, secret)
	assert.Error(t, err)
}

func TestValidate_RejectsNoneAlgorithm(t *testing.T) {
	claims := &Claims{
		UserID:        1,
		WalletAddress: "alice.eth",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateJWT(tok, secret)
	assert.Error(t, err)
}

func TestValidate_Empty(t *testing.T) {
	_, err := ValidateJWT("", secret)
	assert.ErrorIs(t, err, ErrEmptyToken)
	_, err = ValidateJWT("abc", "")
	assert.ErrorIs(t, err, ErrEmptySecret)
}
