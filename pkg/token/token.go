// pkg/token/token.go
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "nfteams-api"

// DefaultSessionTTL is how long a login session token stays valid.
const DefaultSessionTTL = 7 * 24 * time.Hour

var (
	ErrEmptyToken   = errors.New("token string is empty")
	ErrEmptySecret  = errors.New("jwt secret key is empty")
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims is the session identity carried by a token.
type Claims struct {
	UserID        uint    `json:"userId"`
	WalletAddress string  `json:"wallet_address"`
	TeamID        *uint64 `json:"team_id,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a session token for the user. A zero ttl means DefaultSessionTTL.
func GenerateJWT(userID uint, walletAddress string, teamID *uint64, secretKey string, ttl time.Duration) (string, error) {
	if secretKey == "" {
		return "", ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	now := time.Now()
	claims := &Claims{
		UserID:        userID,
		WalletAddress: walletAddress,
		TeamID:        teamID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secretKey))
}

// ValidateJWT parses, validates, and returns claims from a JWT string.
func ValidateJWT(tokenString string, secretKey string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}
	if secretKey == "" {
		return nil, ErrEmptySecret
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secretKey), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("could not parse token: %w", err)
	}
	if !tok.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.UserID == 0 || claims.WalletAddress == "" {
		return nil, fmt.Errorf("%w: identity claims missing", ErrTokenInvalid)
	}
	return claims, nil
}
