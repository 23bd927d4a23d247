package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DhavalSuthar-24/nfteams-api/pkg/apperr"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/logger"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/responses"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/token"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	AuthIdentityKey = "auth_identity"
)

// Identity is the session holder attached to authenticated requests.
type Identity struct {
	UserID        uint    `json:"userId"`
	WalletAddress string  `json:"wallet_address"`
	TeamID        *uint64 `json:"team_id,omitempty"`
}

// AuthMiddleware requires "Authorization: Bearer <token>". A missing or
// malformed header is 401, a token that fails verification is 403.
// Sessions are stateless, so no database lookup happens here.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		scheme, raw, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
		raw = strings.TrimSpace(raw)
		if !ok || !strings.EqualFold(scheme, "bearer") || raw == "" {
			responses.Fail(c, apperr.ErrMissingToken)
			return
		}

		claims, err := token.ValidateJWT(raw, jwtSecret)
		if err != nil {
			responses.Fail(c, apperr.ErrInvalidOrExpiredToken.Wrap(err))
			return
		}

		identity := &Identity{
			UserID:        claims.UserID,
			WalletAddress: claims.WalletAddress,
			TeamID:        claims.TeamID,
		}
		c.Set(AuthIdentityKey, identity)
		logger.Attach(c, logger.From(c).With(zap.Uint("user_id", identity.UserID)))
		c.Next()
	}
}

// GetIdentityFromContext extracts the session identity from the context
func GetIdentityFromContext(c *gin.Context) (*Identity, error) {
	v, exists := c.Get(AuthIdentityKey)
	if !exists {
		return nil, errors.New("identity not found in context")
	}

	identity, ok := v.(*Identity)
	if !ok {
		return nil, fmt.Errorf("identity has unexpected type: %T", v)
	}

	return identity, nil
}
