package auth

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/nfteams-api/config"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/nft"
	"github.com/DhavalSuthar-24/nfteams-api/internal/middleware"
	"github.com/DhavalSuthar-24/nfteams-api/internal/models"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/apperr"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/logger"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/responses"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/token"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthController struct {
	repo   AuthRepository
	nft    nft.Lookup
	config *config.Config
}

func NewAuthController(repo AuthRepository, lookup nft.Lookup, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		nft:    lookup,
		config: cfg,
	}
}

// @Summary      Register a wallet
// @Description  Create a user for a wallet address (0x address or .eth name). No token is issued.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "Wallet to register"
// @Success      201   {object} MessageResponse
// @Failure      400   {object} responses.ErrorResponse "Invalid or already registered wallet"
// @Failure      500   {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, "Invalid input", validator.ParseError(err))
		return
	}

	wallet, err := NormalizeWallet(req.WalletAddress)
	if err != nil {
		responses.Fail(c, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := ac.repo.GetUserByWallet(ctx, wallet); err == nil {
		responses.Fail(c, apperr.ErrDuplicateWallet)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.Fail(c, apperr.Upstream("Internal server error", err))
		return
	}

	if err := ac.repo.CreateUser(ctx, &models.User{WalletAddress: wallet}); err != nil {
		// Lost a race with a concurrent registration of the same wallet.
		if _, lookupErr := ac.repo.GetUserByWallet(ctx, wallet); lookupErr == nil {
			responses.Fail(c, apperr.ErrDuplicateWallet)
			return
		}
		responses.Fail(c, apperr.Upstream("Internal server error", err))
		return
	}

	logger.From(c).Info("wallet registered", zap.String("wallet", wallet))
	c.JSON(http.StatusCreated, MessageResponse{Message: "User created successfully"})
}

// @Summary      Login with a wallet
// @Description  Verifies the wallet holds at least one team NFT, creates the user on first login and returns a 7 day session token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Wallet to log in with"
// @Success      200   {object} LoginResponse
// @Failure      400   {object} responses.ErrorResponse "Missing or invalid wallet"
// @Failure      403   {object} responses.ErrorResponse "No NFT ownership verified"
// @Failure      500   {object} responses.ErrorResponse "Authentication failed"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, "Invalid input", validator.ParseError(err))
		return
	}
	if req.wallet() == "" {
		responses.BadRequest(c, "Wallet address is required")
		return
	}

	wallet, err := NormalizeWallet(req.wallet())
	if err != nil {
		responses.Fail(c, err)
		return
	}

	ctx := c.Request.Context()
	hasNFT, err := nft.HasAny(ctx, ac.nft, wallet)
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to verify NFT ownership", err))
		return
	}
	if !hasNFT {
		responses.Fail(c, apperr.ErrNoNFTOwnership)
		return
	}

	user, err := ac.repo.GetOrCreateUser(ctx, wallet)
	if err != nil {
		responses.Fail(c, apperr.Upstream("Authentication failed", err))
		return
	}

	var teamID *uint64
	if user.TeamID != nil {
		id := uint64(*user.TeamID)
		teamID = &id
	}
	sessionToken, err := token.GenerateJWT(user.ID, user.WalletAddress, teamID, ac.config.JWT.Secret, ac.config.SessionTTL())
	if err != nil {
		responses.Fail(c, apperr.Upstream("Authentication failed", err))
		return
	}

	logger.From(c).Info("login", zap.Uint("user_id", user.ID), zap.String("wallet", wallet))
	c.JSON(http.StatusOK, LoginResponse{
		Token: sessionToken,
		User:  SessionUser{ID: user.ID, WalletAddress: user.WalletAddress},
	})
}

// @Summary      Check a session token
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} map[string]interface{}
// @Failure      401  {object} responses.ErrorResponse
// @Failure      403  {object} responses.ErrorResponse
// @Router       /api/test-auth [get]
func (ac *AuthController) TestAuth(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		responses.Fail(c, apperr.ErrMissingToken.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "You are authenticated!",
		"user":    identity,
	})
}
