package user

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/metadata"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/nft"
	"github.com/DhavalSuthar-24/nfteams-api/internal/middleware"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/apperr"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/logger"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/responses"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserController struct {
	repo     UserRepository
	nft      nft.Lookup
	metadata metadata.Source
}

func NewUserController(repo UserRepository, lookup nft.Lookup, md metadata.Source) *UserController {
	return &UserController{repo: repo, nft: lookup, metadata: md}
}

// @Summary      Set favorite team
// @Description  The caller must own the team's NFT. Replaces any previous favorite.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  SetFavoriteTeamRequest  true  "Team to favorite"
// @Success      200  {object} SetFavoriteTeamResponse
// @Failure      400  {object} responses.ErrorResponse "Invalid Team ID format"
// @Failure      401  {object} responses.ErrorResponse
// @Failure      403  {object} responses.ErrorResponse "You do not own this NFT"
// @Failure      404  {object} responses.ErrorResponse "Team not found"
// @Failure      500  {object} responses.ErrorResponse
// @Router       /api/users/favorite-team [post]
func (uc *UserController) SetFavoriteTeam(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		responses.Fail(c, apperr.ErrMissingToken.Wrap(err))
		return
	}

	var req SetFavoriteTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid Team ID format")
		return
	}
	teamID := *req.TeamID
	ctx := c.Request.Context()

	md, err := uc.metadata.Team(ctx, teamID)
	if errors.Is(err, metadata.ErrNotFound) {
		responses.Fail(c, apperr.NotFound("Team not found").Wrap(err))
		return
	}
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to update favorite team", err))
		return
	}

	owns, err := nft.OwnsTeam(ctx, uc.nft, identity.WalletAddress, teamID)
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to verify NFT ownership", err))
		return
	}
	if !owns {
		responses.Fail(c, apperr.ErrTeamNotOwned)
		return
	}

	if err := uc.repo.SetFavoriteTeam(ctx, identity.WalletAddress, teamID, md.Image); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.Fail(c, apperr.NotFound("User not found"))
			return
		}
		responses.Fail(c, apperr.Upstream("Failed to update favorite team", err))
		return
	}

	logger.From(c).Info("favorite team set", zap.Stringer("team_id", teamID))

	var image *string
	if md.Image != "" {
		image = &md.Image
	}
	c.JSON(http.StatusOK, SetFavoriteTeamResponse{
		Message:  "Favorite team updated successfully",
		TeamID:   teamID,
		ImageURL: image,
	})
}

// @Summary      Get favorite team
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} FavoriteTeamResponse
// @Failure      401  {object} responses.ErrorResponse
// @Failure      404  {object} responses.ErrorResponse "User not found"
// @Failure      500  {object} responses.ErrorResponse
// @Router       /api/users/favorite-team [get]
func (uc *UserController) GetFavoriteTeam(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		responses.Fail(c, apperr.ErrMissingToken.Wrap(err))
		return
	}

	u, err := uc.repo.GetUserByWallet(c.Request.Context(), identity.WalletAddress)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		responses.Fail(c, apperr.NotFound("User not found"))
		return
	}
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to fetch favorite team", err))
		return
	}

	c.JSON(http.StatusOK, FavoriteTeamResponse{TeamID: u.TeamID, ImageURL: u.TeamImageURL})
}
