package team

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/nfteams-api/internal/bracket"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/metadata"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/nft"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/apperr"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/logger"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/responses"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// TeamController serves the NFT team endpoints.
type TeamController struct {
	brackets bracket.BracketRepository
	nft      nft.Lookup
	metadata metadata.Source
}

func NewTeamController(brackets bracket.BracketRepository, lookup nft.Lookup, md metadata.Source) *TeamController {
	return &TeamController{brackets: brackets, nft: lookup, metadata: md}
}

// VerifyOwnership godoc
// @Summary      Check NFT ownership
// @Description  Reports whether the wallet holds at least one team NFT.
// @Tags         Teams
// @Produce      json
// @Param        wallet  path  string  true  "Wallet address"
// @Success      200  {object} VerifyResponse
// @Failure      500  {object} responses.ErrorResponse "Failed to verify NFT ownership"
// @Router       /api/teams/verify/{wallet} [get]
func (tc *TeamController) VerifyOwnership(c *gin.Context) {
	hasNFT, err := nft.HasAny(c.Request.Context(), tc.nft, c.Param("wallet"))
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to verify NFT ownership", err))
		return
	}
	c.JSON(http.StatusOK, VerifyResponse{HasNFT: hasNFT})
}

// GetOwnedTeams godoc
// @Summary      List a wallet's teams
// @Description  Team NFTs held by the wallet. Untitled tokens are named "Team <id>".
// @Tags         Teams
// @Produce      json
// @Param        wallet  path  string  true  "Wallet address"
// @Success      200  {array}  OwnedTeam
// @Failure      400  {object} responses.ErrorResponse
// @Failure      500  {object} responses.ErrorResponse "Failed to fetch NFTs"
// @Router       /api/teams/{wallet} [get]
func (tc *TeamController) GetOwnedTeams(c *gin.Context) {
	wallet := c.Param("wallet")
	if wallet == "" {
		responses.BadRequest(c, "Wallet address is required")
		return
	}

	owned, err := tc.nft.OwnedTeams(c.Request.Context(), wallet)
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to fetch NFTs", err))
		return
	}

	teams := make([]OwnedTeam, 0, len(owned))
	for _, t := range owned {
		name := t.Title
		if name == "" {
			name = metadata.FallbackName(t.ID)
		}
		teams = append(teams, OwnedTeam{ID: t.ID, Name: name, Slug: slug.Make(name)})
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeamDetails godoc
// @Summary      Team details
// @Description  Team name and the bracket and stage it last played in.
// @Tags         Teams
// @Produce      json
// @Security     BearerAuth
// @Param        teamId  path  int  true  "Team id"
// @Success      200  {object} TeamDetails
// @Failure      400  {object} responses.ErrorResponse "Invalid team ID"
// @Failure      500  {object} responses.ErrorResponse "Failed to fetch team details"
// @Router       /api/teams/details/{teamId} [get]
func (tc *TeamController) GetTeamDetails(c *gin.Context) {
	teamID, err := scoring.ParseTeamID(c.Param("teamId"))
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	ctx := c.Request.Context()
	latest, err := tc.brackets.LatestForTeam(ctx, teamID)
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to fetch team details", err))
		return
	}

	details := TeamDetails{TeamID: teamID, Name: metadata.FallbackName(teamID)}
	md, err := tc.metadata.Team(ctx, teamID)
	switch {
	case err == nil && md.Name != "":
		details.Name = md.Name
	case err != nil && !errors.Is(err, metadata.ErrNotFound):
		responses.Fail(c, apperr.Upstream("Failed to fetch team details", err))
		return
	case err != nil:
		logger.From(c).Debug("team has no metadata", zap.Stringer("team", teamID))
	}

	if latest != nil {
		details.CurrentBracket = &latest.BracketID
		details.CurrentStage = &latest.Stage
	}
	c.JSON(http.StatusOK, details)
}
