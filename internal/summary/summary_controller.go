package summary

import (
	"context"
	"net/http"

	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/nft"
	"github.com/DhavalSuthar-24/nfteams-api/internal/common"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/apperr"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/responses"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
	"github.com/gin-gonic/gin"
)

type SummaryController struct {
	repo    SummaryRepository
	nft     nft.Lookup
	seasons []string
}

func NewSummaryController(repo SummaryRepository, lookup nft.Lookup, seasons []string) *SummaryController {
	return &SummaryController{repo: repo, nft: lookup, seasons: seasons}
}

// GetWalletSummary godoc
// @Summary      Win rate by sport
// @Description  Games, wins, losses and win rate per sport for the wallet's teams, merged over all seasons.
// @Tags         Summary
// @Produce      json
// @Security     BearerAuth
// @Param        wallet  path  string  true  "Wallet address"
// @Success      200  {object} responses.SuccessResponse{data=[]scoring.SportSummary}
// @Failure      404  {object} responses.ErrorResponse "No NFTs found"
// @Failure      500  {object} responses.ErrorResponse "Failed to fetch summary data"
// @Router       /api/summary/{wallet} [get]
func (sc *SummaryController) GetWalletSummary(c *gin.Context) {
	teamIDs, ok := common.OwnedTeamIDs(c, sc.nft, c.Param("wallet"))
	if !ok {
		return
	}

	datasets, err := common.PerSeason(c.Request.Context(), sc.seasons,
		func(ctx context.Context, season string) ([]scoring.SportRow, error) {
			return sc.repo.SportTallies(ctx, season, teamIDs)
		})
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to fetch summary data", err))
		return
	}
	responses.SendSuccess(c, http.StatusOK, scoring.MergeSports(datasets...))
}
