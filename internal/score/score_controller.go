package score

import (
	"context"
	"net/http"

	"github.com/DhavalSuthar-24/nfteams-api/internal/bracket"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/gameapi"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/nft"
	"github.com/DhavalSuthar-24/nfteams-api/internal/common"
	"github.com/DhavalSuthar-24/nfteams-api/internal/models"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/apperr"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/responses"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
	"github.com/gin-gonic/gin"
)

type ScoreController struct {
	repo     ScoreRepository
	brackets bracket.BracketRepository
	nft      nft.Lookup
	games    gameapi.Fetcher
	seasons  []string
}

func NewScoreController(repo ScoreRepository, brackets bracket.BracketRepository, lookup nft.Lookup, games gameapi.Fetcher, seasons []string) *ScoreController {
	return &ScoreController{repo: repo, brackets: brackets, nft: lookup, games: games, seasons: seasons}
}

// GetCurrentScores godoc
// @Summary      Live scores for a wallet
// @Description  Score of each owned team in the current stage of the latest tournament.
// @Tags         Scores
// @Produce      json
// @Security     BearerAuth
// @Param        wallet  path  string  true  "Wallet address"
// @Success      200  {object} CurrentScoresResponse
// @Failure      404  {object} responses.ErrorResponse "No NFTs found"
// @Failure      500  {object} responses.ErrorResponse "Failed to fetch current scores"
// @Router       /api/scores/current/{wallet} [get]
func (sc *ScoreController) GetCurrentScores(c *gin.Context) {
	teamIDs, ok := common.OwnedTeamIDs(c, sc.nft, c.Param("wallet"))
	if !ok {
		return
	}

	ctx := c.Request.Context()
	rows, err := sc.brackets.CurrentStage(ctx, teamIDs)
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to fetch current scores", err))
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusOK, CurrentScoresResponse{
			Scores:  []LiveScore{},
			Message: "No current brackets found for these teams",
			TeamIDs: teamIDs,
		})
		return
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.BracketID)
	}
	details, err := gameapi.FetchAll(ctx, sc.games, ids)
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to fetch current scores", err))
		return
	}

	scores := make([]LiveScore, 0, len(rows))
	for _, row := range rows {
		b := details[row.BracketID]
		scores = append(scores, LiveScore{
			TeamID:       row.TeamID,
			BracketID:    row.BracketID,
			TournamentID: row.TournamentID,
			Stage:        row.Stage,
			Score:        b.Score(row.TeamID),
			GamesScored:  b.ScoredGames(),
			TotalGames:   len(b.Games),
		})
	}
	c.JSON(http.StatusOK, CurrentScoresResponse{Scores: scores, CurrentStage: &rows[0].Stage})
}

// GetLeaderboard godoc
// @Summary      Season leaderboard
// @Description  Per season, the best placed team of the wallet, or the overall leader when no wallet is given. Seasons without a row are left out.
// @Tags         Scores
// @Produce      json
// @Security     BearerAuth
// @Param        wallet  query  string  false  "Wallet address"
// @Success      200  {object} LeaderboardResponse
// @Failure      404  {object} responses.ErrorResponse "No NFTs found"
// @Failure      500  {object} responses.ErrorResponse "Failed to fetch leaderboard"
// @Router       /api/scores/leaderboard [get]
func (sc *ScoreController) GetLeaderboard(c *gin.Context) {
	var teamIDs []scoring.TeamID
	if wallet := c.Query("wallet"); wallet != "" {
		var ok bool
		if teamIDs, ok = common.OwnedTeamIDs(c, sc.nft, wallet); !ok {
			return
		}
	}

	rows, err := common.PerSeason(c.Request.Context(), sc.seasons,
		func(ctx context.Context, season string) (*models.LeaderboardRow, error) {
			return sc.repo.TopLeaderboardRow(ctx, season, teamIDs)
		})
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to fetch leaderboard", err))
		return
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		if row == nil {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			Year:        sc.seasons[i],
			Rank:        row.Rank,
			TeamID:      row.TeamID,
			TotalPoints: row.TotalPoints,
		})
	}
	c.JSON(http.StatusOK, LeaderboardResponse{Leaderboard: entries})
}

// GetRoundStats godoc
// @Summary      Win rate by round
// @Description  Games and win percentage per round for the wallet's teams, merged over all seasons.
// @Tags         Scores
// @Produce      json
// @Security     BearerAuth
// @Param        wallet  path  string  true  "Wallet address"
// @Success      200  {object} RoundsResponse
// @Failure      404  {object} responses.ErrorResponse "No NFTs found"
// @Failure      500  {object} responses.ErrorResponse "Failed to fetch round statistics"
// @Router       /api/scores/rounds/{wallet} [get]
func (sc *ScoreController) GetRoundStats(c *gin.Context) {
	teamIDs, ok := common.OwnedTeamIDs(c, sc.nft, c.Param("wallet"))
	if !ok {
		return
	}

	datasets, err := common.PerSeason(c.Request.Context(), sc.seasons,
		func(ctx context.Context, season string) ([]scoring.RoundRow, error) {
			return sc.repo.RoundTallies(ctx, season, teamIDs)
		})
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to fetch round statistics", err))
		return
	}

	merged := scoring.MergeRounds(datasets...)
	rounds := make([]RoundStat, 0, len(merged))
	for _, r := range merged {
		rounds = append(rounds, RoundStat{Round: r.Round, TotalGames: r.TotalGames, WinPercentage: r.WinPercentage})
	}
	c.JSON(http.StatusOK, RoundsResponse{Rounds: rounds, TeamIDs: teamIDs})
}

// GetHistory godoc
// @Summary      Historical performance
// @Tags         Scores
// @Produce      json
// @Security     BearerAuth
// @Failure      501  {object} responses.ErrorResponse "Not implemented yet"
// @Router       /api/scores/history [get]
func (sc *ScoreController) GetHistory(c *gin.Context) {
	responses.Fail(c, apperr.ErrNotImplemented)
}
