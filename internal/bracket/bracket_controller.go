package bracket

import (
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/gameapi"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/metadata"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/nft"
	"github.com/DhavalSuthar-24/nfteams-api/internal/common"
	"github.com/DhavalSuthar-24/nfteams-api/internal/models"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/apperr"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/logger"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/responses"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BracketController struct {
	repo     BracketRepository
	nft      nft.Lookup
	games    gameapi.Fetcher
	metadata metadata.Source
}

func NewBracketController(repo BracketRepository, lookup nft.Lookup, games gameapi.Fetcher, md metadata.Source) *BracketController {
	return &BracketController{repo: repo, nft: lookup, games: games, metadata: md}
}

// @Summary      Current brackets for a wallet
// @Description  Brackets of the wallet's teams in the latest tournament.
// @Tags         Brackets
// @Produce      json
// @Security     BearerAuth
// @Param        wallet  path  string  true  "Wallet address"
// @Success      200  {object} CurrentBracketsResponse
// @Failure      404  {object} responses.ErrorResponse "No NFTs found"
// @Failure      500  {object} responses.ErrorResponse
// @Router       /api/brackets/current/{wallet} [get]
func (bc *BracketController) GetCurrentBrackets(c *gin.Context) {
	teamIDs, ok := common.OwnedTeamIDs(c, bc.nft, c.Param("wallet"))
	if !ok {
		return
	}

	rows, err := bc.repo.LatestTournament(c.Request.Context(), teamIDs)
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to fetch current brackets", err))
		return
	}
	c.JSON(http.StatusOK, CurrentBracketsResponse{Brackets: rows})
}

// @Summary      Latest finals bracket
// @Description  Games of the newest stage 5 bracket and its teams sorted by score.
// @Tags         Brackets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} responses.SuccessResponse{data=FinalBracket}
// @Failure      404  {object} responses.ErrorResponse "No finals bracket found"
// @Failure      500  {object} responses.ErrorResponse
// @Router       /api/brackets/final [get]
// @Router       /api/brackets/finals/latest [get]
func (bc *BracketController) GetFinalBracket(c *gin.Context) {
	ctx := c.Request.Context()
	rows, err := bc.repo.LatestFinals(ctx)
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to fetch final round brackets", err))
		return
	}
	if len(rows) == 0 {
		responses.Fail(c, apperr.NotFound("No finals bracket found"))
		return
	}

	detail, err := bc.games.Bracket(ctx, rows[0].BracketID)
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to fetch final round brackets", err))
		return
	}

	teamIDs := distinctTeams(rows)
	names := metadata.Names(ctx, bc.metadata, teamIDs, logger.From(c))

	totals := make([]scoring.TeamTotal, 0, len(teamIDs))
	for _, id := range teamIDs {
		totals = append(totals, scoring.TeamTotal{TeamID: id, Total: detail.Score(id)})
	}
	standings := make([]string, 0, len(totals))
	for _, r := range scoring.Rank(totals) {
		standings = append(standings, StandingLine(names[r.TeamID], r.Total))
	}

	games := make([]FinalGame, 0, len(detail.Games))
	for _, g := range detail.Games {
		games = append(games, FinalGame{
			ID:      g.ID,
			Matchup: Matchup(g.Game),
			Start:   FormatStart(g.Game.Start),
			BetType: g.BetType,
			Line:    g.Game.Line,
			Total:   g.Game.Total,
			Result:  ResultText(g.Game),
		})
	}

	responses.SendSuccess(c, http.StatusOK, FinalBracket{
		TournamentID: rows[0].TournamentID,
		BracketID:    rows[0].BracketID,
		Games:        games,
		Teams:        standings,
	})
}

// @Summary      Latest finals bracket id
// @Tags         Brackets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} FinalsIDResponse
// @Failure      404  {object} responses.ErrorResponse "No finals bracket found"
// @Failure      500  {object} responses.ErrorResponse
// @Router       /api/brackets/finals/latest-id [get]
func (bc *BracketController) GetLatestFinalsID(c *gin.Context) {
	rows, err := bc.repo.LatestFinals(c.Request.Context())
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to fetch latest finals bracket", err))
		return
	}
	if len(rows) == 0 {
		responses.Fail(c, apperr.NotFound("No finals bracket found"))
		return
	}
	c.JSON(http.StatusOK, FinalsIDResponse{TournamentID: rows[0].TournamentID, BracketID: rows[0].BracketID})
}

// @Summary      Last round winners for a wallet
// @Description  Counts, over the wallet's brackets in the latest stage, how many completed brackets its teams won.
// @Tags         Brackets
// @Produce      json
// @Security     BearerAuth
// @Param        wallet  path  string  true  "Wallet address"
// @Success      200  {object} WinnersResponse
// @Failure      404  {object} responses.ErrorResponse
// @Failure      500  {object} responses.ErrorResponse
// @Router       /api/brackets/winners/{wallet} [get]
func (bc *BracketController) GetLastRoundWinners(c *gin.Context) {
	teamIDs, ok := common.OwnedTeamIDs(c, bc.nft, c.Param("wallet"))
	if !ok {
		return
	}

	ctx := c.Request.Context()
	rows, err := bc.repo.LatestStageForTeams(ctx, teamIDs)
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to fetch last round winners", err))
		return
	}
	if len(rows) == 0 {
		responses.Fail(c, apperr.NotFound("No brackets found for the latest round"))
		return
	}

	details, err := gameapi.FetchAll(ctx, bc.games, bracketIDs(rows))
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to fetch last round winners", err))
		return
	}

	resp := WinnersResponse{Winners: []scoring.TeamID{}, LastStage: &rows[0].Stage}
	for _, row := range rows {
		b := details[row.BracketID]
		if !b.Completed() {
			continue
		}
		resp.TotalTeams++
		if *b.Winner == row.TeamID {
			resp.Winners = append(resp.Winners, row.TeamID)
		}
	}
	resp.Losers = resp.TotalTeams - len(resp.Winners)

	logger.From(c).Debug("last round winners",
		zap.Int("brackets", len(rows)), zap.Int("completed", resp.TotalTeams), zap.Int("won", len(resp.Winners)))
	c.JSON(http.StatusOK, resp)
}

// @Summary      Bracket detail for a batch of teams
// @Description  For each team's bracket in the latest stage: its score, game list and every team's score in that bracket.
// @Tags         Brackets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  TeamBracketsRequest  true  "Team ids"
// @Success      200  {object} responses.SuccessResponse{data=[]TeamBracketDetail}
// @Failure      400  {object} responses.ErrorResponse "Valid team IDs array is required"
// @Failure      404  {object} responses.ErrorResponse
// @Failure      500  {object} responses.ErrorResponse
// @Router       /api/brackets/teams [post]
func (bc *BracketController) GetTeamBrackets(c *gin.Context) {
	var req TeamBracketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, apperr.InvalidInput("Valid team IDs array is required").Wrap(err))
		return
	}

	ctx := c.Request.Context()
	rows, err := bc.repo.LatestStageForTeams(ctx, req.TeamIDs)
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to fetch team brackets", err))
		return
	}
	if len(rows) == 0 {
		responses.Fail(c, apperr.NotFound("No brackets found for teams "+joinIDs(req.TeamIDs)))
		return
	}

	details, err := gameapi.FetchAll(ctx, bc.games, bracketIDs(rows))
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to fetch team brackets", err))
		return
	}

	out := make([]TeamBracketDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamBracketDetail(row.TeamID, details[row.BracketID]))
	}
	responses.SendSuccess(c, http.StatusOK, out)
}

func teamBracketDetail(team scoring.TeamID, b *gameapi.Bracket) TeamBracketDetail {
	games := make([]GameLine, 0, len(b.Games))
	for _, g := range b.Games {
		games = append(games, GameLine{
			Sport:      SportName(g.Game.Type),
			Matchup:    Matchup(g.Game),
			BetInfo:    BetInfo(g),
			Team1Score: g.Game.Team1Score.Float(),
			Team2Score: g.Game.Team2Score.Float(),
		})
	}

	ranked := scoring.Rank(scoring.BracketTotals(b.Tips))
	all := make([]TeamScore, 0, len(ranked))
	for _, r := range ranked {
		all = append(all, TeamScore{TeamID: r.TeamID, Score: r.Total})
	}

	return TeamBracketDetail{
		TeamID:        team,
		CurrentScore:  b.Score(team),
		GamesScored:   b.ScoredGames(),
		TotalGames:    len(b.Games),
		Games:         games,
		AllTeamScores: all,
	}
}

func distinctTeams(rows []models.TeamBracket) []scoring.TeamID {
	seen := make(map[scoring.TeamID]bool, len(rows))
	ids := make([]scoring.TeamID, 0, len(rows))
	for _, r := range rows {
		if !seen[r.TeamID] {
			seen[r.TeamID] = true
			ids = append(ids, r.TeamID)
		}
	}
	return ids
}

func bracketIDs(rows []models.TeamBracket) []int64 {
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.BracketID)
	}
	return ids
}

func joinIDs(ids []scoring.TeamID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ", ")
}
