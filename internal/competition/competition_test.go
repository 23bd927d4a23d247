package competition

import (
	"context"
	"net/http"
	"testing"

	"github.com/DhavalSuthar-24/nfteams-api/internal/bracket"
	"github.com/DhavalSuthar-24/nfteams-api/internal/models"
	"github.com/DhavalSuthar-24/nfteams-api/internal/testutil"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const wallet = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

type env struct {
	db       *gorm.DB
	brackets *testutil.Brackets
	svc      *Service
}

func setup(t *testing.T) *env {
	t.Helper()
	db := testutil.NewDB(t)
	br := testutil.NewBrackets()
	svc := NewService(NewCompetitionRepository(db), bracket.NewBracketRepository(db),
		testutil.Owners{wallet: {5, 7}}, br, nil)
	return &env{db: db, brackets: br, svc: svc}
}

func (e *env) create(t *testing.T, v interface{}) {
	t.Helper()
	require.NoError(t, e.db.Create(v).Error)
}

func TestEnter(t *testing.T) {
	e := setup(t)
	e.create(t, &models.BettingRound{ID: 3, EntryFee: "0.05", ContractAddress: "0xFEE", Status: models.RoundPending})

	text, err := e.svc.Enter(context.Background(), wallet, 5)
	require.NoError(t, err)
	assert.Equal(t, "Entry pending for Team 5 in Competition 3\nPlease send 0.05 ETH to 0xFEE\nYour entry will be confirmed once payment is received", text)

	var entries []models.CompEntry
	require.NoError(t, e.db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(3), entries[0].CompID)
	assert.Equal(t, scoring.TeamID(5), entries[0].TeamID)
	assert.Equal(t, "0.05", entries[0].FeeAmount)
	assert.Equal(t, models.EntryPending, entries[0].Status)

	text, err = e.svc.Enter(context.Background(), wallet, 7)
	require.NoError(t, err)
	assert.Equal(t, "You have already entered this competition", text)
}

func TestEnter_Rejections(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	text, err := e.svc.Enter(ctx, wallet, 5)
	require.NoError(t, err)
	assert.Equal(t, "No open competition available for entry", text)

	e.create(t, &models.BettingRound{ID: 1, EntryFee: "0.1", ContractAddress: "0xFEE", Status: models.RoundActive})
	text, err = e.svc.Enter(ctx, wallet, 5)
	require.NoError(t, err)
	assert.Equal(t, "No open competition available for entry", text)

	e.create(t, &models.BettingRound{ID: 2, EntryFee: "0.1", ContractAddress: "0xFEE", Status: models.RoundPending})
	text, err = e.svc.Enter(ctx, wallet, 9)
	require.NoError(t, err)
	assert.Equal(t, "You don't own Team 9. Please enter a team that you own.", text)

	var count int64
	require.NoError(t, e.db.Model(&models.CompEntry{}).Count(&count).Error)
	assert.Zero(t, count)
}

func seedActive(t *testing.T, e *env) {
	e.create(t, &models.BettingRound{ID: 4, EntryFee: "0.1", ContractAddress: "0xFEE", Status: models.RoundActive})
	e.create(t, &[]models.CompEntry{
		{ID: 1, CompID: 4, TeamID: 5, WalletAddress: "a", Status: models.EntryConfirmed},
		{ID: 2, CompID: 4, TeamID: 7, WalletAddress: "b", Status: models.EntryConfirmed},
		{ID: 3, CompID: 4, TeamID: 8, WalletAddress: "c", Status: models.EntryPending},
		{ID: 4, CompID: 4, TeamID: 11, WalletAddress: "d", Status: models.EntryConfirmed},
	})
	e.create(t, &[]models.TeamBracket{
		{ID: 1, BracketID: 40, TournamentID: 2, Stage: 1, TeamID: 5},
		{ID: 2, BracketID: 41, TournamentID: 2, Stage: 2, TeamID: 5},
		{ID: 3, BracketID: 42, TournamentID: 2, Stage: 2, TeamID: 7},
	})
}

func TestUpdateScores(t *testing.T) {
	e := setup(t)
	seedActive(t, e)
	e.brackets.Add(t, 41, `{"tips":[{"team_id":5,"result":"4.5"},{"team_id":5,"result":"8"}]}`)
	e.brackets.Add(t, 42, `{"tips":[{"team_id":"7","result":"20.25"},{"team_id":5,"result":"1"}]}`)

	text, err := e.svc.UpdateScores(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Competition 4 Leaderboard:\n1. Team 7: 20.25 points\n2. Team 5: 12.50 points", text)
	assert.NotContains(t, e.brackets.Requested, int64(40))

	var entries []models.CompEntry
	require.NoError(t, e.db.Order("id").Find(&entries).Error)
	assert.Equal(t, 12.5, entries[0].CurrentScore)
	assert.Equal(t, 20.25, entries[1].CurrentScore)
	assert.Zero(t, entries[2].CurrentScore)
	assert.Zero(t, entries[3].CurrentScore)
}

func TestUpdateScores_FetchFailureWritesNothing(t *testing.T) {
	e := setup(t)
	seedActive(t, e)
	e.brackets.Add(t, 41, `{"tips":[{"team_id":5,"result":"4.5"}]}`)

	_, err := e.svc.UpdateScores(context.Background())
	require.Error(t, err)

	var entry models.CompEntry
	require.NoError(t, e.db.First(&entry, 1).Error)
	assert.Zero(t, entry.CurrentScore)
}

func TestUpdateScores_NothingToDo(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	text, err := e.svc.UpdateScores(ctx)
	require.NoError(t, err)
	assert.Equal(t, "No active competition found", text)

	e.create(t, &models.BettingRound{ID: 4, EntryFee: "0.1", ContractAddress: "0xFEE", Status: models.RoundActive})
	text, err = e.svc.UpdateScores(ctx)
	require.NoError(t, err)
	assert.Equal(t, "No scores to update - either comp has not started or it has finished", text)
}

func TestLeaderboardText_TiesShareRank(t *testing.T) {
	ranked := scoring.Rank([]scoring.TeamTotal{{TeamID: 9, Total: 3}, {TeamID: 2, Total: 3}, {TeamID: 4, Total: 1}})
	assert.Equal(t, "Competition 1 Leaderboard:\n1. Team 2: 3.00 points\n1. Team 9: 3.00 points\n2. Team 4: 1.00 points",
		LeaderboardText(1, ranked))
}

func TestCompetitionRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	e := setup(t)
	e.create(t, &models.BettingRound{ID: 3, EntryFee: "0.05", ContractAddress: "0xFEE", Status: models.RoundPending})

	r := gin.New()
	RegisterCompetitionRoutes(r.Group("/api"), e.svc, testutil.Config())
	auth := testutil.Bearer(t, 1, wallet)

	w := testutil.Do(r, http.MethodPost, "/api/competition/enter", "", `{"teamId":5}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.Do(r, http.MethodPost, "/api/competition/enter", auth, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"text":"Team ID is required","type":"text"}`, w.Body.String())

	w = testutil.Do(r, http.MethodPost, "/api/competition/enter", auth, `{"teamId":"7"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `Entry pending for Team 7 in Competition 3`)
	assert.Contains(t, w.Body.String(), `"type":"text"`)

	w = testutil.Do(r, http.MethodPost, "/api/competition/update-scores", auth, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"text":"No active competition found","type":"text"}`, w.Body.String())
}
