package bracket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/nfteams-api/internal/clients"
	"github.com/DhavalSuthar-24/nfteams-api/internal/models"
	"github.com/DhavalSuthar-24/nfteams-api/internal/testutil"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const wallet = "alice.eth"

type env struct {
	router   *gin.Engine
	db       *gorm.DB
	brackets *testutil.Brackets
	auth     string
}

func setup(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t)
	br := testutil.NewBrackets()

	cl := &clients.Clients{
		NFT:      testutil.Owners{wallet: {5, 7}},
		Games:    br,
		Metadata: testutil.Docs{5: {Name: "Sharks"}, 7: {Name: "Jets"}},
	}
	r := gin.New()
	RegisterBracketRoutes(r.Group("/api"), db, testutil.Config(), cl)

	return &env{router: r, db: db, brackets: br, auth: testutil.Bearer(t, 1, wallet)}
}

func (e *env) seed(t *testing.T, rows ...models.TeamBracket) {
	t.Helper()
	require.NoError(t, e.db.Create(&rows).Error)
}

func (e *env) do(method, path, body string) *httptest.ResponseRecorder {
	return testutil.Do(e.router, method, path, e.auth, body)
}

func TestGetCurrentBrackets(t *testing.T) {
	e := setup(t)
	e.seed(t,
		models.TeamBracket{ID: 1, BracketID: 10, TournamentID: 1, Stage: 1, TeamID: 5},
		models.TeamBracket{ID: 2, BracketID: 20, TournamentID: 2, Stage: 1, TeamID: 5},
		models.TeamBracket{ID: 3, BracketID: 21, TournamentID: 2, Stage: 1, TeamID: 7},
		models.TeamBracket{ID: 4, BracketID: 22, TournamentID: 2, Stage: 1, TeamID: 99},
	)

	w := e.do(http.MethodGet, "/api/brackets/current/"+wallet, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp CurrentBracketsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Brackets, 2)
	assert.Equal(t, int64(20), resp.Brackets[0].BracketID)
	assert.Equal(t, int64(21), resp.Brackets[1].BracketID)
}

func TestGetCurrentBrackets_NoNFTs(t *testing.T) {
	e := setup(t)

	w := e.do(http.MethodGet, "/api/brackets/current/nobody.eth", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No NFTs found")
}

func TestBracketRoutes_RequireSession(t *testing.T) {
	e := setup(t)
	e.auth = ""

	w := e.do(http.MethodGet, "/api/brackets/final", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

const finalsBracket = `{
  "round": {"start": "2025-03-01T00:00:00Z"},
  "teams": [],
  "tips": [
    {"team_id": 5, "bracket_game_id": 1, "result": "3.5"},
    {"team_id": "7", "bracket_game_id": 1, "result": "10"},
    {"team_id": 8, "bracket_game_id": 1, "result": "1.25"},
    {"team_id": 8, "bracket_game_id": 2, "result": "1.25"},
    {"team_id": 5, "bracket_game_id": 2, "result": null}
  ],
  "games": [
    {"id": 1, "bracket_id": 20, "bet_type": 1,
     "game": {"type": 1, "team_1": "Lakers", "team_2": "Celtics", "line": "-3.5", "total": null,
              "start": "2025-03-02T01:30:00Z", "team_1_score": 101, "team_2_score": 99}},
    {"id": 2, "bracket_id": 20, "bet_type": 2,
     "game": {"type": 3, "team_1": "Arsenal", "team_2": "Spurs", "line": null, "total": "2.5",
              "start": "2025-03-03T15:00:00Z", "team_1_score": null, "team_2_score": null}}
  ],
  "winner": null
}`

func TestGetFinalBracket(t *testing.T) {
	e := setup(t)
	e.seed(t,
		models.TeamBracket{ID: 1, BracketID: 10, TournamentID: 1, Stage: models.FinalStage, TeamID: 5},
		models.TeamBracket{ID: 2, BracketID: 20, TournamentID: 2, Stage: models.FinalStage, TeamID: 5},
		models.TeamBracket{ID: 3, BracketID: 20, TournamentID: 2, Stage: models.FinalStage, TeamID: 7},
		models.TeamBracket{ID: 4, BracketID: 20, TournamentID: 2, Stage: models.FinalStage, TeamID: 8},
		models.TeamBracket{ID: 5, BracketID: 30, TournamentID: 3, Stage: 2, TeamID: 5},
	)
	e.brackets.Add(t, 20, finalsBracket)

	w := e.do(http.MethodGet, "/api/brackets/final", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success bool         `json:"success"`
		Data    FinalBracket `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(2), resp.Data.TournamentID)
	assert.Equal(t, int64(20), resp.Data.BracketID)
	assert.Equal(t, []string{
		"Jets: 10.00 points",
		"Sharks: 3.50 points",
		"Team 8: 2.50 points",
	}, resp.Data.Teams)

	require.Len(t, resp.Data.Games, 2)
	assert.Equal(t, "Lakers vs Celtics", resp.Data.Games[0].Matchup)
	assert.Equal(t, "02/03/2025, 01:30 UTC", resp.Data.Games[0].Start)
	assert.Equal(t, "101 - 99", resp.Data.Games[0].Result)
	assert.Equal(t, "Not Scored", resp.Data.Games[1].Result)
	assert.Equal(t, "2.5", resp.Data.Games[1].Total.String())

	// alias route serves the same payload
	alias := e.do(http.MethodGet, "/api/brackets/finals/latest", "")
	assert.JSONEq(t, w.Body.String(), alias.Body.String())

	w = e.do(http.MethodGet, "/api/brackets/finals/latest-id", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"tournament_id":2,"bracket_id":20}`, w.Body.String())
}

func TestGetFinalBracket_NoneYet(t *testing.T) {
	e := setup(t)

	assert.Equal(t, http.StatusNotFound, e.do(http.MethodGet, "/api/brackets/final", "").Code)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodGet, "/api/brackets/finals/latest-id", "").Code)
}

func TestGetFinalBracket_UpstreamFailure(t *testing.T) {
	e := setup(t)
	e.seed(t, models.TeamBracket{ID: 1, BracketID: 404, TournamentID: 1, Stage: models.FinalStage, TeamID: 5})

	w := e.do(http.MethodGet, "/api/brackets/final", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch final round brackets","code":500}`, w.Body.String())
}

func seedLatestStage(t *testing.T, e *env) {
	e.seed(t,
		models.TeamBracket{ID: 1, BracketID: 30, TournamentID: 3, Stage: 1, TeamID: 5},
		models.TeamBracket{ID: 2, BracketID: 31, TournamentID: 3, Stage: 2, TeamID: 5},
		models.TeamBracket{ID: 3, BracketID: 32, TournamentID: 3, Stage: 2, TeamID: 7},
		models.TeamBracket{ID: 4, BracketID: 33, TournamentID: 3, Stage: 2, TeamID: 99},
	)
	e.brackets.Add(t, 31, `{"tips":[{"team_id":5,"result":"4"},{"team_id":12,"result":"1"}],
		"games":[{"id":1,"bet_type":3,"game":{"type":5,"team_1":"Swans","team_2":"Cats","team_1_score":80,"team_2_score":70}}],
		"winner":5}`)
	e.brackets.Add(t, 32, `{"tips":[{"team_id":7,"result":"2"},{"team_id":12,"result":"6.5"}],
		"games":[{"id":2,"bet_type":1,"game":{"type":42,"team_1":"A","team_2":"B","line":"+1.5","team_1_score":null,"team_2_score":null}}],
		"winner":"12"}`)
}

func TestGetLastRoundWinners(t *testing.T) {
	e := setup(t)
	seedLatestStage(t, e)

	w := e.do(http.MethodGet, "/api/brackets/winners/"+wallet, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"winners":[5],"totalTeams":2,"losers":1,"lastStage":2}`, w.Body.String())
	assert.NotContains(t, e.brackets.Requested, int64(33))
}

func TestGetLastRoundWinners_IncompleteBrackets(t *testing.T) {
	e := setup(t)
	e.seed(t, models.TeamBracket{ID: 1, BracketID: 40, TournamentID: 4, Stage: 1, TeamID: 7})
	e.brackets.Add(t, 40, `{"tips":[],"games":[],"winner":null}`)

	w := e.do(http.MethodGet, "/api/brackets/winners/"+wallet, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"winners":[],"totalTeams":0,"losers":0,"lastStage":1}`, w.Body.String())
}

func TestGetTeamBrackets(t *testing.T) {
	e := setup(t)
	seedLatestStage(t, e)

	w := e.do(http.MethodPost, "/api/brackets/teams", `{"teamIds":[5,"7"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data []TeamBracketDetail `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)

	// ordered by bracket id descending
	seven, five := resp.Data[0], resp.Data[1]
	assert.Equal(t, scoring.TeamID(7), seven.TeamID)
	assert.Equal(t, 2.0, seven.CurrentScore)
	assert.Equal(t, 0, seven.GamesScored)
	assert.Equal(t, 1, seven.TotalGames)
	assert.Equal(t, []GameLine{{Sport: "Sport Type 42", Matchup: "A vs B", BetInfo: "Line: +1.5"}}, seven.Games)
	assert.Equal(t, []TeamScore{{TeamID: 12, Score: 6.5}, {TeamID: 7, Score: 2}}, seven.AllTeamScores)

	assert.Equal(t, scoring.TeamID(5), five.TeamID)
	assert.Equal(t, 4.0, five.CurrentScore)
	assert.Equal(t, 1, five.GamesScored)
	assert.Equal(t, "Aussie Rules", five.Games[0].Sport)
	assert.Equal(t, "1X2", five.Games[0].BetInfo)
}

func TestGetTeamBrackets_Validation(t *testing.T) {
	e := setup(t)

	for _, body := range []string{`{}`, `{"teamIds":[]}`, `{"teamIds":"5"}`} {
		w := e.do(http.MethodPost, "/api/brackets/teams", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), "Valid team IDs array is required")
	}

	w := e.do(http.MethodPost, "/api/brackets/teams", `{"teamIds":[1,2]}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No brackets found for teams 1, 2")
}
