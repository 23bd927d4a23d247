package bracket

import (
	"encoding/json"
	"testing"

	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/gameapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func game(t *testing.T, raw string) gameapi.BracketGame {
	t.Helper()
	var g gameapi.BracketGame
	require.NoError(t, json.Unmarshal([]byte(raw), &g))
	return g
}

func TestFormatStart(t *testing.T) {
	assert.Equal(t, "02/03/2025, 01:30 UTC", FormatStart("2025-03-02T01:30:00Z"))
	assert.Equal(t, "01/03/2025, 15:30 UTC", FormatStart("2025-03-02T01:30:00+10:00"))
	assert.Equal(t, "02/03/2025, 01:30 UTC", FormatStart("2025-03-02 01:30:00"))
	assert.Equal(t, "soon", FormatStart("soon"))
}

func TestResultText(t *testing.T) {
	g := game(t, `{"game":{"team_1":"A","team_2":"B","team_1_score":101,"team_2_score":99.5}}`)
	assert.Equal(t, "101 - 99.5", ResultText(g.Game))
	assert.Equal(t, "A vs B", Matchup(g.Game))

	g = game(t, `{"game":{"team_1":"A","team_2":"B","team_1_score":"80","team_2_score":"70.0"}}`)
	assert.Equal(t, "80 - 70", ResultText(g.Game))

	g = game(t, `{"game":{"team_1":"A","team_2":"B","team_1_score":3,"team_2_score":null}}`)
	assert.Equal(t, "Not Scored", ResultText(g.Game))
}

func TestBetInfo(t *testing.T) {
	assert.Equal(t, "Line: -3.5", BetInfo(game(t, `{"bet_type":1,"game":{"line":"-3.5"}}`)))
	assert.Equal(t, "Line: N/A", BetInfo(game(t, `{"bet_type":1,"game":{"line":null}}`)))
	assert.Equal(t, "Total: 210.5", BetInfo(game(t, `{"bet_type":2,"game":{"total":210.5}}`)))
	assert.Equal(t, "Total: N/A", BetInfo(game(t, `{"bet_type":2,"game":{}}`)))
	assert.Equal(t, "1X2", BetInfo(game(t, `{"bet_type":3,"game":{}}`)))
	assert.Equal(t, "", BetInfo(game(t, `{"bet_type":9,"game":{}}`)))
}

func TestSportName(t *testing.T) {
	assert.Equal(t, "Basketball", SportName(1))
	assert.Equal(t, "Rugby League", SportName(14))
	assert.Equal(t, "Sport Type 9", SportName(9))
	assert.Equal(t, "Sport Type 99", SportName(99))
}

func TestStandingLine(t *testing.T) {
	assert.Equal(t, "Sharks: 12.50 points", StandingLine("Sharks", 12.5))
	assert.Equal(t, "Team 4: 0.00 points", StandingLine("Team 4", 0))
}
