package bracket

import (
	"fmt"
	"strconv"
	"time"

	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/gameapi"
	"github.com/DhavalSuthar-24/nfteams-api/internal/models"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
)

type CurrentBracketsResponse struct {
	Brackets []models.TeamBracket `json:"brackets"`
}

type FinalGame struct {
	ID      int64         `json:"id"`
	Matchup string        `json:"matchup" example:"Lakers vs Celtics"`
	Start   string        `json:"start" example:"02/03/2025, 01:30 UTC"`
	BetType int           `json:"betType"`
	Line    gameapi.Value `json:"line" swaggertype:"string"`
	Total   gameapi.Value `json:"total" swaggertype:"string"`
	Result  string        `json:"result" example:"101 - 99"`
}

type FinalBracket struct {
	TournamentID int64       `json:"tournament_id"`
	BracketID    int64       `json:"bracket_id"`
	Games        []FinalGame `json:"games"`
	Teams        []string    `json:"teams" example:"Sydney Sharks: 12.50 points"`
}

type FinalsIDResponse struct {
	TournamentID int64 `json:"tournament_id"`
	BracketID    int64 `json:"bracket_id"`
}

type WinnersResponse struct {
	Winners    []scoring.TeamID `json:"winners" swaggertype:"array,integer"`
	TotalTeams int              `json:"totalTeams"`
	Losers     int              `json:"losers"`
	LastStage  *int             `json:"lastStage"`
}

type TeamBracketsRequest struct {
	TeamIDs []scoring.TeamID `json:"teamIds" binding:"required,min=1" swaggertype:"array,integer"`
}

type GameLine struct {
	Sport      string   `json:"sport" example:"Basketball"`
	Matchup    string   `json:"matchup" example:"Lakers vs Celtics"`
	BetInfo    string   `json:"betInfo" example:"Line: -3.5"`
	Team1Score *float64 `json:"team1Score"`
	Team2Score *float64 `json:"team2Score"`
}

type TeamScore struct {
	TeamID scoring.TeamID `json:"teamId" swaggertype:"integer"`
	Score  float64        `json:"score"`
}

type TeamBracketDetail struct {
	TeamID        scoring.TeamID `json:"teamId" swaggertype:"integer"`
	CurrentScore  float64        `json:"currentScore"`
	GamesScored   int            `json:"gamesScored"`
	TotalGames    int            `json:"totalGames"`
	Games         []GameLine     `json:"games"`
	AllTeamScores []TeamScore    `json:"allTeamScores"`
}

var sportTypes = map[int]string{
	1:  "Basketball",
	2:  "American Football",
	3:  "Soccer",
	4:  "Tennis",
	5:  "Aussie Rules",
	6:  "Ice Hockey",
	7:  "Rugby League",
	8:  "Rugby Union",
	11: "Baseball",
	14: "Rugby League",
}

// SportName maps a game type code to its sport.
func SportName(gameType int) string {
	if name, ok := sportTypes[gameType]; ok {
		return name
	}
	return fmt.Sprintf("Sport Type %d", gameType)
}

// BetInfo describes the market a bracket game is tipped on.
func BetInfo(g gameapi.BracketGame) string {
	switch g.BetType {
	case gameapi.BetLine:
		if g.Game.Line.Valid() && g.Game.Line.String() != "" {
			return "Line: " + g.Game.Line.String()
		}
		return "Line: N/A"
	case gameapi.BetTotal:
		if g.Game.Total.Valid() && g.Game.Total.String() != "" {
			return "Total: " + g.Game.Total.String()
		}
		return "Total: N/A"
	case gameapi.Bet1X2:
		return "1X2"
	}
	return ""
}

func Matchup(g gameapi.Game) string {
	return g.Team1 + " vs " + g.Team2
}

// ResultText renders "a - b", or "Not Scored" until both scores are in.
func ResultText(g gameapi.Game) string {
	if !g.Scored() {
		return "Not Scored"
	}
	return scoreText(g.Team1Score) + " - " + scoreText(g.Team2Score)
}

var startLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
}

// FormatStart renders a game start as "dd/mm/yyyy, HH:MM UTC". Unparsable
// values are returned unchanged.
func FormatStart(start string) string {
	for _, layout := range startLayouts {
		if t, err := time.Parse(layout, start); err == nil {
			return t.UTC().Format("02/01/2006, 15:04") + " UTC"
		}
	}
	return start
}

func scoreText(v gameapi.Value) string {
	if f := v.Float(); f != nil {
		return formatNumber(*f)
	}
	return v.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// StandingLine renders one finals standing, e.g. "Sydney Sharks: 12.50 points".
func StandingLine(name string, score float64) string {
	return fmt.Sprintf("%s: %.2f points", name, score)
}
