package score

import (
	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
)

type LiveScore struct {
	TeamID       scoring.TeamID `json:"team_id" swaggertype:"integer"`
	BracketID    int64          `json:"bracket_id"`
	TournamentID int64          `json:"tournament_id"`
	Stage        int            `json:"stage"`
	Score        float64        `json:"score"`
	GamesScored  int            `json:"games_scored"`
	TotalGames   int            `json:"total_games"`
}

// CurrentScoresResponse carries TeamIDs only when the teams have no current bracket.
type CurrentScoresResponse struct {
	Scores       []LiveScore      `json:"scores"`
	Message      string           `json:"message,omitempty"`
	CurrentStage *int             `json:"currentStage,omitempty"`
	TeamIDs      []scoring.TeamID `json:"teamIds,omitempty" swaggertype:"array,integer"`
}

type LeaderboardEntry struct {
	Year        string         `json:"year" example:"2024"`
	Rank        int            `json:"rank"`
	TeamID      scoring.TeamID `json:"team_id" swaggertype:"integer"`
	TotalPoints float64        `json:"total_points"`
}

type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

type RoundStat struct {
	Round         int    `json:"round"`
	TotalGames    int64  `json:"total_games"`
	WinPercentage string `json:"win_percentage" example:"62.5"`
}

type RoundsResponse struct {
	Rounds  []RoundStat      `json:"rounds"`
	TeamIDs []scoring.TeamID `json:"teamIds" swaggertype:"array,integer"`
}
