package gameapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
)

type Detail struct {
	Bracket *Bracket `json:"bracket"`
}

type Bracket struct {
	Round       Round           `json:"round"`
	Teams       []BracketTeam   `json:"teams"`
	Tips        []scoring.Tip   `json:"tips"`
	Games       []BracketGame   `json:"games"`
	TieBreakers []TieBreaker    `json:"tie_breakers"`
	Winner      *scoring.TeamID `json:"winner"`
}

type Round struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Cutoff string `json:"cutoff"`
}

type BracketTeam struct {
	TeamID scoring.TeamID `json:"team_id"`
	Score  scoring.Result `json:"score"`
}

type TieBreaker struct {
	TeamID scoring.TeamID `json:"team_id"`
	Tip    Value          `json:"tip"`
}

// Bet types of a bracket game.
const (
	BetLine  = 1
	BetTotal = 2
	Bet1X2   = 3
)

type BracketGame struct {
	ID        int64 `json:"id"`
	BracketID int64 `json:"bracket_id"`
	GameID    int64 `json:"game_id"`
	BetType   int   `json:"bet_type"`
	Game      Game  `json:"game"`
}

type Game struct {
	ID         int64  `json:"id"`
	Type       int    `json:"type"`
	League     int    `json:"league"`
	Team1      string `json:"team_1"`
	Team2      string `json:"team_2"`
	Total      Value  `json:"total"`
	Line       Value  `json:"line"`
	Start      string `json:"start"`
	Winner     Value  `json:"winner"`
	Team1Score Value  `json:"team_1_score"`
	Team2Score Value  `json:"team_2_score"`
}

// Scored reports whether both sides of the game have a final score.
func (g Game) Scored() bool {
	return g.Team1Score.Valid() && g.Team2Score.Valid()
}

// ScoredGames counts the games with final scores.
func (b *Bracket) ScoredGames() int {
	n := 0
	for _, g := range b.Games {
		if g.Game.Scored() {
			n++
		}
	}
	return n
}

// Score is team's aggregated tip total in this bracket.
func (b *Bracket) Score(team scoring.TeamID) float64 {
	return scoring.Aggregate(b.Tips, team)
}

// Completed reports whether the bracket has a winner.
func (b *Bracket) Completed() bool {
	return b.Winner != nil
}

// Value is a nullable scalar that arrives as either a JSON string or number.
type Value struct {
	text  string
	valid bool
}

func (v Value) Valid() bool { return v.valid }

func (v Value) String() string { return v.text }

// Float parses the value as a number. Null and non-numeric text give nil.
func (v Value) Float() *float64 {
	if !v.valid {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
	if err != nil {
		return nil
	}
	return &f
}

func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*v = Value{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Value{text: s, valid: true}
		return nil
	}
	*v = Value{text: string(b), valid: true}
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.text)
}
