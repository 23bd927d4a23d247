// internal/models/base.go
package models

import (
	"fmt"
	"time"

	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
)

// Bracket stages run 1..5; the final is stage 5.
const FinalStage = 5

// Competition and entry statuses.
const (
	RoundPending   = "PENDING"
	RoundActive    = "ACTIVE"
	EntryPending   = "PENDING"
	EntryConfirmed = "CONFIRMED"
)

// User is a wallet holder. One row per normalized wallet address.
type User struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	WalletAddress string          `gorm:"uniqueIndex;not null" json:"wallet_address"`
	TeamID        *scoring.TeamID `json:"team_id"`
	TeamImageURL  *string         `json:"team_image_url"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (User) TableName() string { return "app_users" }

type FavoriteTeam struct {
	ID            uint           `gorm:"primaryKey"`
	WalletAddress string         `gorm:"uniqueIndex;not null"`
	TeamID        scoring.TeamID `gorm:"not null"`
	CreatedAt     time.Time
}

func (FavoriteTeam) TableName() string { return "favorite_teams" }

// TeamBracket places a team into a bracket for one stage of a tournament.
type TeamBracket struct {
	ID           int64          `gorm:"primaryKey" json:"id"`
	BracketID    int64          `gorm:"index" json:"bracket_id"`
	TournamentID int64          `gorm:"index" json:"tournament_id"`
	Stage        int            `json:"stage"`
	TeamID       scoring.TeamID `gorm:"index" json:"team_id"`
}

func (TeamBracket) TableName() string { return "team_brackets" }

type BettingRound struct {
	ID              int64  `gorm:"primaryKey"`
	EntryFee        string `gorm:"not null"`
	ContractAddress string `gorm:"not null"`
	Status          string `gorm:"index;not null"`
}

func (BettingRound) TableName() string { return "betting_rounds" }

// CompEntry is a wallet's paid entry of one team into a betting round.
type CompEntry struct {
	ID            int64          `gorm:"primaryKey"`
	CompID        int64          `gorm:"index;not null"`
	TeamID        scoring.TeamID `gorm:"not null"`
	WalletAddress string         `gorm:"not null"`
	FeeAmount     string
	Status        string `gorm:"not null"`
	CurrentScore  float64
}

func (CompEntry) TableName() string { return "comp_entries" }

// LeaderboardRow lives in a per-season table, see LeaderboardTable.
type LeaderboardRow struct {
	TeamID      scoring.TeamID `gorm:"column:team_id"`
	Rank        int            `gorm:"column:rank"`
	TotalPoints float64        `gorm:"column:total_points"`
}

// SeasonResult is one graded game of a team, stored per season, see ResultsTable.
type SeasonResult struct {
	TeamID   scoring.TeamID `gorm:"column:team_id;index"`
	Round    int            `gorm:"column:round"`
	SportC   string         `gorm:"column:sport_c"`
	CWinLoss string         `gorm:"column:c_winloss"`
}

// LeaderboardTable returns the leaderboard table for a four digit season, e.g. leaderboard24.
func LeaderboardTable(season string) string {
	return fmt.Sprintf("leaderboard%s", season[len(season)-2:])
}

// ResultsTable returns the per-game results table for a four digit season, e.g. nfteams2024.
func ResultsTable(season string) string {
	return "nfteams" + season
}

// Owned lists the tables this service may migrate itself.
func Owned() []interface{} {
	return []interface{}{
		&User{}, &FavoriteTeam{}, &TeamBracket{}, &BettingRound{}, &CompEntry{},
	}
}
