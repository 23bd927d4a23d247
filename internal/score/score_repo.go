package score

import (
	"context"

	"github.com/DhavalSuthar-24/nfteams-api/internal/models"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
	"gorm.io/gorm"
)

// ScoreRepository reads the per-season leaderboard and results tables.
type ScoreRepository interface {
	// TopLeaderboardRow returns the best ranked row of a season, limited to
	// teamIDs when given. Nil means the season has no matching row.
	TopLeaderboardRow(ctx context.Context, season string, teamIDs []scoring.TeamID) (*models.LeaderboardRow, error)
	// RoundTallies counts games and wins per round for the teams in one season.
	RoundTallies(ctx context.Context, season string, teamIDs []scoring.TeamID) ([]scoring.RoundRow, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) TopLeaderboardRow(ctx context.Context, season string, teamIDs []scoring.TeamID) (*models.LeaderboardRow, error) {
	q := r.db.WithContext(ctx).
		Table(models.LeaderboardTable(season)).
		Select("team_id, rank, total_points")
	if len(teamIDs) > 0 {
		q = q.Where("team_id IN ?", teamIDs)
	}

	var rows []models.LeaderboardRow
	if err := q.Order("rank").Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *scoreRepository) RoundTallies(ctx context.Context, season string, teamIDs []scoring.TeamID) ([]scoring.RoundRow, error) {
	var rows []scoring.RoundRow
	err := r.db.WithContext(ctx).
		Table(models.ResultsTable(season)).
		Select(`round, COUNT(*) AS total_games,
			SUM(CASE WHEN c_winloss = 'W' THEN 1 ELSE 0 END) AS wins`).
		Where("team_id IN ?", teamIDs).
		Group("round").
		Order("round").
		Scan(&rows).Error
	return rows, err
}
