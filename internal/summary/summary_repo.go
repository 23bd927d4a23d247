package summary

import (
	"context"

	"github.com/DhavalSuthar-24/nfteams-api/internal/models"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
	"gorm.io/gorm"
)

type SummaryRepository interface {
	// SportTallies counts games, wins and losses per sport for the teams in one season.
	SportTallies(ctx context.Context, season string, teamIDs []scoring.TeamID) ([]scoring.SportRow, error)
}

type summaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) SummaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) SportTallies(ctx context.Context, season string, teamIDs []scoring.TeamID) ([]scoring.SportRow, error) {
	var rows []scoring.SportRow
	err := r.db.WithContext(ctx).
		Table(models.ResultsTable(season)).
		Select(`sport_c, COUNT(*) AS total,
			SUM(CASE WHEN c_winloss = 'W' THEN 1 ELSE 0 END) AS wins,
			SUM(CASE WHEN c_winloss = 'L' THEN 1 ELSE 0 END) AS losses`).
		Where("team_id IN ?", teamIDs).
		Group("sport_c").
		Order("sport_c").
		Scan(&rows).Error
	return rows, err
}
