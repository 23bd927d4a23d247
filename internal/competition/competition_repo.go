package competition

import (
	"context"
	"errors"

	"github.com/DhavalSuthar-24/nfteams-api/internal/models"
	"gorm.io/gorm"
)

// CompetitionRepository reads betting_rounds and manages comp_entries.
type CompetitionRepository interface {
	// RoundByStatus returns the lowest id round with status, or nil if there is none.
	RoundByStatus(ctx context.Context, status string) (*models.BettingRound, error)
	HasEntry(ctx context.Context, compID int64, wallet string) (bool, error)
	CreateEntry(ctx context.Context, entry *models.CompEntry) error
	ConfirmedEntries(ctx context.Context, compID int64) ([]models.CompEntry, error)
	// SaveScores writes current_score for every entry id in one transaction.
	SaveScores(ctx context.Context, scores map[int64]float64) error
}

type competitionRepository struct {
	db *gorm.DB
}

func NewCompetitionRepository(db *gorm.DB) CompetitionRepository {
	return &competitionRepository{db: db}
}

func (r *competitionRepository) RoundByStatus(ctx context.Context, status string) (*models.BettingRound, error) {
	var round models.BettingRound
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("id").First(&round).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &round, nil
}

func (r *competitionRepository) HasEntry(ctx context.Context, compID int64, wallet string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CompEntry{}).
		Where("comp_id = ? AND wallet_address = ?", compID, wallet).
		Count(&count).Error
	return count > 0, err
}

func (r *competitionRepository) CreateEntry(ctx context.Context, entry *models.CompEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *competitionRepository) ConfirmedEntries(ctx context.Context, compID int64) ([]models.CompEntry, error) {
	var entries []models.CompEntry
	err := r.db.WithContext(ctx).
		Where("comp_id = ? AND status = ?", compID, models.EntryConfirmed).
		Order("id").
		Find(&entries).Error
	return entries, err
}

func (r *competitionRepository) SaveScores(ctx context.Context, scores map[int64]float64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, score := range scores {
			if err := tx.Model(&models.CompEntry{}).Where("id = ?", id).
				Update("current_score", score).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
