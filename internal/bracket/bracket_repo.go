package bracket

import (
	"context"
	"errors"

	"github.com/DhavalSuthar-24/nfteams-api/internal/models"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
	"gorm.io/gorm"
)

// BracketRepository reads team_brackets.
type BracketRepository interface {
	// LatestTournament returns the teams' brackets in the newest tournament overall.
	LatestTournament(ctx context.Context, teamIDs []scoring.TeamID) ([]models.TeamBracket, error)
	// CurrentStage returns the teams' brackets in the newest tournament at its highest stage.
	CurrentStage(ctx context.Context, teamIDs []scoring.TeamID) ([]models.TeamBracket, error)
	// LatestStageForTeams is like CurrentStage, but the tournament is the newest
	// one any of the given teams played in. Ordered by bracket id descending.
	LatestStageForTeams(ctx context.Context, teamIDs []scoring.TeamID) ([]models.TeamBracket, error)
	// LatestFinals returns every row of the newest stage 5 bracket.
	LatestFinals(ctx context.Context) ([]models.TeamBracket, error)
	// LatestForTeam returns the team's most recent bracket, or nil if it never played.
	LatestForTeam(ctx context.Context, teamID scoring.TeamID) (*models.TeamBracket, error)
}

type bracketRepository struct {
	db *gorm.DB
}

func NewBracketRepository(db *gorm.DB) BracketRepository {
	return &bracketRepository{db: db}
}

func (r *bracketRepository) LatestTournament(ctx context.Context, teamIDs []scoring.TeamID) ([]models.TeamBracket, error) {
	var rows []models.TeamBracket
	if len(teamIDs) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).
		Where("team_id IN ?", teamIDs).
		Where("tournament_id = (SELECT MAX(tournament_id) FROM team_brackets)").
		Order("id").
		Find(&rows).Error
	return rows, err
}

func (r *bracketRepository) CurrentStage(ctx context.Context, teamIDs []scoring.TeamID) ([]models.TeamBracket, error) {
	var rows []models.TeamBracket
	if len(teamIDs) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).Raw(`
		WITH current_tournament AS (
			SELECT MAX(tournament_id) AS tournament_id FROM team_brackets
		),
		max_stage AS (
			SELECT MAX(stage) AS stage
			FROM team_brackets
			WHERE tournament_id = (SELECT tournament_id FROM current_tournament)
		)
		SELECT id, bracket_id, tournament_id, stage, team_id
		FROM team_brackets
		WHERE team_id IN ?
		AND tournament_id = (SELECT tournament_id FROM current_tournament)
		AND stage = (SELECT stage FROM max_stage)
		ORDER BY id`, teamIDs).Scan(&rows).Error
	return rows, err
}

func (r *bracketRepository) LatestStageForTeams(ctx context.Context, teamIDs []scoring.TeamID) ([]models.TeamBracket, error) {
	var rows []models.TeamBracket
	if len(teamIDs) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).Raw(`
		WITH latest_tournament AS (
			SELECT MAX(tournament_id) AS tournament_id
			FROM team_brackets
			WHERE team_id IN ?
		),
		latest_stage AS (
			SELECT MAX(stage) AS stage
			FROM team_brackets
			WHERE tournament_id = (SELECT tournament_id FROM latest_tournament)
		)
		SELECT id, bracket_id, tournament_id, stage, team_id
		FROM team_brackets
		WHERE team_id IN ?
		AND tournament_id = (SELECT tournament_id FROM latest_tournament)
		AND stage = (SELECT stage FROM latest_stage)
		ORDER BY bracket_id DESC, id`, teamIDs, teamIDs).Scan(&rows).Error
	return rows, err
}

func (r *bracketRepository) LatestFinals(ctx context.Context) ([]models.TeamBracket, error) {
	var rows []models.TeamBracket
	err := r.db.WithContext(ctx).Raw(`
		SELECT tb.id, tb.bracket_id, tb.tournament_id, tb.stage, tb.team_id
		FROM team_brackets tb
		JOIN (
			SELECT tournament_id
			FROM team_brackets
			WHERE stage = ?
			ORDER BY tournament_id DESC
			LIMIT 1
		) latest ON tb.tournament_id = latest.tournament_id
		WHERE tb.stage = ?
		ORDER BY tb.id`, models.FinalStage, models.FinalStage).Scan(&rows).Error
	return rows, err
}

func (r *bracketRepository) LatestForTeam(ctx context.Context, teamID scoring.TeamID) (*models.TeamBracket, error) {
	var row models.TeamBracket
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("tournament_id DESC").Order("stage DESC").Order("bracket_id DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
