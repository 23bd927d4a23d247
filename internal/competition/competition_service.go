package competition

import (
	"context"
	"fmt"
	"strings"

	"github.com/DhavalSuthar-24/nfteams-api/internal/bracket"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/gameapi"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/nft"
	"github.com/DhavalSuthar-24/nfteams-api/internal/models"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	msgNoOpenCompetition   = "No open competition available for entry"
	msgAlreadyEntered      = "You have already entered this competition"
	msgNoActiveCompetition = "No active competition found"
	msgNothingToUpdate     = "No scores to update - either comp has not started or it has finished"
)

// Service runs competition entry and score refreshes. Both return the chat
// text shown to the player; an error means the operation itself failed.
type Service struct {
	repo     CompetitionRepository
	brackets bracket.BracketRepository
	nft      nft.Lookup
	games    gameapi.Fetcher
	log      *zap.Logger
}

func NewService(repo CompetitionRepository, brackets bracket.BracketRepository, lookup nft.Lookup, games gameapi.Fetcher, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, brackets: brackets, nft: lookup, games: games, log: log}
}

// Enter creates a PENDING entry of team for wallet in the open competition.
func (s *Service) Enter(ctx context.Context, wallet string, team scoring.TeamID) (string, error) {
	round, err := s.repo.RoundByStatus(ctx, models.RoundPending)
	if err != nil {
		return "", fmt.Errorf("find open competition: %w", err)
	}
	if round == nil {
		return msgNoOpenCompetition, nil
	}

	entered, err := s.repo.HasEntry(ctx, round.ID, wallet)
	if err != nil {
		return "", fmt.Errorf("check existing entry: %w", err)
	}
	if entered {
		return msgAlreadyEntered, nil
	}

	owns, err := nft.OwnsTeam(ctx, s.nft, wallet, team)
	if err != nil {
		return "", fmt.Errorf("verify team ownership: %w", err)
	}
	if !owns {
		return fmt.Sprintf("You don't own Team %s. Please enter a team that you own.", team), nil
	}

	entry := &models.CompEntry{
		CompID:        round.ID,
		TeamID:        team,
		WalletAddress: wallet,
		FeeAmount:     round.EntryFee,
		Status:        models.EntryPending,
	}
	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return "", fmt.Errorf("create entry: %w", err)
	}
	s.log.Info("competition entry created",
		zap.Int64("comp_id", round.ID), zap.Int64("entry_id", entry.ID), zap.Stringer("team", team))

	return fmt.Sprintf("Entry pending for Team %s in Competition %d\nPlease send %s ETH to %s\nYour entry will be confirmed once payment is received",
		team, round.ID, round.EntryFee, round.ContractAddress), nil
}

type entryScore struct {
	entryID int64
	team    scoring.TeamID
	score   float64
	found   bool
}

// UpdateScores recomputes current_score of every confirmed entry in the active
// competition from its team's latest bracket. Nothing is written unless every
// bracket was fetched.
func (s *Service) UpdateScores(ctx context.Context) (string, error) {
	round, err := s.repo.RoundByStatus(ctx, models.RoundActive)
	if err != nil {
		return "", fmt.Errorf("find active competition: %w", err)
	}
	if round == nil {
		return msgNoActiveCompetition, nil
	}

	entries, err := s.repo.ConfirmedEntries(ctx, round.ID)
	if err != nil {
		return "", fmt.Errorf("load confirmed entries: %w", err)
	}
	if len(entries) == 0 {
		return msgNothingToUpdate, nil
	}

	results := make([]entryScore, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			results[i] = entryScore{entryID: entry.ID, team: entry.TeamID}
			latest, err := s.brackets.LatestForTeam(gctx, entry.TeamID)
			if err != nil {
				return fmt.Errorf("latest bracket of team %s: %w", entry.TeamID, err)
			}
			if latest == nil {
				s.log.Debug("no bracket for competition team", zap.Stringer("team", entry.TeamID))
				return nil
			}
			b, err := s.games.Bracket(gctx, latest.BracketID)
			if err != nil {
				return err
			}
			results[i].score = b.Score(entry.TeamID)
			results[i].found = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	scores := make(map[int64]float64, len(results))
	totals := make([]scoring.TeamTotal, 0, len(results))
	for _, r := range results {
		if !r.found {
			continue
		}
		scores[r.entryID] = r.score
		totals = append(totals, scoring.TeamTotal{TeamID: r.team, Total: r.score})
	}
	if err := s.repo.SaveScores(ctx, scores); err != nil {
		return "", fmt.Errorf("save scores: %w", err)
	}
	s.log.Info("competition scores updated", zap.Int64("comp_id", round.ID), zap.Int("entries", len(scores)))

	return LeaderboardText(round.ID, scoring.Rank(totals)), nil
}

// LeaderboardText renders a ranked competition as numbered chat lines.
func LeaderboardText(compID int64, ranked []scoring.RankedTeam) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Competition %d Leaderboard:", compID)
	for _, r := range ranked {
		fmt.Fprintf(&sb, "\n%d. Team %s: %.2f points", r.Rank, r.TeamID, r.Total)
	}
	return sb.String()
}
