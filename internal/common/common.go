package common

import (
	"context"
	"fmt"

	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/nft"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/apperr"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/responses"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// ErrNoNFTsFound is returned by wallet scoped endpoints for wallets without teams.
var ErrNoNFTsFound = apperr.NotFound("No NFTs found")

// OwnedTeamIDs resolves the team ids held by wallet. When it returns false
// the error response has already been written.
func OwnedTeamIDs(c *gin.Context, lookup nft.Lookup, wallet string) ([]scoring.TeamID, bool) {
	if wallet == "" {
		responses.Fail(c, apperr.InvalidInput("Wallet address is required"))
		return nil, false
	}
	teams, err := lookup.OwnedTeams(c.Request.Context(), wallet)
	if err != nil {
		responses.Fail(c, apperr.Upstream("Failed to fetch NFTs", err))
		return nil, false
	}
	if len(teams) == 0 {
		responses.Fail(c, ErrNoNFTsFound)
		return nil, false
	}
	return nft.TeamIDs(teams), true
}

// PerSeason runs fn once per season concurrently and returns the results in
// season order. The first error cancels the remaining queries.
func PerSeason[T any](ctx context.Context, seasons []string, fn func(ctx context.Context, season string) (T, error)) ([]T, error) {
	out := make([]T, len(seasons))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, season := range seasons {
		i, season := i, season
		g.Go(func() error {
			v, err := fn(ctx, season)
			if err != nil {
				return fmt.Errorf("season %s: %w", season, err)
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
