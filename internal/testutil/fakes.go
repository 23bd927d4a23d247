package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/gameapi"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/metadata"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients/nft"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
	"github.com/stretchr/testify/require"
)

// Owners is an in-memory nft.Lookup keyed by wallet.
type Owners map[string][]scoring.TeamID

func (o Owners) OwnedTeams(_ context.Context, wallet string) ([]nft.Team, error) {
	ids := o[wallet]
	teams := make([]nft.Team, 0, len(ids))
	for _, id := range ids {
		teams = append(teams, nft.Team{ID: id, Title: fmt.Sprintf("Title %s", id)})
	}
	return teams, nil
}

// Brackets is an in-memory gameapi.Fetcher. It records which brackets were requested.
type Brackets struct {
	mu        sync.Mutex
	ByID      map[int64]*gameapi.Bracket
	Requested []int64
}

func NewBrackets() *Brackets {
	return &Brackets{ByID: make(map[int64]*gameapi.Bracket)}
}

func (b *Brackets) Bracket(_ context.Context, id int64) (*gameapi.Bracket, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Requested = append(b.Requested, id)
	br, ok := b.ByID[id]
	if !ok {
		return nil, fmt.Errorf("bracket %d: not found", id)
	}
	return br, nil
}

// Add decodes raw as the "bracket" object of a bracket response.
func (b *Brackets) Add(t *testing.T, id int64, raw string) {
	t.Helper()
	var br gameapi.Bracket
	require.NoError(t, json.Unmarshal([]byte(raw), &br))
	b.ByID[id] = &br
}

// Docs is an in-memory metadata.Source.
type Docs map[scoring.TeamID]metadata.Metadata

func (d Docs) Team(_ context.Context, id scoring.TeamID) (*metadata.Metadata, error) {
	md, ok := d[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", metadata.ErrNotFound, id)
	}
	return &md, nil
}
