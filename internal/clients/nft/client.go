// Package nft looks up which teams of the configured NFT collection a wallet holds.
package nft

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
	"golang.org/x/time/rate"
)

// maxPages bounds pageKey pagination for a single wallet.
const maxPages = 50

// Team is one owned token of the collection.
type Team struct {
	ID    scoring.TeamID
	Title string
}

// Lookup is what handlers need from the ownership API.
type Lookup interface {
	OwnedTeams(ctx context.Context, wallet string) ([]Team, error)
}

type Client struct {
	HTTP     *http.Client
	BaseURL  string
	APIKey   string
	Contract string
	limiter  *rate.Limiter
}

// NewClient builds an ownership client. rps <= 0 disables rate limiting.
func NewClient(baseURL, apiKey, contract string, rps int, timeout time.Duration) *Client {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &Client{
		HTTP:     &http.Client{Timeout: timeout},
		BaseURL:  strings.TrimRight(baseURL, "/"),
		APIKey:   apiKey,
		Contract: contract,
		limiter:  rate.NewLimiter(limit, max(rps, 1)),
	}
}

type ownedNFT struct {
	ID struct {
		TokenID string `json:"tokenId"`
	} `json:"id"`
	Title string `json:"title"`
}

type getNFTsResponse struct {
	OwnedNfts []ownedNFT `json:"ownedNfts"`
	PageKey   string     `json:"pageKey"`
}

// OwnedTeams returns every token of the collection held by wallet, following pageKey.
func (c *Client) OwnedTeams(ctx context.Context, wallet string) ([]Team, error) {
	var teams []Team
	pageKey := ""
	for page := 0; page < maxPages; page++ {
		resp, err := c.fetchPage(ctx, wallet, pageKey)
		if err != nil {
			return nil, err
		}
		for _, n := range resp.OwnedNfts {
			id, err := scoring.ParseTokenID(n.ID.TokenID)
			if err != nil {
				return nil, fmt.Errorf("nft: token id %q: %w", n.ID.TokenID, err)
			}
			teams = append(teams, Team{ID: id, Title: n.Title})
		}
		if resp.PageKey == "" {
			return teams, nil
		}
		pageKey = resp.PageKey
	}
	return nil, fmt.Errorf("nft: more than %d pages for wallet %s", maxPages, wallet)
}

func (c *Client) fetchPage(ctx context.Context, wallet, pageKey string) (*getNFTsResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("owner", wallet)
	q.Add("contractAddresses[]", c.Contract)
	if pageKey != "" {
		q.Set("pageKey", pageKey)
	}
	endpoint := fmt.Sprintf("%s/%s/getNFTs/?%s", c.BaseURL, url.PathEscape(c.APIKey), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nft: getNFTs: %w", err)
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("nft: getNFTs failed: %d body=%s", res.StatusCode, string(body))
	}

	var out getNFTsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("nft: decode getNFTs: %w", err)
	}
	return &out, nil
}

// TeamIDs projects teams onto their ids.
func TeamIDs(teams []Team) []scoring.TeamID {
	ids := make([]scoring.TeamID, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
	}
	return ids
}

// HasAny reports whether wallet holds at least one token of the collection.
func HasAny(ctx context.Context, l Lookup, wallet string) (bool, error) {
	teams, err := l.OwnedTeams(ctx, wallet)
	if err != nil {
		return false, err
	}
	return len(teams) > 0, nil
}

// OwnsTeam reports whether wallet holds the token for team.
func OwnsTeam(ctx context.Context, l Lookup, wallet string, team scoring.TeamID) (bool, error) {
	teams, err := l.OwnedTeams(ctx, wallet)
	if err != nil {
		return false, err
	}
	for _, t := range teams {
		if t.ID == team {
			return true, nil
		}
	}
	return false, nil
}
