// Package gameapi reads bracket details from the bracket scoring service.
package gameapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrMalformed is returned when a bracket response has no bracket body.
var ErrMalformed = errors.New("gameapi: invalid bracket details structure")

// fanOutLimit caps concurrent bracket requests per call to FetchAll.
const fanOutLimit = 8

type Fetcher interface {
	Bracket(ctx context.Context, bracketID int64) (*Bracket, error)
}

type Client struct {
	HTTP    *http.Client
	BaseURL string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Bracket fetches GET {base}/brackets/{id}.
func (c *Client) Bracket(ctx context.Context, bracketID int64) (*Bracket, error) {
	endpoint := fmt.Sprintf("%s/brackets/%d", c.BaseURL, bracketID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gameapi: bracket %d: %w", bracketID, err)
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("gameapi: bracket %d failed: %d body=%s", bracketID, res.StatusCode, string(body))
	}

	var detail Detail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("gameapi: decode bracket %d: %w", bracketID, err)
	}
	if detail.Bracket == nil {
		return nil, fmt.Errorf("%w (bracket %d)", ErrMalformed, bracketID)
	}
	return detail.Bracket, nil
}

// FetchAll fetches every distinct bracket concurrently. The first failure
// cancels the rest and is returned.
func FetchAll(ctx context.Context, f Fetcher, bracketIDs []int64) (map[int64]*Bracket, error) {
	out := make(map[int64]*Bracket, len(bracketIDs))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOutLimit)
	seen := make(map[int64]bool, len(bracketIDs))
	for _, id := range bracketIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		id := id
		g.Go(func() error {
			b, err := f.Bracket(ctx, id)
			if err != nil {
				return err
			}
			mu.Lock()
			out[id] = b
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
