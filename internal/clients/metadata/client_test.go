package metadata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const bucket = "nft-meta.nfteams.club"

func newBucket(t *testing.T, docs map[string]string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc, ok := docs[r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(context.Background(), Options{
		Bucket:   bucket,
		Region:   "ap-southeast-2",
		Endpoint: srv.URL,
		Timeout:  2 * time.Second,
	})
	require.NoError(t, err)
	return c
}

func TestTeam(t *testing.T) {
	c := newBucket(t, map[string]string{
		"/" + bucket + "/5": `{"name":"Sydney Sharks","image":"https://img/5.png","attributes":[]}`,
	})

	md, err := c.Team(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Sydney Sharks", md.Name)
	assert.Equal(t, "https://img/5.png", md.Image)

	_, err = c.Team(context.Background(), 6)
	assert.ErrorIs(t, err, ErrNotFound)
}

type flakySource map[scoring.TeamID]string

func (f flakySource) Team(_ context.Context, id scoring.TeamID) (*Metadata, error) {
	name, ok := f[id]
	if !ok {
		return nil, errors.New("unreachable")
	}
	return &Metadata{Name: name}, nil
}

func TestNames_FallsBackPerTeam(t *testing.T) {
	src := flakySource{1: "Alpha", 3: ""}
	names := Names(context.Background(), src, []scoring.TeamID{1, 2, 3, 1}, zap.NewNop())

	assert.Equal(t, map[scoring.TeamID]string{
		1: "Alpha",
		2: "Team 2",
		3: "Team 3",
	}, names)
}
