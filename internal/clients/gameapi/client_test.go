package gameapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bracketJSON = `{
  "bracket": {
    "round": {"start": "2025-03-01T00:00:00Z", "end": "2025-03-08T00:00:00Z", "cutoff": "2025-03-01T00:00:00Z"},
    "teams": [{"team_id": 5, "score": "3.5"}, {"team_id": "7", "score": 1}],
    "tips": [
      {"team_id": 5, "bracket_game_id": 1, "tip": "A", "dd": 0, "plusmin": 0, "result": "3.5"},
      {"team_id": "5", "bracket_game_id": 2, "tip": "B", "dd": 1, "plusmin": 0, "result": null},
      {"team_id": 7, "bracket_game_id": 1, "tip": "B", "dd": 0, "plusmin": 0, "result": "1.0"}
    ],
    "games": [
      {"id": 1, "bracket_id": 42, "game_id": 900, "bet_type": 1,
       "game": {"id": 900, "type": 1, "league": 3, "team_1": "Lakers", "team_2": "Celtics",
                "total": null, "line": "-3.5", "start": "2025-03-02T01:30:00Z",
                "winner": null, "team_1_score": 101, "team_2_score": 99}},
      {"id": 2, "bracket_id": 42, "game_id": 901, "bet_type": 2,
       "game": {"id": 901, "type": 3, "league": 1, "team_1": "Arsenal", "team_2": "Spurs",
                "total": 2.5, "line": null, "start": "2025-03-03T15:00:00Z",
                "winner": null, "team_1_score": null, "team_2_score": null}}
    ],
    "tie_breakers": [{"team_id": 5, "tip": "180"}],
    "winner": "5"
  }
}`

func TestBracket_Decodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/brackets/42", r.URL.Path)
		w.Write([]byte(bracketJSON))
	}))
	defer srv.Close()

	b, err := NewClient(srv.URL+"/", time.Second).Bracket(context.Background(), 42)
	require.NoError(t, err)

	require.Len(t, b.Games, 2)
	assert.Equal(t, 1, b.ScoredGames())
	assert.Equal(t, "-3.5", b.Games[0].Game.Line.String())
	assert.False(t, b.Games[0].Game.Total.Valid())
	assert.Equal(t, "2.5", b.Games[1].Game.Total.String())

	assert.Equal(t, 3.5, b.Score(5))
	assert.Equal(t, 1.0, b.Score(7))
	assert.Equal(t, 0.0, b.Score(9))

	require.NotNil(t, b.Winner)
	assert.Equal(t, scoring.TeamID(5), *b.Winner)
	assert.True(t, b.Completed())
}

func TestBracket_DecodesLooseShapes(t *testing.T) {
	raw := `{
	  "tips": [
	    {"team_id": null, "bracket_game_id": 1, "result": "1"},
	    {"team_id": 5.0, "bracket_game_id": 1, "result": "2.5"}
	  ],
	  "games": [
	    {"id": 1, "bet_type": 3, "game": {"winner": "3", "team_1_score": "101", "team_2_score": 99}},
	    {"id": 2, "bet_type": 3, "game": {"winner": 2, "team_1_score": "", "team_2_score": null}}
	  ],
	  "winner": 5.0
	}`
	var b Bracket
	require.NoError(t, json.Unmarshal([]byte(raw), &b))

	assert.Equal(t, 2.5, b.Score(5))
	require.NotNil(t, b.Winner)
	assert.Equal(t, scoring.TeamID(5), *b.Winner)

	g := b.Games[0].Game
	assert.Equal(t, "3", g.Winner.String())
	require.NotNil(t, g.Team1Score.Float())
	assert.Equal(t, 101.0, *g.Team1Score.Float())
	assert.Equal(t, 99.0, *g.Team2Score.Float())
	assert.True(t, g.Scored())

	assert.Nil(t, b.Games[1].Game.Team1Score.Float())
	assert.False(t, b.Games[1].Game.Scored())
	assert.Equal(t, 1, b.ScoredGames())
}

func TestBracket_Malformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"not found"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Bracket(context.Background(), 1)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestBracket_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Bracket(context.Background(), 1)
	assert.Error(t, err)
}

func TestValue_RoundTrip(t *testing.T) {
	var v struct {
		A Value `json:"a"`
		B Value `json:"b"`
		C Value `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"x","b":1.5,"c":null}`), &v))
	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":"1.5","c":null}`, string(out))
}

type countingFetcher struct {
	calls atomic.Int32
	fail  int64
}

func (f *countingFetcher) Bracket(_ context.Context, id int64) (*Bracket, error) {
	f.calls.Add(1)
	if id == f.fail {
		return nil, assert.AnError
	}
	return &Bracket{Round: Round{Start: strings.Repeat("x", int(id))}}, nil
}

func TestFetchAll_DedupesIDs(t *testing.T) {
	f := &countingFetcher{}
	got, err := FetchAll(context.Background(), f, []int64{1, 2, 2, 3, 1})
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, int32(3), f.calls.Load())
	assert.Equal(t, "xx", got[2].Round.Start)
}

func TestFetchAll_PropagatesFailure(t *testing.T) {
	f := &countingFetcher{fail: 2}
	_, err := FetchAll(context.Background(), f, []int64{1, 2, 3})
	assert.ErrorIs(t, err, assert.AnError)
}
