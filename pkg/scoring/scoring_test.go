package scoring

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_Scenario(t *testing.T) {
	tips := []Tip{
		{TeamID: 5, Result: GradedResult("3.5")},
		{TeamID: 5, Result: Result{}},
		{TeamID: 7, Result: GradedResult("1.0")},
	}

	assert.Equal(t, 3.5, Aggregate(tips, 5))
	assert.Equal(t, 1.0, Aggregate(tips, 7))
	assert.Equal(t, 0.0, Aggregate(tips, 9))
}

func TestAggregate_UnparsableResultCountsAsZero(t *testing.T) {
	tips := []Tip{
		{TeamID: 1, Result: GradedResult("abc")},
		{TeamID: 1, Result: GradedResult(" 2.25 ")},
		{TeamID: 1, Result: GradedResult("")},
	}
	assert.Equal(t, 2.25, Aggregate(tips, 1))
}

func TestAggregate_DecimalSumIsExact(t *testing.T) {
	var tips []Tip
	for i := 0; i < 10; i++ {
		tips = append(tips, Tip{TeamID: 3, Result: GradedResult("0.1")})
	}
	assert.Equal(t, 1.0, Aggregate(tips, 3))
}

func TestAggregate_MatchesSumOfParsedResults(t *testing.T) {
	tips := []Tip{
		{TeamID: 2, Result: GradedResult("1.5")},
		{TeamID: 4, Result: GradedResult("-0.5")},
		{TeamID: 2, Result: GradedResult("2")},
		{TeamID: 2, Result: Result{}},
		{TeamID: 4, Result: GradedResult("3.25")},
	}

	for _, team := range []TeamID{2, 4, 6} {
		want := 0.0
		for _, tip := range tips {
			if tip.TeamID == team && tip.Result.Graded() {
				v, err := strconv.ParseFloat(tip.Result.raw, 64)
				require.NoError(t, err)
				want += v
			}
		}
		assert.InDelta(t, want, Aggregate(tips, team), 1e-9, "team %d", team)
	}
}

func TestTip_UnmarshalMixedEncodings(t *testing.T) {
	payload := `[
		{"team_id": 5, "result": "3.5"},
		{"team_id": "5", "result": null},
		{"team_id": 7, "result": 1.0},
		{"team_id": "7"}
	]`

	var tips []Tip
	require.NoError(t, json.Unmarshal([]byte(payload), &tips))
	require.Len(t, tips, 4)

	assert.Equal(t, TeamID(5), tips[1].TeamID)
	assert.False(t, tips[1].Result.Graded())
	assert.False(t, tips[3].Result.Graded())
	assert.Equal(t, 3.5, Aggregate(tips, 5))
	assert.Equal(t, 1.0, Aggregate(tips, 7))
}

func TestResult_MarshalRoundTrip(t *testing.T) {
	b, err := json.Marshal([]Result{GradedResult("2.5"), {}})
	require.NoError(t, err)
	assert.JSONEq(t, `["2.5", null]`, string(b))
}

func TestBracketTotals_FirstSeenOrder(t *testing.T) {
	tips := []Tip{
		{TeamID: 9, Result: GradedResult("1")},
		{TeamID: 3, Result: GradedResult("4")},
		{TeamID: 9, Result: GradedResult("2")},
	}

	totals := BracketTotals(tips)
	assert.Equal(t, []TeamTotal{{TeamID: 9, Total: 3}, {TeamID: 3, Total: 4}}, totals)
}

func TestParseTokenID(t *testing.T) {
	id, err := ParseTokenID("0x000000000000000000000000000000000000000000000000000000000000002a")
	require.NoError(t, err)
	assert.Equal(t, TeamID(42), id)

	id, err = ParseTokenID("ff")
	require.NoError(t, err)
	assert.Equal(t, TeamID(255), id)

	_, err = ParseTokenID("0x")
	assert.Error(t, err)
	_, err = ParseTokenID("0xzz")
	assert.Error(t, err)
}

func TestTeamID_UnmarshalLooseShapes(t *testing.T) {
	var v struct {
		A TeamID  `json:"a"`
		B TeamID  `json:"b"`
		C TeamID  `json:"c"`
		D TeamID  `json:"d"`
		E *TeamID `json:"e"`
	}
	v.C = 9
	require.NoError(t, json.Unmarshal([]byte(`{"a":5.0,"b":"7.00","c":null,"d":" 12 ","e":null}`), &v))
	assert.Equal(t, TeamID(5), v.A)
	assert.Equal(t, TeamID(7), v.B)
	assert.Equal(t, TeamID(9), v.C)
	assert.Equal(t, TeamID(12), v.D)
	assert.Nil(t, v.E)

	for _, bad := range []string{`5.5`, `-1`, `"abc"`, `true`} {
		var id TeamID
		assert.Error(t, json.Unmarshal([]byte(bad), &id), bad)
	}
}

func TestRank_SortsAndBreaksTiesByTeamID(t *testing.T) {
	ranked := Rank([]TeamTotal{
		{TeamID: 8, Total: 10},
		{TeamID: 2, Total: 12.5},
		{TeamID: 5, Total: 10},
		{TeamID: 1, Total: 3},
	})

	assert.Equal(t, []RankedTeam{
		{Rank: 1, TeamID: 2, Total: 12.5},
		{Rank: 2, TeamID: 5, Total: 10},
		{Rank: 2, TeamID: 8, Total: 10},
		{Rank: 3, TeamID: 1, Total: 3},
	}, ranked)
}

func TestRank_Idempotent(t *testing.T) {
	first := Rank([]TeamTotal{
		{TeamID: 4, Total: 1},
		{TeamID: 3, Total: 7},
		{TeamID: 9, Total: 7},
		{TeamID: 6, Total: 0},
	})
	second := Rank(totals(first))
	assert.Equal(t, first, second)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}

func TestMergeRounds_Scenario(t *testing.T) {
	summary := MergeRounds(
		[]RoundRow{{Round: 1, Total: 10, Wins: 6}},
		[]RoundRow{{Round: 1, Total: 5, Wins: 1}},
	)

	require.Len(t, summary, 1)
	assert.Equal(t, RoundSummary{Round: 1, TotalGames: 15, Wins: 7, WinPercentage: "46.7"}, summary[0])
}

func TestMergeRounds_AdditiveAndOrderIndependent(t *testing.T) {
	a := []RoundRow{{Round: 3, Total: 4, Wins: 1}, {Round: 1, Total: 2, Wins: 2}}
	b := []RoundRow{{Round: 2, Total: 8, Wins: 3}, {Round: 3, Total: 6, Wins: 5}}
	c := []RoundRow{{Round: 1, Total: 1, Wins: 0}}

	merged := MergeRounds(a, b, c)
	reversed := MergeRounds(c, b, a)
	assert.Equal(t, merged, reversed)

	want := map[int][2]int64{}
	for _, ds := range [][]RoundRow{a, b, c} {
		for _, s := range MergeRounds(ds) {
			cur := want[s.Round]
			want[s.Round] = [2]int64{cur[0] + s.TotalGames, cur[1] + s.Wins}
		}
	}

	require.Len(t, merged, 3)
	for i, s := range merged {
		assert.Equal(t, i+1, s.Round, "rounds ascending")
		assert.Equal(t, want[s.Round][0], s.TotalGames)
		assert.Equal(t, want[s.Round][1], s.Wins)
	}
}

func TestMergeSports_FirstSeenOrder(t *testing.T) {
	summary := MergeSports(
		[]SportRow{{Sport: "Soccer", Total: 4, Wins: 2, Losses: 2}, {Sport: "Tennis", Total: 0}},
		[]SportRow{{Sport: "Basketball", Total: 3, Wins: 3}, {Sport: "Soccer", Total: 6, Wins: 1, Losses: 5}},
	)

	require.Len(t, summary, 3)
	assert.Equal(t, "Soccer", summary[0].Sport)
	assert.Equal(t, int64(10), summary[0].Total)
	assert.Equal(t, int64(7), summary[0].Losses)
	assert.Equal(t, "30.0", summary[0].WinRate)
	assert.Equal(t, "Tennis", summary[1].Sport)
	assert.Equal(t, "0.0", summary[1].WinRate)
	assert.Equal(t, "100.0", summary[2].WinRate)
}

func TestWinPercentage(t *testing.T) {
	cases := []struct {
		wins, total int64
		want        string
	}{
		{0, 0, "0.0"},
		{5, 0, "0.0"},
		{1, 3, "33.3"},
		{2, 3, "66.7"},
		{7, 15, "46.7"},
		{4, 4, "100.0"},
		{9, 4, "100.0"},
		{-1, 4, "0.0"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, WinPercentage(tc.wins, tc.total), "%d/%d", tc.wins, tc.total)
	}
}

func TestWinPercentage_InRange(t *testing.T) {
	for total := int64(0); total <= 30; total++ {
		for wins := int64(0); wins <= total; wins++ {
			v, err := strconv.ParseFloat(WinPercentage(wins, total), 64)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 100.0)
		}
	}
}

func totals(ranked []RankedTeam) []TeamTotal {
	out := make([]TeamTotal, len(ranked))
	for i, r := range ranked {
		out[i] = TeamTotal{TeamID: r.TeamID, Total: r.Total}
	}
	return out
}
