package scoring

import (
	"sort"

	"github.com/shopspring/decimal"
)

// RoundRow is a per-round win/loss tally from one season's dataset.
type RoundRow struct {
	Round int   `json:"round" gorm:"column:round"`
	Total int64 `json:"total_games" gorm:"column:total_games"`
	Wins  int64 `json:"wins" gorm:"column:wins"`
}

// SportRow is a per-sport win/loss tally from one season's dataset.
type SportRow struct {
	Sport  string `json:"sport" gorm:"column:sport_c"`
	Total  int64  `json:"total" gorm:"column:total"`
	Wins   int64  `json:"wins" gorm:"column:wins"`
	Losses int64  `json:"losses" gorm:"column:losses"`
}

// RoundSummary is the merged win rate for a round across all seasons.
type RoundSummary struct {
	Round         int    `json:"round"`
	TotalGames    int64  `json:"total_games"`
	Wins          int64  `json:"wins"`
	WinPercentage string `json:"win_percentage"`
}

// SportSummary is the merged win rate for a sport across all seasons.
type SportSummary struct {
	Sport   string `json:"sport"`
	Total   int64  `json:"total"`
	Wins    int64  `json:"wins"`
	Losses  int64  `json:"losses"`
	WinRate string `json:"winRate"`
}

type tally struct {
	total, wins, losses int64
}

// merge accumulates tallies per key, remembering first-seen key order.
func merge[K comparable](keys []K, tallies []tally) ([]K, map[K]tally) {
	acc := make(map[K]tally)
	order := make([]K, 0)
	for i, k := range keys {
		cur, ok := acc[k]
		if !ok {
			order = append(order, k)
		}
		cur.total += tallies[i].total
		cur.wins += tallies[i].wins
		cur.losses += tallies[i].losses
		acc[k] = cur
	}
	return order, acc
}

// MergeRounds sums round tallies from any number of season datasets and
// returns them ordered by ascending round number.
func MergeRounds(datasets ...[]RoundRow) []RoundSummary {
	var keys []int
	var tallies []tally
	for _, rows := range datasets {
		for _, r := range rows {
			keys = append(keys, r.Round)
			tallies = append(tallies, tally{total: r.Total, wins: r.Wins})
		}
	}
	order, acc := merge(keys, tallies)
	sort.Ints(order)

	out := make([]RoundSummary, len(order))
	for i, round := range order {
		t := acc[round]
		out[i] = RoundSummary{
			Round:         round,
			TotalGames:    t.total,
			Wins:          t.wins,
			WinPercentage: WinPercentage(t.wins, t.total),
		}
	}
	return out
}

// MergeSports sums sport tallies from any number of season datasets. Sports
// keep the order in which they were first seen.
func MergeSports(datasets ...[]SportRow) []SportSummary {
	var keys []string
	var tallies []tally
	for _, rows := range datasets {
		for _, r := range rows {
			keys = append(keys, r.Sport)
			tallies = append(tallies, tally{total: r.Total, wins: r.Wins, losses: r.Losses})
		}
	}
	order, acc := merge(keys, tallies)

	out := make([]SportSummary, len(order))
	for i, sport := range order {
		t := acc[sport]
		out[i] = SportSummary{
			Sport:   sport,
			Total:   t.total,
			Wins:    t.wins,
			Losses:  t.losses,
			WinRate: WinPercentage(t.wins, t.total),
		}
	}
	return out
}

// WinPercentage formats wins/total*100 with one decimal place. A zero total
// yields "0.0"; the value is clamped to [0, 100].
func WinPercentage(wins, total int64) string {
	if total <= 0 || wins <= 0 {
		return "0.0"
	}
	if wins > total {
		wins = total
	}
	pct := decimal.NewFromInt(wins).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(total), 8)
	return pct.StringFixed(1)
}
