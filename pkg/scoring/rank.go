package scoring

import "sort"

// RankedTeam is a leaderboard position.
type RankedTeam struct {
	Rank   int     `json:"rank"`
	TeamID TeamID  `json:"teamId"`
	Total  float64 `json:"totalScore"`
}

// Rank orders totals by score descending, breaking ties by ascending team id.
// Ranks are dense: equal scores share a rank and the next score gets rank+1.
// The input slice is not modified.
func Rank(totals []TeamTotal) []RankedTeam {
	sorted := make([]TeamTotal, len(totals))
	copy(sorted, totals)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Total != sorted[j].Total {
			return sorted[i].Total > sorted[j].Total
		}
		return sorted[i].TeamID < sorted[j].TeamID
	})

	ranked := make([]RankedTeam, len(sorted))
	rank := 0
	for i, t := range sorted {
		if i == 0 || t.Total != sorted[i-1].Total {
			rank++
		}
		ranked[i] = RankedTeam{Rank: rank, TeamID: t.TeamID, Total: t.Total}
	}
	return ranked
}
