// Package scoring holds the pure bracket arithmetic: tip aggregation,
// ranking and win-rate summaries. Nothing in here does I/O.
package scoring

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Result is the graded value of a tip. A tip that has not been graded yet
// carries a null result.
type Result struct {
	raw    string
	graded bool
}

// GradedResult builds a Result from its decimal text.
func GradedResult(s string) Result {
	return Result{raw: s, graded: true}
}

// Graded reports whether the tip has a result.
func (r Result) Graded() bool { return r.graded }

// Decimal returns the result as a decimal; ungraded or unparsable results are zero.
func (r Result) Decimal() decimal.Decimal {
	if !r.graded {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimSpace(r.raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Float returns the result as float64 with the same zero defaults as Decimal.
func (r Result) Float() float64 {
	return r.Decimal().InexactFloat64()
}

func (r *Result) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = Result{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = GradedResult(s)
		return nil
	}
	*r = GradedResult(string(b))
	return nil
}

func (r Result) MarshalJSON() ([]byte, error) {
	if !r.graded {
		return []byte("null"), nil
	}
	return json.Marshal(r.raw)
}

// Tip is one scored prediction of a team inside a bracket.
type Tip struct {
	TeamID        TeamID `json:"team_id"`
	BracketGameID int64  `json:"bracket_game_id"`
	Tip           string `json:"tip"`
	DD            int    `json:"dd"`
	PlusMin       int    `json:"plusmin"`
	Result        Result `json:"result"`
	SubmittedOn   string `json:"submitted_on,omitempty"`
}

// TeamTotal is a team's summed bracket score.
type TeamTotal struct {
	TeamID TeamID  `json:"teamId"`
	Total  float64 `json:"totalScore"`
}

// Aggregate sums the results of every tip that belongs to team. Ungraded tips
// count as zero, and a team without tips scores zero.
func Aggregate(tips []Tip, team TeamID) float64 {
	sum := decimal.Zero
	for _, t := range tips {
		if t.TeamID != team {
			continue
		}
		sum = sum.Add(t.Result.Decimal())
	}
	return sum.InexactFloat64()
}

// BracketTotals returns one total per team that tipped in the bracket, in the
// order the teams first appear.
func BracketTotals(tips []Tip) []TeamTotal {
	seen := make(map[TeamID]int)
	sums := make([]decimal.Decimal, 0)
	order := make([]TeamID, 0)
	for _, t := range tips {
		i, ok := seen[t.TeamID]
		if !ok {
			i = len(order)
			seen[t.TeamID] = i
			order = append(order, t.TeamID)
			sums = append(sums, decimal.Zero)
		}
		sums[i] = sums[i].Add(t.Result.Decimal())
	}

	totals := make([]TeamTotal, len(order))
	for i, id := range order {
		totals[i] = TeamTotal{TeamID: id, Total: sums[i].InexactFloat64()}
	}
	return totals
}
