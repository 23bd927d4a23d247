package scoring

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TeamID is the canonical team identifier. Teams are NFTs, so the id is the
// token id of the team's NFT interpreted as an unsigned integer.
type TeamID uint64

// ParseTokenID converts an NFT token id ("0x1f", "1f") into a TeamID.
func ParseTokenID(tokenID string) (TeamID, error) {
	s := strings.TrimSpace(tokenID)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return 0, fmt.Errorf("empty token id")
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token id %q: %w", tokenID, err)
	}
	return TeamID(v), nil
}

// ParseTeamID parses a decimal team id as it appears in paths and request bodies.
func ParseTeamID(s string) (TeamID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid team id %q: %w", s, err)
	}
	return TeamID(v), nil
}

func (id TeamID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Value stores team ids as plain integers.
func (id TeamID) Value() (driver.Value, error) {
	if uint64(id) > math.MaxInt64 {
		return nil, fmt.Errorf("team id %d overflows int64", uint64(id))
	}
	return int64(id), nil
}

// UnmarshalJSON accepts numbers, numeric strings and integral floats such as
// 5.0. The scoring API is not consistent about which one it sends. A null
// leaves the id untouched.
func (id *TeamID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
	}
	v, err := parseLooseTeamID(raw)
	if err != nil {
		return err
	}
	*id = v
	return nil
}

func parseLooseTeamID(s string) (TeamID, error) {
	if v, err := ParseTeamID(s); err == nil {
		return v, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !d.IsInteger() || d.IsNegative() || !d.BigInt().IsUint64() {
		return 0, fmt.Errorf("invalid team id %q", s)
	}
	return TeamID(d.BigInt().Uint64()), nil
}
