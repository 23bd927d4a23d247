package auth

import (
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/DhavalSuthar-24/nfteams-api/pkg/apperr"
	"golang.org/x/crypto/sha3"
)

var (
	hexAddressPattern = regexp.MustCompile(`^0[xX][0-9a-fA-F]{40}$`)
	ensNamePattern    = regexp.MustCompile(`^[a-z0-9-]+\.eth$`)
)

// NormalizeWallet returns the canonical form of a wallet address: EIP-55
// checksummed hex for 0x addresses, lowercase for .eth names.
func NormalizeWallet(address string) (string, error) {
	address = strings.TrimSpace(address)

	if hexAddressPattern.MatchString(address) {
		digits := address[2:]
		sum := checksumAddress(digits)
		// Single-case input carries no checksum; mixed case must match EIP-55.
		if isMixedCase(digits) && sum[2:] != digits {
			return "", apperr.ErrInvalidWalletAddress
		}
		return sum, nil
	}

	name := strings.ToLower(address)
	if ensNamePattern.MatchString(name) {
		return name, nil
	}
	return "", apperr.ErrInvalidWalletAddress
}

func isMixedCase(s string) bool {
	return strings.ToLower(s) != s && strings.ToUpper(s) != s
}

// checksumAddress applies EIP-55 to 40 hex digits.
func checksumAddress(digits string) string {
	lower := strings.ToLower(digits)

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	hash := hex.EncodeToString(h.Sum(nil))

	out := []byte(lower)
	for i, ch := range out {
		if ch >= 'a' && ch <= 'f' && hash[i] >= '8' {
			out[i] = ch - 'a' + 'A'
		}
	}
	return "0x" + string(out)
}
