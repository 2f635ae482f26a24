package subscription

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// TokenLength is the number of characters in a subscription token. 25
// characters over a 62-symbol alphabet carry roughly 148 bits of entropy,
// comfortably above the guessing-resistance floor.
const TokenLength = 25

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSubscriptionToken returns a cryptographically random alphanumeric
// token. Collisions across subscribers are treated as negligible.
func GenerateSubscriptionToken() (string, error) {
	out := make([]byte, TokenLength)
	alphabetLen := big.NewInt(int64(len(tokenAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("could not read random bytes: %w", err)
		}
		out[i] = tokenAlphabet[n.Int64()]
	}

	return string(out), nil
}

// isWellFormedToken reports whether a candidate token could have been
// produced by GenerateSubscriptionToken. It exists so lookups can be skipped
// for garbage input; callers must map a failure to the same outward error as
// an unknown token.
func isWellFormedToken(token string) bool {
	if len(token) != TokenLength {
		return false
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}

	return true
}
