// Package credentials implements the credential hasher: bcrypt hashing and
// verification, structural classification of stored values into hashed and
// legacy plaintext, and the password strength heuristic.
//
// A Hasher is immutable after construction and safe for concurrent use.
package credentials

import (
	"fmt"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 10

// maxKeyBytes is the number of password bytes bcrypt feeds into its key
// schedule. Longer input is cut here so that hashes produced by other bcrypt
// implementations (which silently ignore the tail) keep verifying.
const maxKeyBytes = 72

// Hasher produces and verifies bcrypt credentials at a fixed cost.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher using the given bcrypt cost. The cost must lie in
// [bcrypt.MinCost, bcrypt.MaxCost].
func NewHasher(cost int) (*Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: bcrypt cost %d must be in [%d, %d]",
			common.ErrInvalidInput, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &Hasher{cost: cost}, nil
}

// Cost returns the configured work factor.
func (h *Hasher) Cost() int { return h.cost }

// Hash returns a self-describing bcrypt token for plaintext. Every call uses a
// fresh random salt, so hashing the same input twice yields different tokens.
// An empty plaintext yields common.ErrInvalidInput.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("%w: password cannot be empty", common.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword(keyBytes(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the bcrypt token hashed. It never
// fails loudly: empty input, a malformed token and a wrong password all give
// false, so callers cannot tell a corrupt hash from a bad guess.
func (h *Hasher) Verify(plaintext, hashed string) bool {
	if plaintext == "" || hashed == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), keyBytes(plaintext)) == nil
}

// NeedsRehash reports whether hashed was produced with a cost other than the
// configured one. Values that do not decode as bcrypt report false.
func (h *Hasher) NeedsRehash(hashed string) bool {
	cost, err := bcrypt.Cost([]byte(hashed))
	if err != nil {
		return false
	}
	return cost != h.cost
}

func keyBytes(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > maxKeyBytes {
		b = b[:maxKeyBytes]
	}
	return b
}
