package zkp

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/google/uuid"
)

// Source supplies every nonce, challenge and opaque identifier used by the
// protocol. Production code uses CryptoSource; tests may substitute a
// deterministic implementation.
type Source interface {
	// Exponent returns a uniform value in [0, order).
	Exponent(order *big.Int) (*saferith.Nat, error)
	// ID returns an opaque identifier that is unique with overwhelming
	// probability.
	ID() (string, error)
}

// CryptoSource draws from a cryptographically secure reader.
type CryptoSource struct {
	r io.Reader
}

// NewCryptoSource returns a Source backed by crypto/rand.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{r: rand.Reader}
}

func (s *CryptoSource) Exponent(order *big.Int) (*saferith.Nat, error) {
	v, err := rand.Int(s.r, order)
	if err != nil {
		return nil, fmt.Errorf("random exponent: %w", err)
	}
	return new(saferith.Nat).SetBig(v, order.BitLen()), nil
}

// ID returns a random (version 4) UUID read from the same reader.
func (s *CryptoSource) ID() (string, error) {
	id, err := uuid.NewRandomFromReader(s.r)
	if err != nil {
		return "", fmt.Errorf("random id: %w", err)
	}
	return id.String(), nil
}

// RandomExponent is a convenience wrapper drawing an exponent for g.
func (g *Group) RandomExponent(src Source) (*saferith.Nat, error) {
	return src.Exponent(g.q)
}
