// Package zkp implements the Chaum-Pedersen proof of equality of discrete
// logarithms used by zkauth: group parameters, the proof engine, the wire
// encoding of integers, randomness and password-derived secrets.
//
// All proof arithmetic is done with saferith so that operations touching the
// secret exponent run in time independent of its value. Group setup, which
// happens once at startup and only touches public values, uses math/big for
// its primality tests.
package zkp

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"sync"

	"github.com/cronokirby/saferith"
	"github.com/dmitrijs2005/zkauth/internal/common"
	"github.com/zeebo/blake3"
)

// primalityRounds is the number of Miller-Rabin rounds used by NewGroup.
const primalityRounds = 32

// maxDeriveAttempts bounds the hash-to-subgroup loop in DeriveGenerator.
const maxDeriveAttempts = 1 << 16

// GeneratorBSeed is the public seed from which the default generatorB is
// derived. Anyone can recompute it with DeriveGenerator.
const GeneratorBSeed = "zkauth/chaum-pedersen/generator-b/rfc5114-1024-160"

// RFC 5114 section 2.1: 1024-bit MODP group with a 160-bit prime order subgroup.
const (
	rfc5114ModulusHex = "B10B8F96A080E01DDE92DE5EAE5D54EC52C99FBCFB06A3C69A6A9DCA52D23B61" +
		"6073E28675A23D189838EF1E2EE652C013ECB4AEA906112324975C3CD49B83BF" +
		"ACCBDD7D90C4BD7098488E9C219A73724EFFD6FAE5644738FAA31A4FF55BCCC0" +
		"A151AF5F0DC8B4BD45BF37DF365C1A65E68CFDA76D4DA708DF1FB2BC2E4A4371"
	rfc5114GeneratorHex = "A4D1CBD5C3FD34126765A442EFB99905F8104DD258AC507FD6406CFF14266D31" +
		"266FEA1E5C41564B777E690F5504F213160217B4B01B886A5E91547F9E2749F4" +
		"D7FBD7D3B9A92EE1909D0D2263F80A76A6A24C087A091F531DBF0A0169B6A28A" +
		"D662A4D18E73AFA32D779D5918D08BC8858F4DCEF97C2A24855E6EEB22B3B2E5"
	rfc5114OrderHex = "F518AA8781A8DF278ABA4E7D64B7CB9D49462353"
)

// Group holds the public numeric domain every proof is computed in: a prime
// modulus p, a prime order q dividing p-1 and two generators of the order-q
// subgroup. A Group is immutable after NewGroup returns and safe for
// concurrent use.
type Group struct {
	p, q       *big.Int
	gA, gB     *big.Int
	modP, modQ *saferith.Modulus
	natA, natB *saferith.Nat
}

// NewGroup validates the parameters and returns the group. An error here is
// a misconfiguration and callers must refuse to start.
func NewGroup(modulus, order, generatorA, generatorB *big.Int) (*Group, error) {
	if modulus == nil || order == nil || generatorA == nil || generatorB == nil {
		return nil, fmt.Errorf("%w: missing parameter", common.ErrInvalidGroup)
	}
	if !modulus.ProbablyPrime(primalityRounds) {
		return nil, fmt.Errorf("%w: modulus is not prime", common.ErrInvalidGroup)
	}
	if !order.ProbablyPrime(primalityRounds) {
		return nil, fmt.Errorf("%w: order is not prime", common.ErrInvalidGroup)
	}

	pMinusOne := new(big.Int).Sub(modulus, big.NewInt(1))
	if new(big.Int).Mod(pMinusOne, order).Sign() != 0 {
		return nil, fmt.Errorf("%w: order does not divide modulus-1", common.ErrInvalidGroup)
	}

	for name, g := range map[string]*big.Int{"generatorA": generatorA, "generatorB": generatorB} {
		if err := checkGenerator(modulus, order, g); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", common.ErrInvalidGroup, name, err)
		}
	}
	if generatorA.Cmp(generatorB) == 0 {
		return nil, fmt.Errorf("%w: generators must differ", common.ErrInvalidGroup)
	}

	g := &Group{
		p:    new(big.Int).Set(modulus),
		q:    new(big.Int).Set(order),
		gA:   new(big.Int).Set(generatorA),
		gB:   new(big.Int).Set(generatorB),
		modP: saferith.ModulusFromNat(new(saferith.Nat).SetBig(modulus, modulus.BitLen())),
		modQ: saferith.ModulusFromNat(new(saferith.Nat).SetBig(order, order.BitLen())),
		natA: new(saferith.Nat).SetBig(generatorA, modulus.BitLen()),
		natB: new(saferith.Nat).SetBig(generatorB, modulus.BitLen()),
	}
	return g, nil
}

// checkGenerator requires 1 < g < p and g^q = 1 mod p. With q prime this
// means g has order exactly q.
func checkGenerator(p, q, g *big.Int) error {
	if g.Cmp(big.NewInt(1)) <= 0 || g.Cmp(p) >= 0 {
		return fmt.Errorf("out of range")
	}
	if new(big.Int).Exp(g, q, p).Cmp(big.NewInt(1)) != 0 {
		return fmt.Errorf("order mismatch")
	}
	return nil
}

// DeriveGenerator maps seed into the order-q subgroup of Z_p^*. BLAKE3 output
// of (seed, counter) is read as an integer h mod p and raised to the cofactor
// (p-1)/q; the first result different from 1 is returned. Since the result is
// a hash output, nobody knows its discrete log to any other generator.
func DeriveGenerator(modulus, order *big.Int, seed []byte) (*big.Int, error) {
	pMinusOne := new(big.Int).Sub(modulus, big.NewInt(1))
	cofactor, rem := new(big.Int).QuoRem(pMinusOne, order, new(big.Int))
	if rem.Sign() != 0 {
		return nil, fmt.Errorf("%w: order does not divide modulus-1", common.ErrInvalidGroup)
	}

	// 16 extra bytes keep the bias of the reduction mod p negligible.
	buf := make([]byte, (modulus.BitLen()+7)/8+16)
	var counter [4]byte
	one := big.NewInt(1)

	for i := uint32(0); i < maxDeriveAttempts; i++ {
		binary.BigEndian.PutUint32(counter[:], i)

		h := blake3.New()
		_, _ = h.Write(seed)
		_, _ = h.Write(counter[:])
		if _, err := io.ReadFull(h.Digest(), buf); err != nil {
			return nil, fmt.Errorf("blake3 digest: %w", err)
		}

		candidate := new(big.Int).SetBytes(buf)
		candidate.Mod(candidate, modulus)
		candidate.Exp(candidate, cofactor, modulus)
		if candidate.Cmp(one) > 0 {
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("%w: no generator found for seed", common.ErrInvalidGroup)
}

var defaultGroup = sync.OnceValues(func() (*Group, error) {
	p, _ := new(big.Int).SetString(rfc5114ModulusHex, 16)
	q, _ := new(big.Int).SetString(rfc5114OrderHex, 16)
	gA, _ := new(big.Int).SetString(rfc5114GeneratorHex, 16)

	gB, err := DeriveGenerator(p, q, []byte(GeneratorBSeed))
	if err != nil {
		return nil, err
	}
	return NewGroup(p, q, gA, gB)
})

// DefaultGroup returns the RFC 5114 1024/160 group with the RFC generator as
// generatorA and a generatorB derived from GeneratorBSeed. The group is built
// and validated once per process.
func DefaultGroup() (*Group, error) {
	return defaultGroup()
}

// ParseGroup builds a group from hexadecimal parameters as found in
// configuration files. An empty generatorB is derived from GeneratorBSeed.
func ParseGroup(modulusHex, orderHex, generatorAHex, generatorBHex string) (*Group, error) {
	parse := func(name, s string) (*big.Int, error) {
		v, ok := new(big.Int).SetString(s, 16)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not a hex integer", common.ErrInvalidGroup, name)
		}
		return v, nil
	}

	p, err := parse("modulus", modulusHex)
	if err != nil {
		return nil, err
	}
	q, err := parse("order", orderHex)
	if err != nil {
		return nil, err
	}
	gA, err := parse("generatorA", generatorAHex)
	if err != nil {
		return nil, err
	}

	var gB *big.Int
	if generatorBHex == "" {
		gB, err = DeriveGenerator(p, q, []byte(GeneratorBSeed))
	} else {
		gB, err = parse("generatorB", generatorBHex)
	}
	if err != nil {
		return nil, err
	}
	return NewGroup(p, q, gA, gB)
}

// Modulus returns a copy of the prime p.
func (g *Group) Modulus() *big.Int { return new(big.Int).Set(g.p) }

// Order returns a copy of the subgroup order q.
func (g *Group) Order() *big.Int { return new(big.Int).Set(g.q) }

// GeneratorA returns a copy of the first generator.
func (g *Group) GeneratorA() *big.Int { return new(big.Int).Set(g.gA) }

// GeneratorB returns a copy of the second generator.
func (g *Group) GeneratorB() *big.Int { return new(big.Int).Set(g.gB) }

// ElementLen is the byte length of the modulus, the longest valid encoding
// of a group element.
func (g *Group) ElementLen() int { return (g.p.BitLen() + 7) / 8 }

// ScalarLen is the byte length of the order, the longest valid encoding of
// an exponent.
func (g *Group) ScalarLen() int { return (g.q.BitLen() + 7) / 8 }
