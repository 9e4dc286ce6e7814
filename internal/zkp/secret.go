package zkp

import (
	"github.com/cronokirby/saferith"
	"github.com/dmitrijs2005/zkauth/internal/common"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/argon2"
)

const saltDomain = "zkauth/password-salt/v1"

// KDFParams are the Argon2id cost parameters for password derivation.
type KDFParams struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultKDFParams is one pass over 64 MiB with four lanes.
var DefaultKDFParams = KDFParams{Time: 1, Memory: 64 * 1024, Threads: 4}

// DeriveSecret turns a password into the discrete-log secret of identity.
// The salt is a BLAKE3 hash of the identity, so the same identity and
// password always give the same secret while equal passwords of different
// identities do not. The result is reduced into [0, q).
func (g *Group) DeriveSecret(identity string, password []byte, params KDFParams) *saferith.Nat {
	salt := blake3.Sum256(append([]byte(saltDomain), identity...))

	// 16 bytes beyond the order length keep the reduction mod q unbiased.
	key := argon2.IDKey(password, salt[:], params.Time, params.Memory, params.Threads, uint32(g.ScalarLen()+16))
	defer common.WipeByteArray(key)

	x := new(saferith.Nat).SetBytes(key)
	return new(saferith.Nat).Mod(x, g.modQ)
}
