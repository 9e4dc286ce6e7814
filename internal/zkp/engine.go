package zkp

import (
	"github.com/cronokirby/saferith"
)

// Engine computes commitments, responses and the verification predicate of
// the Chaum-Pedersen protocol over a fixed Group. It holds no mutable state.
type Engine struct {
	group *Group
}

func NewEngine(g *Group) *Engine {
	return &Engine{group: g}
}

// Group returns the parameters the engine computes in.
func (e *Engine) Group() *Group {
	return e.group
}

// Commit returns (gA^x mod p, gB^x mod p). It is used both for the durable
// registration commitment (x = secret) and the per-attempt commitment
// (x = nonce).
func (e *Engine) Commit(x *saferith.Nat) (*saferith.Nat, *saferith.Nat) {
	xq := e.reduceScalar(x)
	c1 := new(saferith.Nat).Exp(e.group.natA, xq, e.group.modP)
	c2 := new(saferith.Nat).Exp(e.group.natB, xq, e.group.modP)
	return c1, c2
}

// Respond returns s = nonce - challenge*secret mod q, always in [0, q).
func (e *Engine) Respond(nonce, challenge, secret *saferith.Nat) *saferith.Nat {
	k := e.reduceScalar(nonce)
	c := e.reduceScalar(challenge)
	x := e.reduceScalar(secret)

	cx := new(saferith.Nat).ModMul(c, x, e.group.modQ)
	return new(saferith.Nat).ModSub(k, cx, e.group.modQ)
}

// Verify reports whether gA^s * y1^c = r1 and gB^s * y2^c = r2 mod p. Both
// equations hold exactly when s = k - c*x mod q for the nonce k behind
// (r1, r2) and the secret x behind (y1, y2).
func (e *Engine) Verify(r1, r2, y1, y2, challenge, response *saferith.Nat) bool {
	c := e.reduceScalar(challenge)
	s := e.reduceScalar(response)

	ok1 := e.check(e.group.natA, y1, r1, c, s)
	ok2 := e.check(e.group.natB, y2, r2, c, s)
	return ok1&ok2 == 1
}

// check computes g^s * y^c mod p and compares it with r.
func (e *Engine) check(g, y, r, c, s *saferith.Nat) saferith.Choice {
	lhs := new(saferith.Nat).Exp(g, s, e.group.modP)
	yc := new(saferith.Nat).Exp(e.reduceElement(y), c, e.group.modP)
	lhs.ModMul(lhs, yc, e.group.modP)
	return lhs.Eq(e.reduceElement(r))
}

func (e *Engine) reduceScalar(x *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).Mod(x, e.group.modQ)
}

func (e *Engine) reduceElement(x *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).Mod(x, e.group.modP)
}
