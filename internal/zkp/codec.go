package zkp

import (
	"bytes"
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/dmitrijs2005/zkauth/internal/common"
)

// Encode returns the minimal big-endian unsigned encoding of n. Zero is
// encoded as a single 0x00 byte so that an empty field always means
// "missing" on the wire.
func Encode(n *saferith.Nat) []byte {
	b := bytes.TrimLeft(n.Bytes(), "\x00")
	if len(b) == 0 {
		return []byte{0}
	}
	return b
}

// Decode parses a big-endian unsigned integer of at most maxLen significant
// bytes. Leading zero bytes are accepted. An empty input or an oversized
// value fails with common.ErrMalformedInput.
func Decode(b []byte, maxLen int) (*saferith.Nat, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty integer", common.ErrMalformedInput)
	}
	trimmed := bytes.TrimLeft(b, "\x00")
	if len(trimmed) > maxLen {
		return nil, fmt.Errorf("%w: integer of %d bytes exceeds %d", common.ErrMalformedInput, len(trimmed), maxLen)
	}
	if len(trimmed) == 0 {
		return new(saferith.Nat).SetUint64(0), nil
	}
	return new(saferith.Nat).SetBytes(trimmed), nil
}

// DecodeElement decodes a group element (a commitment value).
func (g *Group) DecodeElement(b []byte) (*saferith.Nat, error) {
	return Decode(b, g.ElementLen())
}

// DecodeScalar decodes an exponent (a challenge or a response).
func (g *Group) DecodeScalar(b []byte) (*saferith.Nat, error) {
	return Decode(b, g.ScalarLen())
}
