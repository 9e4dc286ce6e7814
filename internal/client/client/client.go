package client

import (
	"context"
)

// Client is the prover's view of the zkauth server. Byte arguments are
// minimal big-endian integers as produced by zkp.Encode.
type Client interface {
	Close() error
	Register(ctx context.Context, identity string, y1, y2 []byte) error
	CreateChallenge(ctx context.Context, identity string, r1, r2 []byte) (challengeID string, challenge []byte, err error)
	VerifyResponse(ctx context.Context, challengeID string, response []byte) (sessionToken string, err error)
}
