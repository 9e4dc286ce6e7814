// Package services contains application services for the zkauth client.
// This file defines the prover: it turns a password into the proof secret,
// registers its commitment and answers login challenges.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/zkauth/internal/client/client"
	"github.com/dmitrijs2005/zkauth/internal/zkp"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: derive the secret from (identity, password) and publish its
//     commitment.
//   - Login: run one challenge round and return the session token.
//   - Close: release underlying client resources.
//
// The password is only read; wiping it is the caller's job.
type AuthService interface {
	Register(ctx context.Context, identity string, password []byte) error
	Login(ctx context.Context, identity string, password []byte) (string, error)
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	group  *zkp.Group
	engine *zkp.Engine
	random zkp.Source
	kdf    zkp.KDFParams
}

// NewAuthService constructs an AuthService for group. kdf must be the same
// at registration and at every later login.
func NewAuthService(c client.Client, group *zkp.Group, random zkp.Source, kdf zkp.KDFParams) AuthService {
	return &authService{
		client: c,
		group:  group,
		engine: zkp.NewEngine(group),
		random: random,
		kdf:    kdf,
	}
}

func (a *authService) Register(ctx context.Context, identity string, password []byte) error {
	x := a.group.DeriveSecret(identity, password, a.kdf)
	y1, y2 := a.engine.Commit(x)

	if err := a.client.Register(ctx, identity, zkp.Encode(y1), zkp.Encode(y2)); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

func (a *authService) Login(ctx context.Context, identity string, password []byte) (string, error) {
	x := a.group.DeriveSecret(identity, password, a.kdf)

	k, err := a.group.RandomExponent(a.random)
	if err != nil {
		return "", fmt.Errorf("nonce error: %w", err)
	}
	r1, r2 := a.engine.Commit(k)

	challengeID, challenge, err := a.client.CreateChallenge(ctx, identity, zkp.Encode(r1), zkp.Encode(r2))
	if err != nil {
		return "", fmt.Errorf("challenge error: %w", err)
	}

	c, err := a.group.DecodeScalar(challenge)
	if err != nil {
		return "", fmt.Errorf("challenge error: %w", err)
	}
	s := a.engine.Respond(k, c, x)

	token, err := a.client.VerifyResponse(ctx, challengeID, zkp.Encode(s))
	if err != nil {
		return "", fmt.Errorf("verify error: %w", err)
	}
	return token, nil
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
