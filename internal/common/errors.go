// Package common defines shared constants and sentinel errors used across
// client and server layers of zkauth. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound           = errors.New("not found")
	ErrorAlreadyExists      = errors.New("already exists")
	ErrDuplicateChallengeID = errors.New("duplicate challenge id")

	// Protocol errors returned by the authentication flow.
	ErrUnknownIdentity  = errors.New("unknown identity")
	ErrUnknownChallenge = errors.New("unknown challenge")
	ErrProofRejected    = errors.New("proof rejected")
	ErrMalformedInput   = errors.New("malformed input")
	ErrIdentityExists   = errors.New("identity already registered")

	// ErrInternalInconsistency signals a store or randomness bug. It is never
	// retried and never mapped to a protocol-level failure.
	ErrInternalInconsistency = errors.New("internal inconsistency")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Misconfiguration of the numeric domain.
	ErrInvalidGroup = errors.New("invalid group parameters")
)
