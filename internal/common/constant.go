// Package common contains shared constants and sentinel errors used across
// zkauth components.
package common

// ErrorDomain is the domain reported in google.rpc.ErrorInfo details.
const ErrorDomain = "zkauth"

// Reasons carried in google.rpc.ErrorInfo so that clients can tell apart
// failures sharing a gRPC status code.
const (
	ReasonUnknownIdentity       = "UNKNOWN_IDENTITY"
	ReasonUnknownChallenge      = "UNKNOWN_CHALLENGE"
	ReasonProofRejected         = "PROOF_REJECTED"
	ReasonMalformedInput        = "MALFORMED_INPUT"
	ReasonIdentityExists        = "IDENTITY_EXISTS"
	ReasonInternalInconsistency = "INTERNAL_INCONSISTENCY"
	ReasonInvalidToken          = "INVALID_TOKEN"
	ReasonTokenExpired          = "TOKEN_EXPIRED"
)

// RequestIDHeaderName is the gRPC metadata key carrying a caller supplied
// request id. The server generates one when it is absent.
const RequestIDHeaderName = "x-request-id"

// SessionTokenHeaderName is the gRPC metadata key carrying a session token
// issued by VerifyResponse. Calls without it are anonymous.
const SessionTokenHeaderName = "session_token"
