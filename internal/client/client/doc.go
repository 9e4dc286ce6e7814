// Package client contains the transport side of the zkauth prover.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     three zkauth operations: Register, CreateChallenge, VerifyResponse.
//  2. A concrete gRPC implementation (see GRPCClient) that sends messages
//     with the CBOR codec, tags each call with a request id and maps gRPC
//     statuses back to sentinel errors.
//
// # Error Handling
//
// Server failures are reported as the sentinels of package common
// (ErrUnknownIdentity, ErrProofRejected, ...) recovered from the
// google.rpc.ErrorInfo reason, so callers can match them with errors.Is.
// Transport failures are reported as ErrUnavailable.
//
// Concurrency & Contexts
//
// GRPCClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation; a per-call timeout is applied on
// top of it when configured.
package client
