// Package cli provides the interactive zkauth command-line client.
//
// It wires configuration, the prover service and a small REPL. Typical flow:
// register an identity once, then log in with the same password; each login
// runs a fresh Chaum-Pedersen round and prints the session token.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
