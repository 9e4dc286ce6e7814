// Package config loads runtime configuration for the zkauth CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the zkauth gRPC endpoint
//	-t int      request timeout (seconds)
//	-m int      Argon2id memory (KiB)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "10s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "10s",
//	  "kdf": {"time": 1, "memory": 65536, "threads": 4}
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
