// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the zkauth server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - SecretKey: HMAC secret for signing session tokens (HS256). When empty a
//     random key is generated at startup and tokens do not survive a restart.
//   - SessionTokenValidityDuration: lifetime of issued session tokens.
//   - ChallengeTTL: age after which an unverified challenge is discarded; 0
//     keeps challenges until they are verified.
//   - ChallengeSweepInterval: how often expired challenges are purged.
//   - AllowReregistration: whether Register may overwrite an existing identity.
//   - LogLevel: debug, info, warn or error.
//   - Group*: optional hex group parameters; all empty selects the built-in
//     RFC 5114 group. An empty GroupGeneratorB is derived from a public seed.
type Config struct {
	EndpointAddrGRPC             string
	SecretKey                    string
	SessionTokenValidityDuration time.Duration
	ChallengeTTL                 time.Duration
	ChallengeSweepInterval       time.Duration
	AllowReregistration          bool
	LogLevel                     string
	GroupModulus                 string
	GroupOrder                   string
	GroupGeneratorA              string
	GroupGeneratorB              string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.SecretKey = ""
	c.SessionTokenValidityDuration = 15 * time.Minute
	c.ChallengeTTL = 5 * time.Minute
	c.ChallengeSweepInterval = 1 * time.Minute
	c.AllowReregistration = true
	c.LogLevel = "info"
}

// HasCustomGroup reports whether group parameters were configured.
func (c *Config) HasCustomGroup() bool {
	return c.GroupModulus != "" || c.GroupOrder != "" || c.GroupGeneratorA != "" || c.GroupGeneratorB != ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
