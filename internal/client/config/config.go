package config

import "time"

// Config holds runtime settings for the zkauth CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the zkauth gRPC endpoint.
//   - RequestTimeout: deadline applied to every RPC.
//   - KDFTime, KDFMemory, KDFThreads: Argon2id cost used to turn a password
//     into the proof secret. They must match between registration and login.
//   - Group*: optional hex group parameters. They must match the server's;
//     all empty selects the built-in RFC 5114 group.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	KDFTime            uint32
	KDFMemory          uint32
	KDFThreads         uint8
	GroupModulus       string
	GroupOrder         string
	GroupGeneratorA    string
	GroupGeneratorB    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
	c.KDFTime = 1
	c.KDFMemory = 64 * 1024
	c.KDFThreads = 4
}

// HasCustomGroup reports whether group parameters were configured.
func (c *Config) HasCustomGroup() bool {
	return c.GroupModulus != "" || c.GroupOrder != "" || c.GroupGeneratorA != "" || c.GroupGeneratorB != ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
