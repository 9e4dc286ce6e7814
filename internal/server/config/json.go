package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/zkauth/internal/flagx"
	"github.com/dmitrijs2005/zkauth/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Durations
// accept "5m" style strings or integer nanoseconds. Absent fields leave the
// current value untouched.
type JsonConfig struct {
	EndpointAddrGRPC             string          `json:"endpoint_addr_grpc"`
	SecretKey                    string          `json:"secret_key"`
	SessionTokenValidityDuration *timex.Duration `json:"session_token_validity_duration"`
	ChallengeTTL                 *timex.Duration `json:"challenge_ttl"`
	ChallengeSweepInterval       *timex.Duration `json:"challenge_sweep_interval"`
	AllowReregistration          *bool           `json:"allow_reregistration"`
	LogLevel                     string          `json:"log_level"`
	Group                        *JsonGroup      `json:"group"`
}

// JsonGroup carries hexadecimal group parameters.
type JsonGroup struct {
	Modulus    string `json:"modulus"`
	Order      string `json:"order"`
	GeneratorA string `json:"generator_a"`
	GeneratorB string `json:"generator_b"`
}

// parseJson overlays values from the file named by -c/-config onto config.
// Nothing happens when no file is given. An unreadable file or invalid JSON
// panics, as a broken configuration must stop the server.
func parseJson(config *Config) {
	path := flagx.ConfigFilePath()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.SessionTokenValidityDuration != nil {
		config.SessionTokenValidityDuration = c.SessionTokenValidityDuration.Duration
	}
	if c.ChallengeTTL != nil {
		config.ChallengeTTL = c.ChallengeTTL.Duration
	}
	if c.ChallengeSweepInterval != nil {
		config.ChallengeSweepInterval = c.ChallengeSweepInterval.Duration
	}
	if c.AllowReregistration != nil {
		config.AllowReregistration = *c.AllowReregistration
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.Group != nil {
		config.GroupModulus = c.Group.Modulus
		config.GroupOrder = c.Group.Order
		config.GroupGeneratorA = c.Group.GeneratorA
		config.GroupGeneratorB = c.Group.GeneratorB
	}
}
