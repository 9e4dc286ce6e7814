package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/zkauth/internal/flagx"
	"github.com/dmitrijs2005/zkauth/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields leave the corresponding Config value unchanged.
type JsonConfig struct {
	ServerEndpointAddr string          `json:"server_endpoint_addr"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	KDF                *JsonKDF        `json:"kdf"`
	Group              *JsonGroup      `json:"group"`
}

// JsonKDF carries the Argon2id cost parameters.
type JsonKDF struct {
	Time    uint32 `json:"time"`
	Memory  uint32 `json:"memory"`
	Threads uint8  `json:"threads"`
}

// JsonGroup carries hexadecimal group parameters, in the same shape the
// server reads them.
type JsonGroup struct {
	Modulus    string `json:"modulus"`
	Order      string `json:"order"`
	GeneratorA string `json:"generator_a"`
	GeneratorB string `json:"generator_b"`
}

// parseJson overlays Config with values loaded from the file named by -c or
// -config. Nothing happens when no file is given. Read or unmarshal errors
// panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFilePath()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.KDF != nil {
		if jc.KDF.Time != 0 {
			cfg.KDFTime = jc.KDF.Time
		}
		if jc.KDF.Memory != 0 {
			cfg.KDFMemory = jc.KDF.Memory
		}
		if jc.KDF.Threads != 0 {
			cfg.KDFThreads = jc.KDF.Threads
		}
	}
	if jc.Group != nil {
		cfg.GroupModulus = jc.Group.Modulus
		cfg.GroupOrder = jc.Group.Order
		cfg.GroupGeneratorA = jc.Group.GeneratorA
		cfg.GroupGeneratorB = jc.Group.GeneratorB
	}
}
