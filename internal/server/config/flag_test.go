package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-s", "secret", "-t", "30", "-x", "120", "-w", "10", "-o=false", "-l", "debug",
			},
			expected: &Config{
				EndpointAddrGRPC:             "127.0.0.1:9090",
				SecretKey:                    "secret",
				SessionTokenValidityDuration: 30 * time.Minute,
				ChallengeTTL:                 2 * time.Minute,
				ChallengeSweepInterval:       10 * time.Second,
				AllowReregistration:          false,
				LogLevel:                     "debug",
			},
		},
		{
			name: "unrelated flags are ignored",
			args: []string{"cmd", "-c", "cfg.json", "-a", ":1"},
			expected: &Config{
				EndpointAddrGRPC:             ":1",
				SessionTokenValidityDuration: 15 * time.Minute,
				ChallengeTTL:                 5 * time.Minute,
				ChallengeSweepInterval:       time.Minute,
				AllowReregistration:          true,
				LogLevel:                     "info",
			},
		},
		{
			name:        "bad integer panics",
			args:        []string{"cmd", "-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}
			config.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
