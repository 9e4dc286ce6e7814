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
		{name: "all flags", args: []string{"cmd", "-a", "127.0.0.1:9090", "-t", "3", "-m", "1024"},
			expected: &Config{ServerEndpointAddr: "127.0.0.1:9090", RequestTimeout: 3 * time.Second, KDFMemory: 1024}},
		{name: "unknown flags are ignored", args: []string{"cmd", "-x", "1", "-a", "h:1"},
			expected: &Config{ServerEndpointAddr: "h:1"}},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(tt.expected, config))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
