package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Empty(t, c.SecretKey)
	assert.Equal(t, 15*time.Minute, c.SessionTokenValidityDuration)
	assert.Equal(t, 5*time.Minute, c.ChallengeTTL)
	assert.Equal(t, 1*time.Minute, c.ChallengeSweepInterval)
	assert.True(t, c.AllowReregistration)
	assert.Equal(t, "info", c.LogLevel)
	assert.False(t, c.HasCustomGroup())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()
	require.NotNil(t, c, "LoadConfig must not return nil")

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *c)
}

func TestHasCustomGroup(t *testing.T) {
	c := Config{GroupGeneratorB: "9"}
	assert.True(t, c.HasCustomGroup())
}
