package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiyaMate/Master-financial/internal/config"
)

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"listen", "env-file", "log-level", "strict-guard"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestPromptPasswordSkipsNonInteractive(t *testing.T) {
	// Test binaries run without a TTY on stdin, so the prompt must be a no-op.
	cfg := &config.Config{Driver: config.DriverSnowflake, User: "analyst"}
	require.NoError(t, promptPasswordIfNeeded(cfg))
	assert.Empty(t, cfg.Password)
}

func TestPromptPasswordSkipsWhenSet(t *testing.T) {
	cfg := &config.Config{Driver: config.DriverSnowflake, User: "analyst", Password: "secret"}
	require.NoError(t, promptPasswordIfNeeded(cfg))
	assert.Equal(t, "secret", cfg.Password)
}
