package config_test

import (
	"testing"

	"github.com/anacrolix/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peppermintpatty5/avl-tree/internal/config"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		cfg, err := config.FromLookup(lookupFrom(nil))
		require.NoError(t, err)
		assert.Equal(t, log.Info, cfg.LogLevel())
	})

	t.Run("blank value keeps the default", func(t *testing.T) {
		cfg, err := config.FromLookup(lookupFrom(map[string]string{config.LogLevelEnv: "  "}))
		require.NoError(t, err)
		assert.Equal(t, log.Info, cfg.LogLevel())
	})

	t.Run("level is case insensitive", func(t *testing.T) {
		cfg, err := config.FromLookup(lookupFrom(map[string]string{config.LogLevelEnv: "DEBUG"}))
		require.NoError(t, err)
		assert.Equal(t, log.Debug, cfg.LogLevel())
	})

	t.Run("unknown level is rejected", func(t *testing.T) {
		_, err := config.FromLookup(lookupFrom(map[string]string{config.LogLevelEnv: "loud"}))
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "loud")
	})
}

func TestParseLogLevel(t *testing.T) {
	tt := map[string]log.Level{
		"debug":   log.Debug,
		"info":    log.Info,
		"warn":    log.Warning,
		"warning": log.Warning,
		"error":   log.Error,
	}

	for in, exp := range tt {
		t.Run(in, func(t *testing.T) {
			level, err := config.ParseLogLevel(in)
			require.NoError(t, err)
			assert.Equal(t, exp, level)
		})
	}
}

func TestWithLogLevel(t *testing.T) {
	cfg := config.WithDefault().WithLogLevel(log.Error)
	assert.Equal(t, log.Error, cfg.LogLevel())
	assert.Equal(t, log.Info, config.WithDefault().LogLevel())
}
