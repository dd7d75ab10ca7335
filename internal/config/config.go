package config

import (
	"os"
	"strings"

	"github.com/anacrolix/log"
	"github.com/pkg/errors"
)

// LogLevelEnv selects the stderr log level. Every command line argument is
// a data token, so the environment is the only configuration channel.
const LogLevelEnv = "AVLTREE_LOG_LEVEL"

var levels = map[string]log.Level{
	"debug":   log.Debug,
	"info":    log.Info,
	"warning": log.Warning,
	"warn":    log.Warning,
	"error":   log.Error,
}

type Config struct {
	logLevel log.Level
}

func WithDefault() Config {
	return Config{
		logLevel: log.Info,
	}
}

func (c Config) WithLogLevel(level log.Level) Config {
	c.logLevel = level
	return c
}

func (c Config) LogLevel() log.Level {
	return c.logLevel
}

// FromLookup applies environment overrides read through lookup on top of
// the defaults.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := WithDefault()

	raw, ok := lookup(LogLevelEnv)
	if !ok || strings.TrimSpace(raw) == "" {
		return cfg, nil
	}

	level, err := ParseLogLevel(raw)
	if err != nil {
		return Config{}, err
	}

	return cfg.WithLogLevel(level), nil
}

func FromEnv() (Config, error) {
	return FromLookup(os.LookupEnv)
}

func ParseLogLevel(s string) (log.Level, error) {
	level, ok := levels[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return level, errors.Wrapf(ErrInvalidConfig, "unknown %s %q", LogLevelEnv, s)
	}

	return level, nil
}
