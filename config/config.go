// Package config holds runtime settings and the optional content file
//
// Precedence, lowest first: built-in defaults, .env file, ORCHEAD_* env vars,
// command line flags. The content file (--config) adds phrases, milestones,
// quotes and idle messages on top of the built-in tables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/orchead/store"
)

// EnvPrefix is the prefix for environment overrides of every flag
const EnvPrefix = "ORCHEAD"

// Config is the resolved runtime configuration
type Config struct {
	LogLevel  string
	LogFormat string
	LogFile   string

	Backend       string
	StatePath     string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	Listen      string
	ContentPath string

	ReducedMotion bool
	Mute          bool
	Chaos         bool
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		LogLevel:    "info",
		LogFormat:   "text",
		Backend:     store.BackendFile,
		StatePath:   store.DefaultStatePath(),
		RedisAddr:   "localhost:6379",
		RedisPrefix: "orchead:",
		Chaos:       true,
	}
}

// RegisterFlags binds every setting to fs with c's current values as defaults
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "log destination file, '-' for stderr, empty to discard")

	fs.StringVar(&c.Backend, "store", c.Backend, "counter storage: memory, file or redis")
	fs.StringVar(&c.StatePath, "state", c.StatePath, "state file for the file store")
	fs.StringVar(&c.RedisAddr, "redis-addr", c.RedisAddr, "redis address for the redis store")
	fs.StringVar(&c.RedisPassword, "redis-password", c.RedisPassword, "redis password")
	fs.IntVar(&c.RedisDB, "redis-db", c.RedisDB, "redis database number")
	fs.StringVar(&c.RedisPrefix, "redis-prefix", c.RedisPrefix, "key prefix in redis")

	fs.StringVar(&c.Listen, "listen", c.Listen, "remote control address, e.g. :8080; empty disables")
	fs.StringVar(&c.ContentPath, "config", c.ContentPath, "content file with phrases, milestones, quotes (TOML)")

	fs.BoolVar(&c.ReducedMotion, "reduced-motion", c.ReducedMotion, "only use the gentle ambient animation")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "start with sound muted")
	fs.BoolVar(&c.Chaos, "chaos", c.Chaos, "start the ambient animation driver")
}

// StoreOptions maps the storage settings onto store.Options
func (c Config) StoreOptions(sessionID string) store.Options {
	return store.Options{
		Backend:       c.Backend,
		Path:          c.StatePath,
		SessionID:     sessionID,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
		RedisPrefix:   c.RedisPrefix,
	}
}

// Validate checks settings that flags cannot constrain
func (c Config) Validate() error {
	switch c.Backend {
	case store.BackendMemory, store.BackendFile, store.BackendRedis:
	default:
		return fmt.Errorf("%w: %q", store.ErrUnknownBackend, c.Backend)
	}
	if c.Backend == store.BackendFile && c.StatePath == "" {
		return errors.New("file store needs a state path")
	}
	return nil
}

// LoadEnv reads .env style files into the process environment
// Missing files are ignored; variables already set are not overridden
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file %s: %w", p, err)
		}
	}
	return nil
}
