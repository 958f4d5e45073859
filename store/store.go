// Package store persists the counters and the once-per-session flag
//
// Backends:
//   - memory: process lifetime only, for tests and --store=memory runs
//   - file: a TOML state file plus marker files in the temp dir
//   - redis: shared counters and SETNX session flags with a TTL
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
)

// Store is durable integer storage; a missing key reads as zero
type Store interface {
	Get(ctx context.Context, key string) (int64, error)
	Set(ctx context.Context, key string, v int64) error
	Close() error
}

// Flags is storage scoped to one terminal session
type Flags interface {
	// SetOnce sets key and reports whether it was newly set in this session
	SetOnce(ctx context.Context, key string) (bool, error)
	Clear(ctx context.Context, key string) error
}

// Backend names
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// ErrUnknownBackend is returned by Open for an unrecognised backend name
var ErrUnknownBackend = errors.New("unknown storage backend")

// Options selects and configures a backend
type Options struct {
	Backend   string
	Path      string // file: state file
	FlagDir   string // file: marker directory, defaults to the OS temp dir
	SessionID string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// Open builds the counter store and session flags for opts
func Open(ctx context.Context, opts Options) (Store, Flags, error) {
	switch opts.Backend {
	case BackendMemory, "":
		return NewMemory(), NewMemoryFlags(), nil

	case BackendFile:
		path := opts.Path
		if path == "" {
			path = DefaultStatePath()
		}
		st, err := OpenFile(path)
		if err != nil {
			return nil, nil, err
		}
		dir := opts.FlagDir
		if dir == "" {
			dir = os.TempDir()
		}
		return st, NewFileFlags(dir, opts.SessionID), nil

	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to ping Redis at %s: %w", opts.RedisAddr, err)
		}
		st := NewRedis(client, opts.RedisPrefix)
		return st, NewRedisFlags(client, opts.RedisPrefix, opts.SessionID), nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
}

// DefaultStatePath is the state file under the user config dir
func DefaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "orchead", "state.toml")
}
