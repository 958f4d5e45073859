package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// File keeps counters in a TOML file, rewritten atomically on every Set
type File struct {
	path string

	mu   sync.Mutex
	vals map[string]int64
}

// OpenFile loads path, treating a missing file as empty
func OpenFile(path string) (*File, error) {
	f := &File{path: path, vals: make(map[string]int64)}
	if _, err := toml.DecodeFile(path, &f.vals); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read state %s: %w", path, err)
	}
	return f, nil
}

func (f *File) Get(_ context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.vals[key], nil
}

func (f *File) Set(_ context.Context, key string, v int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vals[key] = v
	return f.flush()
}

func (f *File) Close() error { return nil }

// Path returns the state file location
func (f *File) Path() string { return f.path }

func (f *File) flush() error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f.vals); err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".state-*.toml")
	if err != nil {
		return fmt.Errorf("create temp state: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace state: %w", err)
	}
	return nil
}

// FileFlags marks a session with an empty file named after the key and session
type FileFlags struct {
	dir       string
	sessionID string
}

// NewFileFlags stores markers in dir for sessionID
func NewFileFlags(dir, sessionID string) *FileFlags {
	return &FileFlags{dir: dir, sessionID: sessionID}
}

func (f *FileFlags) marker(key string) string {
	sid := strings.NewReplacer("/", "_", string(os.PathSeparator), "_").Replace(f.sessionID)
	return filepath.Join(f.dir, key+"-"+sid)
}

func (f *FileFlags) SetOnce(_ context.Context, key string) (bool, error) {
	fh, err := os.OpenFile(f.marker(key), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("session marker: %w", err)
	}
	return true, fh.Close()
}

func (f *FileFlags) Clear(_ context.Context, key string) error {
	err := os.Remove(f.marker(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
