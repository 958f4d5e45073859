package store

import (
	"context"
	"sync"
)

// Memory is an in-process Store
type Memory struct {
	mu   sync.Mutex
	vals map[string]int64
}

func NewMemory() *Memory {
	return &Memory{vals: make(map[string]int64)}
}

func (m *Memory) Get(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.vals[key], nil
}

func (m *Memory) Set(_ context.Context, key string, v int64) error {
	m.mu.Lock()
	m.vals[key] = v
	m.mu.Unlock()
	return nil
}

func (m *Memory) Close() error { return nil }

// MemoryFlags is an in-process Flags
type MemoryFlags struct {
	mu  sync.Mutex
	set map[string]bool
}

func NewMemoryFlags() *MemoryFlags {
	return &MemoryFlags{set: make(map[string]bool)}
}

func (f *MemoryFlags) SetOnce(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.set[key] {
		return false, nil
	}
	f.set[key] = true
	return true, nil
}

func (f *MemoryFlags) Clear(_ context.Context, key string) error {
	f.mu.Lock()
	delete(f.set, key)
	f.mu.Unlock()
	return nil
}
