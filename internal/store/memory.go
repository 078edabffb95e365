package store

import (
	"context"
	"sync"
)

// Memory is an in-process Store. Writes counts every successful Set, which
// tests use to observe autosave behavior.
type Memory struct {
	mu     sync.Mutex
	kv     map[string]string
	writes []string
	Err    error // returned by Set when non-nil
}

func NewMemory() *Memory { return &Memory{kv: map[string]string{}} }

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.kv[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.kv[key] = value
	m.writes = append(m.writes, value)
	return nil
}

func (m *Memory) Close() error { return nil }

// Writes returns the values passed to successful Set calls, oldest first.
func (m *Memory) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.writes...)
}
