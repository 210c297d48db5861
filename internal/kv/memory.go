package kv

import (
	"context"
	"sync"
)

// Memory is a process-local Store. It is durable only for the lifetime of
// the value, which is enough to simulate restarts in tests by reusing one
// Memory across two stores.
type Memory struct {
	mu     sync.Mutex
	data   map[string]string
	closed bool

	// FailPuts makes every Put fail with the given error. Tests use it to
	// exercise persistence failures.
	FailPuts error
}

// NewMemory returns an empty open store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get returns the value under key.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return "", false, ErrClosed
	}
	v, ok := m.data[key]
	return v, ok, nil
}

// Put stores value under key, or returns FailPuts when it is set.
func (m *Memory) Put(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if m.FailPuts != nil {
		return m.FailPuts
	}
	m.data[key] = value
	return nil
}

// Delete removes key.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	delete(m.data, key)
	return nil
}

// Close marks the store closed. Reopen makes it usable again with its
// contents intact.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Reopen clears the closed flag.
func (m *Memory) Reopen() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = false
}
