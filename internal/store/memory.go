package store

import (
	"context"
	"sync"
)

// Memory is an in-process Store. FailSaves makes every Save fail with the
// given error, which tests use to exercise storage-failure paths.
type Memory struct {
	mu        sync.Mutex
	data      map[string][]byte
	saves     int
	FailSaves error
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Load implements Store.
func (m *Memory) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Save implements Store.
func (m *Memory) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves != nil {
		return &Error{Op: "save", Key: key, Err: m.FailSaves}
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	m.saves++
	return nil
}

// Saves returns how many saves succeeded.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
