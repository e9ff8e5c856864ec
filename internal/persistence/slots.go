package persistence

import (
	"context"
	"errors"
	"sync"
)

// ErrSlotNotFound is returned when a named slot has no value.
var ErrSlotNotFound = errors.New("persistence: slot not found")

// SlotStore is the durable named-slot storage contract. Each slot holds one
// text value; the document snapshot and the session markers each occupy one
// slot.
type SlotStore interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, value string) error
	Delete(ctx context.Context, name string) error
}

// MemorySlots is an in-memory SlotStore used by tests and as a fallback when
// no durable backend is configured.
type MemorySlots struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemorySlots returns an empty in-memory slot store.
func NewMemorySlots() *MemorySlots {
	return &MemorySlots{slots: make(map[string]string)}
}

// Get returns the value held by the named slot.
func (m *MemorySlots) Get(_ context.Context, name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.slots[name]
	if !ok {
		return "", ErrSlotNotFound
	}
	return value, nil
}

// Set stores the value in the named slot, replacing any previous value.
func (m *MemorySlots) Set(_ context.Context, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[name] = value
	return nil
}

// Delete removes the named slot. Deleting an absent slot is a no-op.
func (m *MemorySlots) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.slots, name)
	return nil
}
