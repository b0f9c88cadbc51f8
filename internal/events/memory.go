package events

import (
	"context"
	"sync"
)

// MemoryLog keeps the last Capacity events in process memory
type MemoryLog struct {
	mu     sync.Mutex // Guards events
	events []Event    // oldest first
}

// NewMemoryLog returns an empty in-process log
func NewMemoryLog() *MemoryLog {
	return &MemoryLog{}
}

// Publish appends e, dropping the oldest events beyond Capacity
func (m *MemoryLog) Publish(_ context.Context, e Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
	if over := len(m.events) - Capacity; over > 0 {
		m.events = append(m.events[:0:0], m.events[over:]...) // Copy so the old backing array can be freed
	}
	return nil
}

// Recent returns up to limit events, newest first
func (m *MemoryLog) Recent(_ context.Context, limit int) ([]Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := min(limit, len(m.events))
	out := make([]Event, 0, max(n, 0))
	for i := len(m.events) - 1; i >= 0 && len(out) < n; i-- { // Walk backwards from the newest
		out = append(out, m.events[i])
	}
	return out, nil
}

// Close is a no-op; there is nothing to release
func (m *MemoryLog) Close() error { return nil }
