package flash

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	toasts    []Toast
	expiresAt time.Time
}

// InMemoryStore keeps toasts in process memory. Used when no redis URL is
// configured.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewInMemory creates a store whose entries expire ttl after the last push.
func NewInMemory(ttl time.Duration) *InMemoryStore {
	return &InMemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *InMemoryStore) Push(_ context.Context, sessionID string, toast Toast) error {
	if sessionID == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry := s.entries[sessionID]
	if now.After(entry.expiresAt) {
		entry.toasts = nil
	}
	entry.toasts = append(entry.toasts, toast)
	entry.expiresAt = now.Add(s.ttl)
	s.entries[sessionID] = entry
	s.sweepLocked(now)
	return nil
}

func (s *InMemoryStore) Pop(_ context.Context, sessionID string) ([]Toast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok {
		return nil, nil
	}
	delete(s.entries, sessionID)
	if s.now().After(entry.expiresAt) {
		return nil, nil
	}
	return entry.toasts, nil
}

// Len reports how many sessions have pending toasts.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *InMemoryStore) sweepLocked(now time.Time) {
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}
