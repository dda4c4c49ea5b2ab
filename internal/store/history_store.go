package store

import (
	"sync"

	"calcpad/internal/domain"
)

// HistoryMemoryStore keeps a calculator's history in memory, newest first.
type HistoryMemoryStore struct {
	mu         sync.RWMutex
	entries    []domain.HistoryEntry
	maxEntries int
}

// NewHistoryMemoryStore returns an empty store. A positive maxEntries drops
// the oldest entries beyond that count; zero keeps every entry.
func NewHistoryMemoryStore(maxEntries int) *HistoryMemoryStore {
	return &HistoryMemoryStore{maxEntries: maxEntries}
}

// Prepend inserts entry at index 0.
func (s *HistoryMemoryStore) Prepend(entry domain.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, domain.HistoryEntry{})
	copy(s.entries[1:], s.entries)
	s.entries[0] = entry
	if s.maxEntries > 0 && len(s.entries) > s.maxEntries {
		clear(s.entries[s.maxEntries:])
		s.entries = s.entries[:s.maxEntries]
	}
}

// Entries returns a copy of the history, newest first.
func (s *HistoryMemoryStore) Entries() []domain.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// At returns the entry at index, counting from the newest.
func (s *HistoryMemoryStore) At(index int) (domain.HistoryEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.entries) {
		return domain.HistoryEntry{}, false
	}
	return s.entries[index], true
}

// Len returns the number of entries.
func (s *HistoryMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear drops every entry.
func (s *HistoryMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// Compile-time assertion that HistoryMemoryStore implements domain.HistoryStore.
var _ domain.HistoryStore = (*HistoryMemoryStore)(nil)
