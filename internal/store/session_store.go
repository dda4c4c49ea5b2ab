package store

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"calcpad/internal/domain"
)

// ErrSessionExists is returned when creating a session under a live id.
var ErrSessionExists = errors.New("session already exists")

type sessionEntry struct {
	mu       sync.Mutex // serializes events for one calculator
	calc     domain.CalculatorService
	lastSeen atomic.Int64 // unix nanoseconds
}

// SessionMemoryStore holds live calculator sessions in memory. Sessions are
// lost on process exit.
type SessionMemoryStore struct {
	mu       sync.RWMutex
	sessions map[domain.SessionID]*sessionEntry
	now      func() time.Time
}

// NewSessionMemoryStore returns an empty store using the wall clock.
func NewSessionMemoryStore() *SessionMemoryStore {
	return &SessionMemoryStore{
		sessions: make(map[domain.SessionID]*sessionEntry),
		now:      time.Now,
	}
}

// CreateSession registers calc under id.
func (s *SessionMemoryStore) CreateSession(id domain.SessionID, calc domain.CalculatorService) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; ok {
		return ErrSessionExists
	}
	e := &sessionEntry{calc: calc}
	e.lastSeen.Store(s.now().UnixNano())
	s.sessions[id] = e
	return nil
}

// WithSession runs fn with exclusive access to the session's calculator and
// marks the session as seen.
func (s *SessionMemoryStore) WithSession(
	id domain.SessionID,
	fn func(calc domain.CalculatorService) error,
) (bool, error) {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSeen.Store(s.now().UnixNano())
	return true, fn(e.calc)
}

// DeleteSession removes id and reports whether it existed.
func (s *SessionMemoryStore) DeleteSession(id domain.SessionID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

// SweepSessions removes sessions not seen for longer than idle and returns
// how many were removed.
func (s *SessionMemoryStore) SweepSessions(now time.Time, idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		if now.Sub(time.Unix(0, e.lastSeen.Load())) > idle {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live sessions.
func (s *SessionMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Compile-time assertion that SessionMemoryStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionMemoryStore)(nil)
