package interfaces

import (
	"time"

	domaintypes "calcpad/internal/domain/types"
)

// HistoryStore keeps completed evaluations, newest first.
type HistoryStore interface {
	Prepend(entry domaintypes.HistoryEntry)
	Entries() []domaintypes.HistoryEntry
	At(index int) (domaintypes.HistoryEntry, bool)
	Len() int
	Clear()
}

// SessionStore holds live calculator sessions and serializes access to each.
type SessionStore interface {
	CreateSession(id domaintypes.SessionID, calc CalculatorService) error
	// WithSession runs fn while holding the session's lock. It reports false
	// when no session with id exists.
	WithSession(
		id domaintypes.SessionID,
		fn func(calc CalculatorService) error,
	) (bool, error)
	DeleteSession(id domaintypes.SessionID) bool
	SweepSessions(now time.Time, idle time.Duration) int
	Len() int
}
