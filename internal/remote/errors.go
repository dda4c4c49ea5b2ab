package remote

import (
	"fmt"

	"calcpad/internal/crypto"
	"calcpad/internal/domain"
	"calcpad/internal/expr/eval"
	"calcpad/internal/services/calculator"
	"calcpad/internal/web"
)

// Error is a non-2xx response from calcd.
type Error struct {
	Method  string
	URL     string
	Status  int
	Kind    string
	Message string
	// Snapshot is the session state after the failed request, when the
	// server sent one.
	Snapshot *domain.Snapshot
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("calcd %s %s: status %d", e.Method, e.URL, e.Status)
	}
	return fmt.Sprintf("calcd %s %s: %s", e.Method, e.URL, e.Message)
}

// Unwrap returns the sentinel matching Kind, or nil.
func (e *Error) Unwrap() error {
	if err := eval.Sentinel(eval.ErrorKind(e.Kind)); err != nil {
		return err
	}
	switch e.Kind {
	case domain.ErrorKindInvalidKey:
		return calculator.ErrInvalidKey
	case domain.ErrorKindUnknownKey:
		return calculator.ErrUnknownKey
	case domain.ErrorKindNoSuchEntry:
		return calculator.ErrNoSuchEntry
	case domain.ErrorKindInvalidToken:
		return crypto.ErrInvalidToken
	case domain.ErrorKindNotFound:
		return web.ErrSessionNotFound
	default:
		return nil
	}
}
