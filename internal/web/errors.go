package web

import (
	"errors"
	"fmt"
	"net/http"

	"calcpad/internal/crypto"
	"calcpad/internal/domain"
	"calcpad/internal/expr/eval"
	"calcpad/internal/services/calculator"
)

var (
	// ErrSessionNotFound is returned for a valid token whose session is gone.
	ErrSessionNotFound = errors.New("session not found")
	errBadRequest      = errors.New("bad request")
)

// classify maps err to an HTTP status and an error kind.
func classify(err error) (int, string) {
	if k := eval.Kind(err); k != eval.KindNone {
		return http.StatusUnprocessableEntity, string(k)
	}
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, domain.ErrorKindBadRequest
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest, domain.ErrorKindBadRequest
	case errors.Is(err, calculator.ErrInvalidKey):
		return http.StatusBadRequest, domain.ErrorKindInvalidKey
	case errors.Is(err, calculator.ErrUnknownKey):
		return http.StatusBadRequest, domain.ErrorKindUnknownKey
	case errors.Is(err, calculator.ErrNoSuchEntry):
		return http.StatusNotFound, domain.ErrorKindNoSuchEntry
	case errors.Is(err, crypto.ErrInvalidToken):
		return http.StatusUnauthorized, domain.ErrorKindInvalidToken
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound, domain.ErrorKindNotFound
	default:
		return http.StatusInternalServerError, domain.ErrorKindInternal
	}
}

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}
