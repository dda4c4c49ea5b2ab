// Package remote provides an HTTP implementation of the
// domain.CalculatorClient interface for talking to calcd.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx responses are returned as *Error values that unwrap to
// the matching sentinel (eval.ErrSyntax, calculator.ErrNoSuchEntry,
// crypto.ErrInvalidToken, web.ErrSessionNotFound and so on), so callers can
// use errors.Is the same way they would against a local calculator.
package remote
