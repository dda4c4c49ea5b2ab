package eval

import "errors"

var (
	// ErrSyntax is returned when the input does not parse as an expression.
	ErrSyntax = errors.New("syntax error")
	// ErrArithmetic is returned for well-formed input with no finite value.
	ErrArithmetic = errors.New("arithmetic error")
	// ErrUnsupported is returned for glyphs, identifiers or nesting outside the grammar.
	ErrUnsupported = errors.New("unsupported construct")
)

// ErrorKind names an evaluation failure class on the wire.
type ErrorKind string

const (
	KindNone        ErrorKind = ""
	KindSyntax      ErrorKind = "syntax"
	KindArithmetic  ErrorKind = "arithmetic"
	KindUnsupported ErrorKind = "unsupported"
)

// Kind reports which evaluation failure err wraps, or KindNone.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrSyntax):
		return KindSyntax
	case errors.Is(err, ErrArithmetic):
		return KindArithmetic
	case errors.Is(err, ErrUnsupported):
		return KindUnsupported
	default:
		return KindNone
	}
}

// Sentinel returns the sentinel error for kind, or nil for unknown kinds.
func Sentinel(kind ErrorKind) error {
	switch kind {
	case KindSyntax:
		return ErrSyntax
	case KindArithmetic:
		return ErrArithmetic
	case KindUnsupported:
		return ErrUnsupported
	default:
		return nil
	}
}
