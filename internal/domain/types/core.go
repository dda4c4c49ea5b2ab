package types

// SessionID identifies one calculator session held by the server.
type SessionID string

// String returns the string form of the session identifier.
func (id SessionID) String() string { return string(id) }

// KeyKind classifies a keypad key.
type KeyKind string

const (
	// KeyNumber appends a digit or decimal point.
	KeyNumber KeyKind = "number"
	// KeyOperator appends an operator glyph (+ − × ÷ % √ ^ and parentheses).
	KeyOperator KeyKind = "operator"
	// KeyEquals evaluates the current expression.
	KeyEquals KeyKind = "equals"
	// KeyClear resets the display.
	KeyClear KeyKind = "clear"
)

// String returns the string form of the key kind.
func (k KeyKind) String() string { return string(k) }

// Key is a single keypad press.
type Key struct {
	Kind  KeyKind `json:"kind"`
	Value string  `json:"value,omitempty"`
}
