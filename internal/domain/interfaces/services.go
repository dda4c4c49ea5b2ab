package interfaces

import domaintypes "calcpad/internal/domain/types"

// Normalizer rewrites calculator glyphs into plain arithmetic syntax.
type Normalizer interface {
	Normalize(expression string) string
}

// Evaluator computes a normalized expression and formats the result.
type Evaluator interface {
	Evaluate(normalized string) (string, error)
}

// CalculatorService is the keypad controller: it owns a display and a history.
type CalculatorService interface {
	Press(key domaintypes.Key) error
	Evaluate() (string, error)
	Clear()
	SelectEntry(result string)
	SelectIndex(index int) error
	History() []domaintypes.HistoryEntry
	ClearHistory()
	Snapshot() domaintypes.Snapshot
}
