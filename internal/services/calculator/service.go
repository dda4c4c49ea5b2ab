package calculator

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"calcpad/internal/domain"
	"calcpad/internal/services/display"
)

var (
	// ErrUnknownKey is returned by Press for a key kind it does not handle.
	ErrUnknownKey = errors.New("unknown key kind")
	// ErrInvalidKey is returned by Press for a value the key kind cannot carry.
	ErrInvalidKey = errors.New("invalid key value")
	// ErrNoSuchEntry is returned by SelectIndex for an index outside the history.
	ErrNoSuchEntry = errors.New("no such history entry")
)

// operators lists every value an operator key may carry.
var operators = map[string]bool{
	"+": true, "-": true, "−": true,
	"*": true, "×": true,
	"/": true, "÷": true,
	"%": true, "√": true, "^": true,
	"(": true, ")": true,
}

// Service drives a display and a history from keypad events.
type Service struct {
	normalizer domain.Normalizer
	evaluator  domain.Evaluator
	history    domain.HistoryStore
	display    *display.State
	log        *zap.Logger
}

// New constructs a calculator Service. A nil logger disables logging.
func New(
	normalizer domain.Normalizer,
	evaluator domain.Evaluator,
	history domain.HistoryStore,
	disp *display.State,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		normalizer: normalizer,
		evaluator:  evaluator,
		history:    history,
		display:    disp,
		log:        log,
	}
}

// Press applies one keypad event. For KeyEquals it returns the evaluation
// error, if any, after the display has been updated.
func (s *Service) Press(key domain.Key) error {
	switch key.Kind {
	case domain.KeyNumber:
		if !isDigitOrPoint(key.Value) {
			return fmt.Errorf("%w: number key %q", ErrInvalidKey, key.Value)
		}
		s.display.AppendDigitOrPoint(key.Value)
	case domain.KeyOperator:
		if !operators[key.Value] {
			return fmt.Errorf("%w: operator key %q", ErrInvalidKey, key.Value)
		}
		s.display.AppendOperator(key.Value)
	case domain.KeyEquals:
		_, err := s.Evaluate()
		return err
	case domain.KeyClear:
		s.Clear()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key.Kind)
	}
	return nil
}

// Evaluate normalizes and evaluates the current expression.
//
// On success the display shows the result, the previous-result line shows the
// expression as typed and history gains {expression, result} at index 0. On
// failure the display shows the error indicator and history is unchanged.
func (s *Service) Evaluate() (string, error) {
	expression := s.display.CurrentExpression()
	normalized := s.normalizer.Normalize(expression)

	result, err := s.evaluator.Evaluate(normalized)
	if err != nil {
		s.display.ShowError()
		s.log.Debug("evaluation failed",
			zap.String("expression", expression),
			zap.String("normalized", normalized),
			zap.Error(err),
		)
		return "", err
	}

	s.display.SetPreviousResult(expression)
	s.display.SetCurrentExpression(result)
	s.history.Prepend(domain.HistoryEntry{Expression: expression, Result: result})
	s.log.Debug("evaluated",
		zap.String("expression", expression),
		zap.String("normalized", normalized),
		zap.String("result", result),
	)
	return result, nil
}

// Clear resets the display. History is kept.
func (s *Service) Clear() { s.display.Clear() }

// SelectEntry puts a past result back on the display as text. Nothing is
// recomputed and history is not modified.
func (s *Service) SelectEntry(result string) { s.display.SetCurrentExpression(result) }

// SelectIndex selects the result of history entry index (0 is newest).
func (s *Service) SelectIndex(index int) error {
	entry, ok := s.history.At(index)
	if !ok {
		return fmt.Errorf("%w: index %d of %d", ErrNoSuchEntry, index, s.history.Len())
	}
	s.SelectEntry(entry.Result)
	return nil
}

// History returns a copy of the history, newest first.
func (s *Service) History() []domain.HistoryEntry { return s.history.Entries() }

// ClearHistory drops every history entry.
func (s *Service) ClearHistory() { s.history.Clear() }

// Snapshot returns the display and history as one value.
func (s *Service) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Expression:     s.display.CurrentExpression(),
		PreviousResult: s.display.PreviousResult(),
		History:        s.history.Entries(),
	}
}

func isDigitOrPoint(v string) bool {
	return len(v) == 1 && (v[0] == '.' || (v[0] >= '0' && v[0] <= '9'))
}

// Compile-time assertion that Service implements domain.CalculatorService.
var _ domain.CalculatorService = (*Service)(nil)
