package app

import (
	"context"

	"calcpad/internal/domain"
)

// App is the state shared by interactive commands.
type App struct {
	Wire *Wire
	Calc domain.CalculatorService
}

func New(w *Wire) *App {
	return &App{
		Wire: w,
		Calc: w.NewCalculator(),
	}
}

// Evaluate normalizes and evaluates expression without touching Calc. It goes
// through calcd when a server URL was configured.
func (a *App) Evaluate(ctx context.Context, expression string) (domain.Evaluation, error) {
	if a.Wire.Remote != nil {
		return a.Wire.Remote.Evaluate(ctx, expression)
	}
	normalized := a.Wire.Normalizer.Normalize(expression)
	result, err := a.Wire.Evaluator.Evaluate(normalized)
	if err != nil {
		return domain.Evaluation{Expression: expression, Normalized: normalized}, err
	}
	return domain.Evaluation{Expression: expression, Normalized: normalized, Result: result}, nil
}
