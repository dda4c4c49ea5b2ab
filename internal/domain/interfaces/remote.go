package interfaces

import (
	"context"

	domaintypes "calcpad/internal/domain/types"
)

// CalculatorClient talks to a calcd server. Session methods take the token
// returned by CreateSession.
type CalculatorClient interface {
	Evaluate(ctx context.Context, expression string) (domaintypes.Evaluation, error)

	CreateSession(ctx context.Context) (string, domaintypes.Snapshot, error)
	Press(ctx context.Context, token string, key domaintypes.Key) (domaintypes.Snapshot, error)
	EvaluateSession(ctx context.Context, token string) (string, domaintypes.Snapshot, error)
	Clear(ctx context.Context, token string) (domaintypes.Snapshot, error)
	SelectIndex(ctx context.Context, token string, index int) (domaintypes.Snapshot, error)
	ClearHistory(ctx context.Context, token string) (domaintypes.Snapshot, error)
	Snapshot(ctx context.Context, token string) (domaintypes.Snapshot, error)
	EndSession(ctx context.Context, token string) error
}
