package remote_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcpad/internal/crypto"
	"calcpad/internal/domain"
	"calcpad/internal/expr/eval"
	"calcpad/internal/expr/normalize"
	"calcpad/internal/remote"
	"calcpad/internal/services/calculator"
	"calcpad/internal/services/display"
	"calcpad/internal/store"
	"calcpad/internal/web"
)

func newClient(t *testing.T) *remote.HTTP {
	t.Helper()
	signer, err := crypto.NewSigner("")
	require.NoError(t, err)
	srv := web.NewServer(
		normalize.Normalizer{},
		eval.Evaluator{},
		store.NewSessionMemoryStore(),
		signer,
		func() domain.CalculatorService {
			return calculator.New(normalize.Normalizer{}, eval.Evaluator{},
				store.NewHistoryMemoryStore(0), display.New("", ""), nil)
		},
		web.Options{},
	)
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return remote.NewHTTP(ts.URL+"/", ts.Client())
}

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return c
}

func TestEvaluate(t *testing.T) {
	c := newClient(t)

	got, err := c.Evaluate(ctx(t), "50%+2^3")
	require.NoError(t, err)
	assert.Equal(t, "(50/100)+pow(2,3)", got.Normalized)
	assert.Equal(t, "8.5", got.Result)

	_, err = c.Evaluate(ctx(t), "1÷0")
	assert.ErrorIs(t, err, eval.ErrArithmetic)

	var rerr *remote.Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, http.StatusUnprocessableEntity, rerr.Status)
	assert.Equal(t, "arithmetic", rerr.Kind)
}

func TestSessionRoundTrip(t *testing.T) {
	c := newClient(t)
	cx := ctx(t)

	token, snap, err := c.CreateSession(cx)
	require.NoError(t, err)
	assert.Equal(t, "0", snap.Expression)

	for _, k := range []domain.Key{
		{Kind: domain.KeyNumber, Value: "1"},
		{Kind: domain.KeyNumber, Value: "2"},
		{Kind: domain.KeyOperator, Value: "÷"},
		{Kind: domain.KeyNumber, Value: "4"},
	} {
		snap, err = c.Press(cx, token, k)
		require.NoError(t, err)
	}
	assert.Equal(t, "12÷4", snap.Expression)

	result, snap, err := c.EvaluateSession(cx, token)
	require.NoError(t, err)
	assert.Equal(t, "3", result)
	assert.Equal(t, "12÷4", snap.PreviousResult)

	snap, err = c.Clear(cx, token)
	require.NoError(t, err)
	assert.Equal(t, "0", snap.Expression)

	snap, err = c.SelectIndex(cx, token, 0)
	require.NoError(t, err)
	assert.Equal(t, "3", snap.Expression)

	_, err = c.SelectIndex(cx, token, 5)
	assert.ErrorIs(t, err, calculator.ErrNoSuchEntry)

	snap, err = c.ClearHistory(cx, token)
	require.NoError(t, err)
	assert.Empty(t, snap.History)

	snap, err = c.Snapshot(cx, token)
	require.NoError(t, err)
	assert.Equal(t, "3", snap.Expression)

	require.NoError(t, c.EndSession(cx, token))
	_, err = c.Snapshot(cx, token)
	assert.ErrorIs(t, err, web.ErrSessionNotFound)
}

func TestEvaluateSession_FailureReturnsSnapshot(t *testing.T) {
	c := newClient(t)
	cx := ctx(t)

	token, _, err := c.CreateSession(cx)
	require.NoError(t, err)
	_, err = c.Press(cx, token, domain.Key{Kind: domain.KeyOperator, Value: "×"})
	require.NoError(t, err)

	result, snap, err := c.EvaluateSession(cx, token)
	assert.ErrorIs(t, err, eval.ErrSyntax)
	assert.Empty(t, result)
	assert.Equal(t, "Error", snap.Expression)
}

func TestErrors(t *testing.T) {
	c := newClient(t)
	cx := ctx(t)

	_, err := c.Snapshot(cx, "forged")
	assert.ErrorIs(t, err, crypto.ErrInvalidToken)

	token, _, err := c.CreateSession(cx)
	require.NoError(t, err)

	_, err = c.Press(cx, token, domain.Key{Kind: domain.KeyNumber, Value: "10"})
	assert.ErrorIs(t, err, calculator.ErrInvalidKey)

	_, err = c.Press(cx, token, domain.Key{Kind: "memory"})
	assert.ErrorIs(t, err, calculator.ErrUnknownKey)
}

func TestContextCancelled(t *testing.T) {
	c := newClient(t)
	cx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Evaluate(cx, "1+1")
	assert.ErrorIs(t, err, context.Canceled)
}
