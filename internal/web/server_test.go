package web_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcpad/internal/crypto"
	"calcpad/internal/domain"
	"calcpad/internal/expr/eval"
	"calcpad/internal/expr/normalize"
	"calcpad/internal/services/calculator"
	"calcpad/internal/services/display"
	"calcpad/internal/store"
	"calcpad/internal/web"
)

func newCalc() domain.CalculatorService {
	return calculator.New(
		normalize.Normalizer{},
		eval.Evaluator{},
		store.NewHistoryMemoryStore(0),
		display.New("", ""),
		nil,
	)
}

func newServer(t *testing.T, opts web.Options) (*web.Server, *store.SessionMemoryStore) {
	t.Helper()
	signer, err := crypto.NewSigner("test-secret")
	require.NoError(t, err)
	sessions := store.NewSessionMemoryStore()
	srv := web.NewServer(normalize.Normalizer{}, eval.Evaluator{}, sessions, signer, newCalc, opts)
	return srv, sessions
}

func newTestServer(t *testing.T) (*httptest.Server, *web.Server, *store.SessionMemoryStore) {
	t.Helper()
	srv, sessions := newServer(t, web.Options{})
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts, srv, sessions
}

// do sends body as JSON (nil sends no body) and decodes the response into out.
func do(t *testing.T, ts *httptest.Server, method, path string, body, out any) int {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func createSession(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	var created domain.SessionResponse
	require.Equal(t, http.StatusCreated, do(t, ts, http.MethodPost, "/v1/sessions", nil, &created))
	require.NotEmpty(t, created.Token)
	assert.Equal(t, "0", created.Snapshot.Expression)
	return created.Token
}

func press(t *testing.T, ts *httptest.Server, token string, kind domain.KeyKind, value string) int {
	t.Helper()
	return do(t, ts, http.MethodPost, "/v1/sessions/"+token+"/keys",
		domain.Key{Kind: kind, Value: value}, nil)
}

func TestEvaluate_OK(t *testing.T) {
	ts, _, _ := newTestServer(t)

	var got domain.Evaluation
	status := do(t, ts, http.MethodPost, "/v1/evaluate", domain.EvaluateRequest{Expression: "2×3+√16"}, &got)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.Evaluation{
		Expression: "2×3+√16",
		Normalized: "2*3+sqrt(16)",
		Result:     "10",
	}, got)
}

func TestEvaluate_Errors(t *testing.T) {
	ts, _, _ := newTestServer(t)

	cases := []struct {
		expr   string
		status int
		kind   string
	}{
		{"1÷0", http.StatusUnprocessableEntity, "arithmetic"},
		{"2+", http.StatusUnprocessableEntity, "syntax"},
		{"2^-1", http.StatusUnprocessableEntity, "unsupported"},
		{"", http.StatusUnprocessableEntity, "syntax"},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			var got domain.ErrorResponse
			status := do(t, ts, http.MethodPost, "/v1/evaluate", domain.EvaluateRequest{Expression: tc.expr}, &got)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.kind, got.Kind)
			assert.NotEmpty(t, got.Error)
			assert.Nil(t, got.Snapshot)
		})
	}
}

func TestEvaluate_BadBody(t *testing.T) {
	ts, _, _ := newTestServer(t)

	for name, body := range map[string]string{
		"not json":      "2+2",
		"unknown field": `{"expr":"2+2"}`,
		"trailing":      `{"expression":"1"} {}`,
	} {
		t.Run(name, func(t *testing.T) {
			resp, err := ts.Client().Post(ts.URL+"/v1/evaluate", "application/json", strings.NewReader(body))
			require.NoError(t, err)
			defer resp.Body.Close()

			var got domain.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, domain.ErrorKindBadRequest, got.Kind)
		})
	}
}

func TestEvaluate_BodyTooLarge(t *testing.T) {
	srv, _ := newServer(t, web.Options{MaxBodyBytes: 32})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	var got domain.ErrorResponse
	status := do(t, ts, http.MethodPost, "/v1/evaluate",
		domain.EvaluateRequest{Expression: strings.Repeat("1+", 64) + "1"}, &got)
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
	assert.Equal(t, domain.ErrorKindBadRequest, got.Kind)
}

func TestSession_Lifecycle(t *testing.T) {
	ts, _, sessions := newTestServer(t)
	token := createSession(t, ts)
	assert.Equal(t, 1, sessions.Len())

	require.Equal(t, http.StatusOK, press(t, ts, token, domain.KeyNumber, "2"))
	require.Equal(t, http.StatusOK, press(t, ts, token, domain.KeyOperator, "+"))
	require.Equal(t, http.StatusOK, press(t, ts, token, domain.KeyNumber, "3"))

	var res domain.SessionResult
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodPost, "/v1/sessions/"+token+"/evaluate", nil, &res))
	assert.Equal(t, "5", res.Result)
	assert.Equal(t, "5", res.Snapshot.Expression)
	assert.Equal(t, "2+3", res.Snapshot.PreviousResult)
	assert.Equal(t, []domain.HistoryEntry{{Expression: "2+3", Result: "5"}}, res.Snapshot.History)

	require.Equal(t, http.StatusOK, do(t, ts, http.MethodPost, "/v1/sessions/"+token+"/clear", nil, &res))
	assert.Equal(t, "0", res.Snapshot.Expression)
	assert.Len(t, res.Snapshot.History, 1)

	require.Equal(t, http.StatusOK, do(t, ts, http.MethodPost, "/v1/sessions/"+token+"/history/select",
		domain.SelectRequest{Index: 0}, &res))
	assert.Equal(t, "5", res.Snapshot.Expression)

	var snap domain.SessionResult
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodGet, "/v1/sessions/"+token, nil, &snap))
	assert.Equal(t, res.Snapshot, snap.Snapshot)

	require.Equal(t, http.StatusOK, do(t, ts, http.MethodDelete, "/v1/sessions/"+token+"/history", nil, &res))
	assert.Empty(t, res.Snapshot.History)

	require.Equal(t, http.StatusNoContent, do(t, ts, http.MethodDelete, "/v1/sessions/"+token, nil, nil))
	assert.Equal(t, 0, sessions.Len())

	var gone domain.ErrorResponse
	assert.Equal(t, http.StatusNotFound, do(t, ts, http.MethodGet, "/v1/sessions/"+token, nil, &gone))
	assert.Equal(t, domain.ErrorKindNotFound, gone.Kind)
	assert.Equal(t, http.StatusNotFound, do(t, ts, http.MethodDelete, "/v1/sessions/"+token, nil, &gone))
}

func TestSession_EqualsKeyReturnsResult(t *testing.T) {
	ts, _, _ := newTestServer(t)
	token := createSession(t, ts)

	press(t, ts, token, domain.KeyNumber, "9")
	press(t, ts, token, domain.KeyOperator, "×")
	press(t, ts, token, domain.KeyNumber, "9")

	var res domain.SessionResult
	status := do(t, ts, http.MethodPost, "/v1/sessions/"+token+"/keys", domain.Key{Kind: domain.KeyEquals}, &res)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "81", res.Result)
}

func TestSession_FailedEvaluationShowsIndicator(t *testing.T) {
	ts, _, _ := newTestServer(t)
	token := createSession(t, ts)

	press(t, ts, token, domain.KeyNumber, "1")
	press(t, ts, token, domain.KeyOperator, "÷")
	press(t, ts, token, domain.KeyNumber, "0")

	var got domain.ErrorResponse
	status := do(t, ts, http.MethodPost, "/v1/sessions/"+token+"/evaluate", nil, &got)
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "arithmetic", got.Kind)
	require.NotNil(t, got.Snapshot)
	assert.Equal(t, "Error", got.Snapshot.Expression)
	assert.Empty(t, got.Snapshot.History)
}

func TestSession_RejectsBadInput(t *testing.T) {
	ts, _, _ := newTestServer(t)
	token := createSession(t, ts)

	var got domain.ErrorResponse
	assert.Equal(t, http.StatusBadRequest, do(t, ts, http.MethodPost, "/v1/sessions/"+token+"/keys",
		domain.Key{Kind: domain.KeyNumber, Value: "42"}, &got))
	assert.Equal(t, domain.ErrorKindInvalidKey, got.Kind)

	assert.Equal(t, http.StatusBadRequest, do(t, ts, http.MethodPost, "/v1/sessions/"+token+"/keys",
		domain.Key{Kind: "memory"}, &got))
	assert.Equal(t, domain.ErrorKindUnknownKey, got.Kind)

	assert.Equal(t, http.StatusNotFound, do(t, ts, http.MethodPost, "/v1/sessions/"+token+"/history/select",
		domain.SelectRequest{Index: 3}, &got))
	assert.Equal(t, domain.ErrorKindNoSuchEntry, got.Kind)
}

func TestSession_TokenChecks(t *testing.T) {
	ts, _, _ := newTestServer(t)

	var got domain.ErrorResponse
	assert.Equal(t, http.StatusUnauthorized, do(t, ts, http.MethodGet, "/v1/sessions/forged", nil, &got))
	assert.Equal(t, domain.ErrorKindInvalidToken, got.Kind)

	other, err := crypto.NewSigner("other-secret")
	require.NoError(t, err)
	_, foreign, err := other.Issue()
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do(t, ts, http.MethodGet, "/v1/sessions/"+foreign, nil, &got))

	signer, err := crypto.NewSigner("test-secret")
	require.NoError(t, err)
	_, unknown, err := signer.Issue()
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, do(t, ts, http.MethodGet, "/v1/sessions/"+unknown, nil, &got))
	assert.Equal(t, domain.ErrorKindNotFound, got.Kind)
}

func TestHealthAndNotFound(t *testing.T) {
	ts, _, _ := newTestServer(t)
	createSession(t, ts)

	var health map[string]any
	require.Equal(t, http.StatusOK, do(t, ts, http.MethodGet, "/healthz", nil, &health))
	assert.Equal(t, "ok", health["status"])
	assert.EqualValues(t, 1, health["sessions"])

	var got domain.ErrorResponse
	assert.Equal(t, http.StatusNotFound, do(t, ts, http.MethodGet, "/nope", nil, &got))
	assert.Equal(t, domain.ErrorKindNotFound, got.Kind)
}
