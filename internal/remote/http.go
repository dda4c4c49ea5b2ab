package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"calcpad/internal/domain"
)

// HTTP is a calcd client.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the server at base. A nil client selects
// http.DefaultClient.
func NewHTTP(base string, hc *http.Client) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

func (c *HTTP) Evaluate(ctx context.Context, expression string) (domain.Evaluation, error) {
	var out domain.Evaluation
	err := c.do(ctx, http.MethodPost, "/v1/evaluate", domain.EvaluateRequest{Expression: expression}, &out)
	return out, err
}

func (c *HTTP) CreateSession(ctx context.Context) (string, domain.Snapshot, error) {
	var out domain.SessionResponse
	if err := c.do(ctx, http.MethodPost, "/v1/sessions", nil, &out); err != nil {
		return "", domain.Snapshot{}, err
	}
	return out.Token, out.Snapshot, nil
}

func (c *HTTP) Press(ctx context.Context, token string, key domain.Key) (domain.Snapshot, error) {
	res, err := c.session(ctx, http.MethodPost, token, "/keys", key)
	return res.Snapshot, err
}

func (c *HTTP) EvaluateSession(ctx context.Context, token string) (string, domain.Snapshot, error) {
	res, err := c.session(ctx, http.MethodPost, token, "/evaluate", nil)
	return res.Result, res.Snapshot, err
}

func (c *HTTP) Clear(ctx context.Context, token string) (domain.Snapshot, error) {
	res, err := c.session(ctx, http.MethodPost, token, "/clear", nil)
	return res.Snapshot, err
}

func (c *HTTP) SelectIndex(ctx context.Context, token string, index int) (domain.Snapshot, error) {
	res, err := c.session(ctx, http.MethodPost, token, "/history/select", domain.SelectRequest{Index: index})
	return res.Snapshot, err
}

func (c *HTTP) ClearHistory(ctx context.Context, token string) (domain.Snapshot, error) {
	res, err := c.session(ctx, http.MethodDelete, token, "/history", nil)
	return res.Snapshot, err
}

func (c *HTTP) Snapshot(ctx context.Context, token string) (domain.Snapshot, error) {
	res, err := c.session(ctx, http.MethodGet, token, "", nil)
	return res.Snapshot, err
}

func (c *HTTP) EndSession(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/v1/sessions/"+url.PathEscape(token), nil, nil)
}

// session calls a per-session route. When the server rejects the request but
// reports the session state anyway, that state is returned with the error.
func (c *HTTP) session(ctx context.Context, method, token, suffix string, in any) (domain.SessionResult, error) {
	var out domain.SessionResult
	err := c.do(ctx, method, "/v1/sessions/"+url.PathEscape(token)+suffix, in, &out)
	var rerr *Error
	if errors.As(err, &rerr) && rerr.Snapshot != nil {
		out.Snapshot = *rerr.Snapshot
	}
	return out, err
}

func (c *HTTP) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	u := c.Base + path
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		rerr := &Error{Method: method, URL: u, Status: resp.StatusCode}
		var er domain.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&er) == nil {
			rerr.Kind = er.Kind
			rerr.Message = er.Error
			rerr.Snapshot = er.Snapshot
		}
		return rerr
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Compile-time assertion that HTTP implements domain.CalculatorClient.
var _ domain.CalculatorClient = (*HTTP)(nil)
