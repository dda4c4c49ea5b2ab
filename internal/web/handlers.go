package web

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"calcpad/internal/domain"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.sessions.Len(),
	})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req domain.EvaluateRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, err, nil)
		return
	}

	normalized := s.normalizer.Normalize(req.Expression)
	result, err := s.evaluator.Evaluate(normalized)
	if err != nil {
		s.log.Debug("evaluate failed", zap.String("expression", req.Expression), zap.Error(err))
		s.writeError(w, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, domain.Evaluation{
		Expression: req.Expression,
		Normalized: normalized,
		Result:     result,
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	id, token, err := s.signer.Issue()
	if err != nil {
		s.writeError(w, err, nil)
		return
	}
	calc := s.newCalc()
	if err := s.sessions.CreateSession(id, calc); err != nil {
		s.writeError(w, err, nil)
		return
	}
	s.log.Debug("session created", zap.Stringer("session", id))
	writeJSON(w, http.StatusCreated, domain.SessionResponse{Token: token, Snapshot: calc.Snapshot()})
}

func (s *Server) handleEndSession(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	id, err := s.signer.Verify(ps.ByName("token"))
	if err != nil {
		s.writeError(w, err, nil)
		return
	}
	if !s.sessions.DeleteSession(id) {
		s.writeError(w, ErrSessionNotFound, nil)
		return
	}
	s.log.Debug("session ended", zap.Stringer("session", id))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	s.withSession(w, ps, func(domain.CalculatorService) (string, error) { return "", nil })
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var key domain.Key
	if err := s.decode(w, r, &key); err != nil {
		s.writeError(w, err, nil)
		return
	}
	s.withSession(w, ps, func(calc domain.CalculatorService) (string, error) {
		return pressKey(calc, key)
	})
}

func (s *Server) handleSessionEvaluate(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	s.withSession(w, ps, func(calc domain.CalculatorService) (string, error) {
		return calc.Evaluate()
	})
}

func (s *Server) handleClear(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	s.withSession(w, ps, func(calc domain.CalculatorService) (string, error) {
		calc.Clear()
		return "", nil
	})
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req domain.SelectRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, err, nil)
		return
	}
	s.withSession(w, ps, func(calc domain.CalculatorService) (string, error) {
		return "", calc.SelectIndex(req.Index)
	})
}

func (s *Server) handleClearHistory(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	s.withSession(w, ps, func(calc domain.CalculatorService) (string, error) {
		calc.ClearHistory()
		return "", nil
	})
}

// withSession resolves the token in ps, runs fn under the session lock and
// writes the resulting SessionResult or error.
func (s *Server) withSession(
	w http.ResponseWriter,
	ps httprouter.Params,
	fn func(calc domain.CalculatorService) (string, error),
) {
	id, err := s.signer.Verify(ps.ByName("token"))
	if err != nil {
		s.writeError(w, err, nil)
		return
	}

	var (
		result string
		snap   domain.Snapshot
	)
	found, err := s.sessions.WithSession(id, func(calc domain.CalculatorService) error {
		var ferr error
		result, ferr = fn(calc)
		snap = calc.Snapshot()
		return ferr
	})
	switch {
	case !found:
		s.writeError(w, ErrSessionNotFound, nil)
	case err != nil:
		s.writeError(w, err, &snap)
	default:
		writeJSON(w, http.StatusOK, domain.SessionResult{Result: result, Snapshot: snap})
	}
}

// pressKey applies key to calc. Equals returns the evaluation result.
func pressKey(calc domain.CalculatorService, key domain.Key) (string, error) {
	if key.Kind == domain.KeyEquals {
		return calc.Evaluate()
	}
	return "", calc.Press(key)
}
