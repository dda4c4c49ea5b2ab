package web

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"calcpad/internal/crypto"
	"calcpad/internal/domain"
)

const shutdownTimeout = 5 * time.Second

// Options tunes a Server. Zero fields select defaults.
type Options struct {
	SessionTTL    time.Duration
	SweepInterval time.Duration
	MaxBodyBytes  int64
	Logger        *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.SessionTTL <= 0 {
		o.SessionTTL = 30 * time.Minute
	}
	if o.SweepInterval <= 0 {
		o.SweepInterval = time.Minute
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = 64 << 10
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Server is the calcd HTTP handler.
type Server struct {
	router     *httprouter.Router
	normalizer domain.Normalizer
	evaluator  domain.Evaluator
	sessions   domain.SessionStore
	signer     *crypto.Signer
	newCalc    func() domain.CalculatorService

	opts     Options
	log      *zap.Logger
	upgrader websocket.Upgrader

	quit     chan struct{}
	quitOnce sync.Once
}

// NewServer builds a Server. newCalc is called once per created session.
func NewServer(
	normalizer domain.Normalizer,
	evaluator domain.Evaluator,
	sessions domain.SessionStore,
	signer *crypto.Signer,
	newCalc func() domain.CalculatorService,
	opts Options,
) *Server {
	opts = opts.withDefaults()
	s := &Server{
		router:     httprouter.New(),
		normalizer: normalizer,
		evaluator:  evaluator,
		sessions:   sessions,
		signer:     signer,
		newCalc:    newCalc,
		opts:       opts,
		log:        opts.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Sessions are authorized by token, not origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		quit: make(chan struct{}),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	s.router.POST("/v1/evaluate", s.handleEvaluate)

	s.router.POST("/v1/sessions", s.handleCreateSession)
	s.router.GET("/v1/sessions/:token", s.handleSnapshot)
	s.router.DELETE("/v1/sessions/:token", s.handleEndSession)
	s.router.POST("/v1/sessions/:token/keys", s.handleKey)
	s.router.POST("/v1/sessions/:token/evaluate", s.handleSessionEvaluate)
	s.router.POST("/v1/sessions/:token/clear", s.handleClear)
	s.router.POST("/v1/sessions/:token/history/select", s.handleSelect)
	s.router.DELETE("/v1/sessions/:token/history", s.handleClearHistory)
	s.router.GET("/v1/sessions/:token/ws", s.handleSocket)

	s.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, domain.ErrorResponse{
			Error: "no route for " + r.Method + " " + r.URL.Path,
			Kind:  domain.ErrorKindNotFound,
		})
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.router.ServeHTTP(w, r)
	s.log.Debug("request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// Janitor drops idle sessions every SweepInterval until ctx is done.
func (s *Server) Janitor(ctx context.Context) {
	ticker := time.NewTicker(s.opts.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := s.sessions.SweepSessions(now, s.opts.SessionTTL); n > 0 {
				s.log.Info("expired idle sessions",
					zap.Int("removed", n),
					zap.Int("live", s.sessions.Len()),
				)
			}
		}
	}
}

// Close tells open websockets to shut down. It is safe to call more than once.
func (s *Server) Close() {
	s.quitOnce.Do(func() { close(s.quit) })
}

// Run serves hs with s as its handler and runs the janitor until ctx is done,
// then shuts hs down gracefully.
func (s *Server) Run(ctx context.Context, hs *http.Server) error {
	hs.Handler = s
	hs.RegisterOnShutdown(s.Close)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("listening", zap.String("addr", hs.Addr))
		if err := hs.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		s.Janitor(ctx)
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("shutting down")
		return hs.Shutdown(sctx)
	})
	return g.Wait()
}
