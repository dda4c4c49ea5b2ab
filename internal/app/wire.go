package app

import (
	"net/http"

	"go.uber.org/zap"

	"calcpad/internal/config"
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

// Wire bundles the shared components for the commands.
type Wire struct {
	Settings   *config.Config
	Normalizer domain.Normalizer
	Evaluator  domain.Evaluator
	Remote     domain.CalculatorClient // nil unless Config.ServerURL is set
	Logger     *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	settings := cfg.Settings
	if settings == nil {
		settings = config.DefaultConfig()
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var rc domain.CalculatorClient
	if cfg.ServerURL != "" {
		httpClient := cfg.HTTP
		if httpClient == nil {
			httpClient = http.DefaultClient
		}
		rc = remote.NewHTTP(cfg.ServerURL, httpClient)
	}

	return &Wire{
		Settings:   settings,
		Normalizer: normalize.Normalizer{},
		Evaluator:  eval.Evaluator{},
		Remote:     rc,
		Logger:     logger,
	}, nil
}

// NewCalculator returns a calculator with its own display and history.
func (w *Wire) NewCalculator() domain.CalculatorService {
	return calculator.New(
		w.Normalizer,
		w.Evaluator,
		store.NewHistoryMemoryStore(w.Settings.History.MaxEntries),
		display.New(w.Settings.Display.Placeholder, w.Settings.Display.ErrorIndicator),
		w.Logger.Named("calculator"),
	)
}

// NewServer builds the calcd handler with an in-memory session store.
func (w *Wire) NewServer() (*web.Server, error) {
	signer, err := crypto.NewSigner(w.Settings.Server.SessionSecret)
	if err != nil {
		return nil, err
	}
	if w.Settings.Server.SessionSecret == "" {
		w.Logger.Warn("no session secret configured; tokens will not survive a restart")
	}
	return web.NewServer(
		w.Normalizer,
		w.Evaluator,
		store.NewSessionMemoryStore(),
		signer,
		w.NewCalculator,
		web.Options{
			SessionTTL:    w.Settings.GetSessionTTL(),
			SweepInterval: w.Settings.GetSweepInterval(),
			MaxBodyBytes:  w.Settings.Server.MaxBodyBytes,
			Logger:        w.Logger.Named("web"),
		},
	), nil
}
