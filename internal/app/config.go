package app

import (
	"net/http"

	"go.uber.org/zap"

	"calcpad/internal/config"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Settings  *config.Config // loaded settings; nil selects config.DefaultConfig()
	Logger    *zap.Logger    // optional; defaults to a nop logger
	ServerURL string         // calcd base URL, e.g. http://127.0.0.1:8080; empty evaluates locally
	HTTP      *http.Client   // optional; defaults to http.DefaultClient
}
