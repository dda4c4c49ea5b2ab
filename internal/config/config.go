package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"calcpad/internal/expr/eval"
)

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all calcpad configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	History HistoryConfig `yaml:"history"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig configures the calculator display.
type DisplayConfig struct {
	Placeholder    string `yaml:"placeholder"`
	ErrorIndicator string `yaml:"error_indicator"`
}

// HistoryConfig configures evaluation history.
type HistoryConfig struct {
	MaxEntries int `yaml:"max_entries"` // 0 keeps every entry
}

// ServerConfig configures calcd.
type ServerConfig struct {
	Addr          string `yaml:"addr"`
	SessionTTL    string `yaml:"session_ttl"`
	SweepInterval string `yaml:"sweep_interval"`
	ReadTimeout   string `yaml:"read_timeout"`
	WriteTimeout  string `yaml:"write_timeout"`
	SessionSecret string `yaml:"session_secret"` // empty: random per process
	MaxBodyBytes  int64  `yaml:"max_body_bytes"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
	File   string `yaml:"file"`   // empty: stderr
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Placeholder:    "0",
			ErrorIndicator: "Error",
		},
		History: HistoryConfig{
			MaxEntries: 0,
		},
		Server: ServerConfig{
			Addr:          "127.0.0.1:8080",
			SessionTTL:    "30m",
			SweepInterval: "1m",
			ReadTimeout:   "10s",
			WriteTimeout:  "10s",
			MaxBodyBytes:  64 << 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "calcpad.yaml"
	}
	return filepath.Join(dir, "calcpad", "config.yaml")
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	// session_secret may be set; keep the file private.
	if err := writeFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CALCPAD_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CALCPAD_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("CALCPAD_SESSION_SECRET"); v != "" {
		c.Server.SessionSecret = v
	}
	if v := os.Getenv("CALCPAD_ERROR_INDICATOR"); v != "" {
		c.Display.ErrorIndicator = v
	}
}

// Validate reports the first problem found in c.
func (c *Config) Validate() error {
	if c.Display.Placeholder == "" {
		return fmt.Errorf("%w: display.placeholder is empty", ErrInvalid)
	}
	if c.Display.ErrorIndicator == "" {
		return fmt.Errorf("%w: display.error_indicator is empty", ErrInvalid)
	}
	if c.Display.ErrorIndicator == c.Display.Placeholder {
		return fmt.Errorf("%w: display.error_indicator equals display.placeholder", ErrInvalid)
	}
	if looksNumeric(c.Display.ErrorIndicator) {
		return fmt.Errorf("%w: display.error_indicator %q reads as a number", ErrInvalid, c.Display.ErrorIndicator)
	}
	if c.History.MaxEntries < 0 {
		return fmt.Errorf("%w: history.max_entries is negative", ErrInvalid)
	}
	for name, v := range map[string]string{
		"server.session_ttl":    c.Server.SessionTTL,
		"server.sweep_interval": c.Server.SweepInterval,
		"server.read_timeout":   c.Server.ReadTimeout,
		"server.write_timeout":  c.Server.WriteTimeout,
	} {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalid, name)
		}
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: server.max_body_bytes must be positive", ErrInvalid)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format %q (want console or json)", ErrInvalid, c.Logging.Format)
	}
	return nil
}

// GetSessionTTL returns server.session_ttl as a duration.
func (c *Config) GetSessionTTL() time.Duration {
	return parseDuration(c.Server.SessionTTL, 30*time.Minute)
}

// GetSweepInterval returns server.sweep_interval as a duration.
func (c *Config) GetSweepInterval() time.Duration {
	return parseDuration(c.Server.SweepInterval, time.Minute)
}

// GetReadTimeout returns server.read_timeout as a duration.
func (c *Config) GetReadTimeout() time.Duration {
	return parseDuration(c.Server.ReadTimeout, 10*time.Second)
}

// GetWriteTimeout returns server.write_timeout as a duration.
func (c *Config) GetWriteTimeout() time.Duration {
	return parseDuration(c.Server.WriteTimeout, 10*time.Second)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// looksNumeric reports whether s could be mistaken for a result: it either
// evaluates or parses as a float (NaN and Infinity included).
func looksNumeric(s string) bool {
	if _, err := eval.Evaluate(s); err == nil {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
