package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"calcpad/internal/config"
	"calcpad/internal/logging"
)

func TestNew_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calcpad.log")

	logger, err := logging.New(config.LoggingConfig{Level: "info", Format: "json", File: path}, false)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("evaluated", zap.String("result", "42"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "evaluated", rec["msg"])
	assert.Equal(t, "42", rec["result"])
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calcpad.log")

	logger, err := logging.New(config.LoggingConfig{Level: "error", Format: "console", File: path}, true)
	require.NoError(t, err)

	logger.Debug("visible")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
}

func TestNew_Rejects(t *testing.T) {
	_, err := logging.New(config.LoggingConfig{Level: "loud"}, false)
	assert.Error(t, err)

	_, err = logging.New(config.LoggingConfig{Format: "xml"}, false)
	assert.Error(t, err)
}
