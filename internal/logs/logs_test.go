package logs

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"health-portal-server/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "level %q", tt.in)
	}
}

func TestHandlerFormatFollowsEnvironment(t *testing.T) {
	var buf bytes.Buffer

	prod := &config.Config{Environment: "production", Logging: config.LoggingConfig{Level: "info"}}
	slog.New(newHandler(prod, &buf)).Info("ready", "port", "3001")
	assert.Contains(t, buf.String(), `"msg":"ready"`)

	buf.Reset()
	dev := &config.Config{Environment: "development", Logging: config.LoggingConfig{Level: "info"}}
	slog.New(newHandler(dev, &buf)).Info("ready", "port", "3001")
	assert.Contains(t, buf.String(), "msg=ready")
}

func TestHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Environment: "production", Logging: config.LoggingConfig{Level: "warn"}}
	logger := slog.New(newHandler(cfg, &buf))

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestHandlerWritesRotatingFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "portal.log")
	cfg := &config.Config{
		Environment: "production",
		Logging:     config.LoggingConfig{Level: "info", File: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1},
	}

	slog.New(newHandler(cfg, &buf)).Info("to both")
	assert.FileExists(t, path)
	assert.Contains(t, buf.String(), "to both")
}
