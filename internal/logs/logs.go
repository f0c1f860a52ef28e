package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"health-portal-server/internal/config"
)

// New builds the process logger. Output always goes to stdout; when LOG_FILE
// is set it is also written to a rotating file.
func New(cfg *config.Config) *slog.Logger {
	return slog.New(newHandler(cfg, os.Stdout)).With(
		slog.String("service", "health-portal-server"),
		slog.String("env", cfg.Environment),
	)
}

func newHandler(cfg *config.Config, stdout io.Writer) slog.Handler {
	writers := []io.Writer{stdout}

	if cfg.Logging.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.Logging.File,
			MaxSize:    cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAge:     cfg.Logging.MaxAgeDays,
			Compress:   true,
		})
	}

	w := io.MultiWriter(writers...)
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Logging.Level),
		AddSource: cfg.IsDevelopment(),
	}
	if cfg.IsDevelopment() {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
