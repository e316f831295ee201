package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/wigac/wigac-backend/internal/config"
)

const serviceName = "wigac-backend"

// redactedKeys are attribute keys whose values never reach the log output.
var redactedKeys = map[string]bool{
	"password":      true,
	"password_hash": true,
	"token":         true,
	"refresh_token": true,
	"authorization": true,
	"smtp_password": true,
}

// NewLogger builds the process logger on stderr and installs it as the slog
// default. Every record carries the service, build version and environment.
// An empty format picks json in production and text with source elsewhere.
func NewLogger(app config.AppConfig, cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, app, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, app config.AppConfig, cfg config.LogConfig) *slog.Logger {
	format := logFormat(app, cfg.Format)
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   format == "text",
		ReplaceAttr: redact,
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("service", serviceName),
		slog.String("version", Version),
		slog.String("env", app.Env),
	)
}

func logFormat(app config.AppConfig, format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return "json"
	case "text":
		return "text"
	}
	if app.IsProduction() {
		return "json"
	}
	return "text"
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if redactedKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, "[redacted]")
	}
	return a
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
