package cmd

import (
	"io"
	"log/slog"
	"strings"

	"github.com/m-mizutani/masq"
)

// NewLogger builds the service logger from cfg.
// Credential-looking attributes are redacted before they reach w.
func NewLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
		ReplaceAttr: masq.New(
			masq.WithFieldName("Password"),
			masq.WithFieldName("password"),
			masq.WithFieldName("secret"),
			masq.WithFieldName("token"),
			masq.WithFieldPrefix("secret_"),
		),
	}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
