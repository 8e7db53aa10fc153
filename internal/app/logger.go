package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/itemlog-backend/internal/config"
)

// redactedKeys never reach log output with their values.
var redactedKeys = map[string]bool{
	"authorization": true,
	"token":         true,
	"secret":        true,
	"password":      true,
}

// NewLogger builds the process logger on stderr and installs it as the slog
// default. Format "json" is for production; anything else is text with
// source locations. Timestamps are written in UTC.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	json := strings.EqualFold(strings.TrimSpace(cfg.Format), "json")
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   !json,
		ReplaceAttr: replaceAttr,
	}

	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch {
	case a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime:
		return slog.Time(a.Key, a.Value.Time().UTC())
	case redactedKeys[strings.ToLower(a.Key)]:
		return slog.String(a.Key, "[REDACTED]")
	}
	return a
}

// parseLevel accepts debug, info, warn(ing) and error in any case; anything
// else is info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
