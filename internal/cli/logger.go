package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/recruitdb/internal/config"
)

// NewLogger creates a *slog.Logger from cfg writing to w.
//
// Format "json" produces structured JSON; anything else produces text.
// Level is one of debug, info, warn, error (case-insensitive); verbose
// forces debug.
func NewLogger(cfg config.LogConfig, verbose bool, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.Level)
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
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
