package observability

import (
	"io"
	"log/slog"
	"os"

	"github.com/couchcryptid/rain-paradox/internal/config"
	"github.com/google/uuid"
)

// NewLogger builds the process logger on stderr, leaving stdout to the report.
// Every record carries a run_id so the lines of one invocation can be grouped.
func NewLogger(cfg *config.Config) *slog.Logger {
	return newLogger(os.Stderr, cfg).With("run_id", uuid.NewString())
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var h slog.Handler
	if cfg.LogFormat == "text" {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h)
}

func parseLevel(s string) slog.Level {
	switch s {
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
