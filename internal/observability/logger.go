package observability

import (
	"log/slog"
	"os"
)

// NewLogger builds the JSON application logger. Dev gets debug level;
// everything else info. Records carry trace/span ids when a span is
// active.
func NewLogger(env string) *slog.Logger {
	level := slog.LevelInfo

	if env == "dev" {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(NewTraceHandler(handler))
}
