package notifications

import (
	"context"
	"log/slog"
)

// LogNotifier writes notices to the structured log. A real deployment
// could swap in something that pushes to the UI over SSE.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, notice Notice) {
	n.log.WarnContext(ctx, "notice", "code", notice.Code, "message", notice.Message)
}
