package notifications

import "context"

// Notice is a non-fatal, user-facing message. The store emits one when
// it degrades to the in-memory mirror; the UI surfaces it as a toast.
type Notice struct {
	Code    string
	Message string
}

type Notifier interface {
	Notify(ctx context.Context, n Notice)
}
