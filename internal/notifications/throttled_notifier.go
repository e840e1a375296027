package notifications

import (
	"context"
	"sync"
	"time"
)

// ThrottledNotifier suppresses repeats of the same notice code within a
// cooldown window. A degraded database would otherwise emit a fallback
// notice on every single request.
type ThrottledNotifier struct {
	inner    Notifier
	cooldown time.Duration

	mu       sync.Mutex
	lastSent map[string]time.Time
}

func NewThrottledNotifier(inner Notifier, cooldown time.Duration) *ThrottledNotifier {
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}

	return &ThrottledNotifier{
		inner:    inner,
		cooldown: cooldown,
		lastSent: make(map[string]time.Time),
	}
}

func (n *ThrottledNotifier) Notify(ctx context.Context, notice Notice) {
	if !n.allow(notice.Code) {
		return
	}

	n.inner.Notify(ctx, notice)
}

func (n *ThrottledNotifier) allow(code string) bool {
	now := time.Now()

	n.mu.Lock()
	defer n.mu.Unlock()

	if last, ok := n.lastSent[code]; ok && now.Sub(last) < n.cooldown {
		return false
	}

	n.lastSent[code] = now
	return true
}
