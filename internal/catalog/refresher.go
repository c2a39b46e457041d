package catalog

import (
	"context"
	"time"
)

// Refresher reloads a catalog on a fixed interval. It is used for the
// database source, which has no file to watch.
type Refresher struct {
	target   Reloader
	interval time.Duration
}

func NewRefresher(target Reloader, interval time.Duration) *Refresher {
	return &Refresher{target: target, interval: interval}
}

// Run reloads every interval until ctx is cancelled. The target reports its
// own failures; the previous snapshot keeps serving.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = r.target.Reload(ctx)
		}
	}
}
