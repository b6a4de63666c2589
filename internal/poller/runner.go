// internal/poller/runner.go
package poller

import (
	"context"
	"time"
)

// Run scans until ctx is canceled, emitting one ScanResult per pass.
// No overlap. No retries. Returns ctx.Err() on cancellation.
func (p *Poller) Run(ctx context.Context, out chan<- ScanResult) error {
	for {
		res := p.PollOnce()

		select {
		case out <- res:
		case <-ctx.Done():
			return ctx.Err()
		}

		if p.cfg.Interval > 0 {
			idle := time.NewTimer(p.cfg.Interval)
			select {
			case <-ctx.Done():
				idle.Stop()
				return ctx.Err()
			case <-idle.C:
			}
		} else {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
	}
}
