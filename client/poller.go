package client

import (
	"context"
	"time"

	"github.com/flashdeck/analytics"
)

// Poller repeatedly fetches stats on a fixed interval and hands each outcome
// to a callback. Fetches run synchronously inside the tick loop, so calls
// never overlap: a tick that fires while a fetch is still in flight is simply
// dropped, and the callback always sees the most recently started query.
type Poller struct {
	client   *Client
	interval time.Duration
	onResult func(*analytics.StatsSummary, error)
}

// NewPoller creates a poller delivering results to onResult.
func NewPoller(client *Client, interval time.Duration, onResult func(*analytics.StatsSummary, error)) *Poller {
	return &Poller{client: client, interval: interval, onResult: onResult}
}

// Run fetches immediately, then on every tick, until ctx is canceled.
func (p *Poller) Run(ctx context.Context) {
	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	summary, err := p.client.FetchStats(ctx)
	if ctx.Err() != nil {
		return
	}
	p.onResult(summary, err)
}
