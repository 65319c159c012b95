package application

import (
	"context"
	"log/slog"
	"time"
)

// Backoff bounds applied after GitHub reports a rate limit.
const (
	initialBackoff = 30 * time.Second
	maxBackoff     = 5 * time.Minute
)

// Pacer spaces out GitHub writes. After every `every` requests it waits
// `delay`. With backoff enabled, a rate-limited request switches it to an
// exponential backoff that resets on the next success.
type Pacer struct {
	every    int
	delay    time.Duration
	count    int
	adaptive bool
	backoff  time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewPacer creates a Pacer. every <= 0 or delay <= 0 disables the fixed pause.
func NewPacer(every int, delay time.Duration) *Pacer {
	return &Pacer{every: every, delay: delay, sleep: sleepCtx}
}

// Done records a finished request and pauses when the count reaches a
// multiple of every.
func (p *Pacer) Done(ctx context.Context) error {
	p.count++
	p.backoff = 0
	if p.every <= 0 || p.delay <= 0 || p.count%p.every != 0 {
		return nil
	}
	slog.Debug("pausing for rate limiting", "requests", p.count, "delay", p.delay)
	return p.sleep(ctx, p.delay)
}

// WithBackoff enables exponential backoff on rate-limited requests.
func (p *Pacer) WithBackoff() *Pacer {
	p.adaptive = true
	return p
}

// Throttled records a rate-limited request. Without backoff it is paced like
// any other request; with backoff it waits out the current backoff, doubling
// it for the next time.
func (p *Pacer) Throttled(ctx context.Context) error {
	if !p.adaptive {
		return p.Done(ctx)
	}
	p.count++
	if p.backoff == 0 {
		p.backoff = initialBackoff
	} else {
		p.backoff = min(p.backoff*2, maxBackoff)
	}
	slog.Warn("rate limited, backing off", "backoff", p.backoff)
	return p.sleep(ctx, p.backoff)
}

// Requests returns the number of requests recorded so far.
func (p *Pacer) Requests() int {
	return p.count
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
