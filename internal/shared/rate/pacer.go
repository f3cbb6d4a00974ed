package rate

import (
	"context"
	"go.uber.org/ratelimit"
)

// Pacer hands out permits at a fixed rate. A Pacer built with a non-positive
// rate never waits.
type Pacer struct {
	ch    chan struct{}
	l     ratelimit.Limiter
	limit int
}

func NewPacer(ctx context.Context, perSec int) *Pacer {
	if perSec <= 0 {
		return &Pacer{}
	}
	p := &Pacer{
		limit: perSec,
		ch:    make(chan struct{}, 1),
		l:     ratelimit.New(perSec, ratelimit.WithoutSlack),
	}
	go p.provider(ctx)
	return p
}

func (p *Pacer) provider(ctx context.Context) {
	defer close(p.ch)
	for {
		p.l.Take()
		select {
		case <-ctx.Done():
			return
		case p.ch <- struct{}{}:
		}
	}
}

// Wait blocks until the next permit or ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.ch == nil || ctx.Err() != nil {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case _, ok := <-p.ch:
		if !ok {
			return context.Canceled
		}
		return nil
	}
}

// Limit returns the configured rate; 0 means unpaced.
func (p *Pacer) Limit() int {
	return p.limit
}
