package telemetry

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Source is anything exposing cumulative estimator counters.
type Source interface {
	Metrics() (runs, trials, memoHits, memoMisses int64)
}

type Logger interface {
	Interval() time.Duration
	Close() error
}

// Logs periodically writes per-interval deltas of a Source.
type Logs struct {
	ctx      context.Context
	cancel   context.CancelFunc
	logger   zerolog.Logger
	source   Source
	interval time.Duration
	done     chan struct{}
}

// New starts logging immediately. A non-positive interval disables the loop.
func New(ctx context.Context, logger zerolog.Logger, source Source, interval time.Duration) *Logs {
	ctx, cancel := context.WithCancel(ctx)
	return (&Logs{
		ctx:      ctx,
		cancel:   cancel,
		logger:   logger,
		source:   source,
		interval: interval,
		done:     make(chan struct{}),
	}).run()
}

func (l *Logs) Interval() time.Duration {
	return l.interval
}

// Close stops the loop and waits for it to exit.
func (l *Logs) Close() error {
	l.cancel()
	<-l.done
	return nil
}

func (l *Logs) run() *Logs {
	if l.interval <= 0 {
		close(l.done)
		return l
	}
	go l.loop(take(l.source))
	return l
}

func (l *Logs) loop(prev snapshot) {
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.ctx.Done():
			return
		case <-ticker.C:
			cur := take(l.source)
			d := deltaSnapshot(prev, cur)
			prev = cur

			l.logger.Info().
				Str("interval", l.interval.String()).
				Uint64("runs", d.runs).
				Uint64("trials", d.trials).
				Float64("trials_per_sec", float64(d.trials)/l.interval.Seconds()).
				Uint64("memo_hits", d.memoHits).
				Uint64("memo_misses", d.memoMisses).
				Msg("estimator")
		}
	}
}
