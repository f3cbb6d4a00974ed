package mc

import "sync/atomic"

type counters struct {
	runs       atomic.Int64 // runs that actually sampled
	trials     atomic.Int64 // trials sampled by those runs
	memoHits   atomic.Int64
	memoMisses atomic.Int64
}

func newCounters() *counters {
	return &counters{
		runs:       atomic.Int64{},
		trials:     atomic.Int64{},
		memoHits:   atomic.Int64{},
		memoMisses: atomic.Int64{},
	}
}

func (c *counters) snapshot() (runs, trials, memoHits, memoMisses int64) {
	return c.runs.Load(), c.trials.Load(), c.memoHits.Load(), c.memoMisses.Load()
}
