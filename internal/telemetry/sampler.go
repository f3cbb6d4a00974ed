package telemetry

// snapshot holds cumulative counters (monotonic).
type snapshot struct {
	runs       uint64
	trials     uint64
	memoHits   uint64
	memoMisses uint64
}

func take(s Source) snapshot {
	runs, trials, hits, misses := s.Metrics()
	return snapshot{
		runs:       uint64(max(runs, 0)),
		trials:     uint64(max(trials, 0)),
		memoHits:   uint64(max(hits, 0)),
		memoMisses: uint64(max(misses, 0)),
	}
}

// deltaSnapshot converts cumulative snapshots to per-interval deltas.
// If counters reset (cur < prev), it treats cur as the delta.
func deltaSnapshot(prev, cur snapshot) snapshot {
	return snapshot{
		runs:       delta(prev.runs, cur.runs),
		trials:     delta(prev.trials, cur.trials),
		memoHits:   delta(prev.memoHits, cur.memoHits),
		memoMisses: delta(prev.memoMisses, cur.memoMisses),
	}
}

func delta(prev, cur uint64) uint64 {
	if cur >= prev {
		return cur - prev
	}
	return cur
}
