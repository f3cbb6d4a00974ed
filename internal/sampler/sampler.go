package sampler

import (
	"github.com/Borislavv/go-mc/internal/rng"
	"golang.org/x/sync/errgroup"
	"sync/atomic"
)

// Partial is a per-block accumulator. Integer partials reduce bit-exactly,
// float partials are reduced in block order so the sum is reproducible too.
type Partial interface {
	~int64 | ~float64
}

// Kernel runs n trials starting at trial index first, drawing from r,
// and returns the block's partial accumulator.
type Kernel[T Partial] func(r *rng.XorShift32, first, n int64) T

// Run executes every trial of p exactly once and returns the reduced total.
//
// Each block gets a freshly seeded stream and its own partial slot, so workers
// share nothing but the read-only plan (and the block cursor in dynamic mode).
// The reduction happens after all workers have joined.
func Run[T Partial](p Plan, kernel Kernel[T]) T {
	blocks := p.Blocks()
	if blocks == 0 {
		return 0
	}

	partials := make([]T, blocks)
	block := func(b int64) {
		first, n := p.Bounds(b)
		r := rng.NewXorShift32(rng.MixSeed(p.Seed, uint64(b)))
		partials[b] = kernel(&r, first, n)
	}

	workers := p.EffectiveWorkers()
	var g errgroup.Group
	if p.Dynamic {
		var cursor atomic.Int64
		for w := 0; w < workers; w++ {
			g.Go(func() error {
				for {
					b := cursor.Add(1) - 1
					if b >= blocks {
						return nil
					}
					block(b)
				}
			})
		}
	} else {
		per, rem := blocks/int64(workers), blocks%int64(workers)
		lo := int64(0)
		for w := int64(0); w < int64(workers); w++ {
			hi := lo + per
			if w < rem {
				hi++
			}
			from, to := lo, hi
			g.Go(func() error {
				for b := from; b < to; b++ {
					block(b)
				}
				return nil
			})
			lo = hi
		}
	}
	// kernels never fail; the group is used for its join only
	_ = g.Wait()

	var total T
	for _, v := range partials {
		total += v
	}
	return total
}
