package sampler

import "runtime"

// DefaultBlockSize is the number of trials served by one stream.
const DefaultBlockSize int64 = 1 << 16

// Plan describes how a run of Trials trials is cut into blocks and spread over workers.
//
// Block b covers trials [b*BlockSize, min((b+1)*BlockSize, Trials)) and draws from
// stream b of Seed. The total therefore depends on (Trials, Seed, BlockSize) only;
// Workers and Dynamic change who computes a block, never what it computes.
type Plan struct {
	Trials    int64
	Seed      uint32
	BlockSize int64
	Workers   int
	// Dynamic makes workers pull blocks from a shared cursor instead of
	// owning a contiguous range of them.
	Dynamic bool
}

// Blocks returns the number of blocks needed to cover Trials (0 when Trials <= 0).
func (p Plan) Blocks() int64 {
	if p.Trials <= 0 {
		return 0
	}
	bs := p.blockSize()
	return (p.Trials + bs - 1) / bs
}

// Bounds returns the first trial index of block b and how many trials it holds.
func (p Plan) Bounds(b int64) (first, n int64) {
	bs := p.blockSize()
	first = b * bs
	n = min(bs, p.Trials-first)
	return first, n
}

// EffectiveWorkers returns the number of goroutines Run will start.
func (p Plan) EffectiveWorkers() int {
	w := p.Workers
	if w <= 0 {
		w = runtime.GOMAXPROCS(0)
	}
	if blocks := p.Blocks(); int64(w) > blocks {
		w = int(blocks)
	}
	return w
}

func (p Plan) blockSize() int64 {
	if p.BlockSize <= 0 {
		return DefaultBlockSize
	}
	return p.BlockSize
}
