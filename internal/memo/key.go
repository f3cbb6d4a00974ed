package memo

import (
	"encoding/binary"
	"github.com/zeebo/xxh3"
	"sync"
)

// Key identifies a finished run. v selects the shard and map slot,
// hi/lo are the 128-bit digest used to reject 64-bit collisions.
type Key struct {
	v  uint64
	hi uint64
	lo uint64
}

var hasherPool = sync.Pool{New: func() any { return xxh3.New() }}

// NewKey hashes everything a run's result depends on.
// integrand is the name of the integrated function; empty for pi runs.
func NewKey(kind string, trials int64, seed uint32, blockSize int64, integrand string) *Key {
	var num [20]byte
	binary.LittleEndian.PutUint64(num[0:8], uint64(trials))
	binary.LittleEndian.PutUint32(num[8:12], seed)
	binary.LittleEndian.PutUint64(num[12:20], uint64(blockSize))

	// acquire reusable hasher
	hasher := hasherPool.Get().(*xxh3.Hasher)
	hasher.Reset()

	_, _ = hasher.WriteString(kind)
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.Write(num[:])
	_, _ = hasher.WriteString(integrand)

	u128 := hasher.Sum128()
	k := &Key{
		v:  hasher.Sum64(),
		hi: u128.Hi,
		lo: u128.Lo,
	}

	// release hasher after use
	hasherPool.Put(hasher)

	return k
}

func (k *Key) Value() uint64 {
	return k.v
}

func (k *Key) IsTheSame(key *Key) (same bool) {
	return k.v == key.v && k.hi == key.hi && k.lo == key.lo
}
