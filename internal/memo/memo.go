package memo

import (
	"github.com/Borislavv/go-mc/config"
	"sync"
	"sync/atomic"
)

type Memo[V any] interface {
	Get(key *Key) (value V, hit bool)
	Set(key *Key, value V)
	Len() int64
	Clear()
}

type entry[V any] struct {
	key   *Key
	value V
}

// shard is an independently locked segment with FIFO replacement.
type shard[V any] struct {
	sync.RWMutex
	items map[uint64]entry[V]
	order []uint64 // ring of inserted keys, oldest at head
	head  int
}

// Results is a sharded, bounded memo of finished estimates.
type Results[V any] struct {
	shards   []*shard[V]
	mask     uint64
	capacity int
	len      atomic.Int64
}

// New returns a NoOp memo when cfg is nil.
func New[V any](cfg *config.MemoCfg) Memo[V] {
	if !cfg.Enabled() {
		return NoOp[V]{}
	}

	n := nextPow2(max(cfg.Shards, 1))
	capacity := max(cfg.Capacity, 1)
	m := &Results[V]{
		shards:   make([]*shard[V], n),
		mask:     uint64(n - 1),
		capacity: capacity,
	}
	for i := range m.shards {
		m.shards[i] = &shard[V]{
			items: make(map[uint64]entry[V], capacity),
			order: make([]uint64, 0, capacity),
		}
	}
	return m
}

func (m *Results[V]) shard(key *Key) *shard[V] {
	return m.shards[key.Value()&m.mask]
}

func (m *Results[V]) Get(key *Key) (value V, hit bool) {
	sh := m.shard(key)
	sh.RLock()
	e, ok := sh.items[key.Value()]
	sh.RUnlock()
	if !ok || !e.key.IsTheSame(key) {
		// miss or hash collision
		return value, false
	}
	return e.value, true
}

func (m *Results[V]) Set(key *Key, value V) {
	sh := m.shard(key)
	sh.Lock()
	defer sh.Unlock()

	if _, ok := sh.items[key.Value()]; ok {
		sh.items[key.Value()] = entry[V]{key: key, value: value}
		return
	}

	if len(sh.order) < m.capacity {
		sh.order = append(sh.order, key.Value())
		m.len.Add(1)
	} else {
		delete(sh.items, sh.order[sh.head])
		sh.order[sh.head] = key.Value()
		sh.head = (sh.head + 1) % m.capacity
	}
	sh.items[key.Value()] = entry[V]{key: key, value: value}
}

func (m *Results[V]) Len() int64 {
	return m.len.Load()
}

func (m *Results[V]) Clear() {
	for _, sh := range m.shards {
		sh.Lock()
		m.len.Add(-int64(len(sh.order)))
		clear(sh.items)
		sh.order = sh.order[:0]
		sh.head = 0
		sh.Unlock()
	}
}

// nextPow2 returns the smallest power-of-two >= x.
func nextPow2(x int) int {
	p := 1
	for p < x {
		p <<= 1
	}
	return p
}
