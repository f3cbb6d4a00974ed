package rng

// maxUint32 is the divisor of Float64, so 1.0 itself is reachable.
const maxUint32 = 4294967295.0

// XorShift32 is Marsaglia's 32-bit xorshift generator (13, 17, 5).
// Period is 2^32-1; zero is its only fixed point and is never entered from a
// non-zero state. The zero value is not usable, construct with NewXorShift32.
//
// Not safe for concurrent use: one instance belongs to one goroutine.
type XorShift32 struct {
	s uint32
}

func NewXorShift32(seed uint32) XorShift32 {
	if seed == 0 {
		seed = ZeroSubstitute
	}
	return XorShift32{s: seed}
}

// Next advances the state and returns it.
func (r *XorShift32) Next() uint32 {
	x := r.s
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.s = x
	return x
}

// Float64 returns Next()/(2^32-1), i.e. a value in [0,1] where 1.0 is possible.
func (r *XorShift32) Float64() float64 {
	return float64(r.Next()) / maxUint32
}

// State exposes the current state, mostly for tests.
func (r *XorShift32) State() uint32 {
	return r.s
}
