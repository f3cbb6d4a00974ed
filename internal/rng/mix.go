package rng

// ZeroSubstitute replaces a zero seed, which is the fixed point of XorShift32.
const ZeroSubstitute uint32 = 0x9E3779B9

// mix64 is the SplitMix64 finalizer (public-domain; Steele et al.).
func mix64(x uint64) uint64 {
	const (
		// Golden ratio increment used by SplitMix64 to traverse states uniformly.
		splitmix64Increment = 0x9E3779B97F4A7C15

		// Multipliers from SplitMix64 reference implementation.
		splitmix64Mul1 = 0xBF58476D1CE4E5B9
		splitmix64Mul2 = 0x94D049BB133111EB
	)
	x += splitmix64Increment
	x = (x ^ (x >> 30)) * splitmix64Mul1
	x = (x ^ (x >> 27)) * splitmix64Mul2
	return x ^ (x >> 31)
}

// MixSeed derives the seed of stream number `stream` from a single base seed.
// Neighbouring stream ids (and neighbouring base seeds) land far apart, so
// streams started from them are not simply shifted copies of each other.
// The result is never zero.
func MixSeed(seed uint32, stream uint64) uint32 {
	z := mix64(uint64(seed)<<32 ^ stream)
	s := uint32(z>>32) ^ uint32(z)
	if s == 0 {
		return ZeroSubstitute
	}
	return s
}
