package sampler

import "github.com/Borislavv/go-mc/internal/rng"

// InUnitCircle reports whether (x, y) lies inside or on the unit circle.
func InUnitCircle(x, y float64) bool {
	return x*x+y*y <= 1.0
}

// PiTrials counts how many of n (x, y) draws land in the quarter unit circle.
// x is drawn before y.
func PiTrials(r *rng.XorShift32, _, n int64) int64 {
	var hits int64
	for i := int64(0); i < n; i++ {
		x := r.Float64()
		y := r.Float64()
		if InUnitCircle(x, y) {
			hits++
		}
	}
	return hits
}

// IntegralTrials returns a kernel summing f over n uniform draws.
func IntegralTrials(f func(float64) float64) Kernel[float64] {
	return func(r *rng.XorShift32, _, n int64) float64 {
		var sum float64
		for i := int64(0); i < n; i++ {
			sum += f(r.Float64())
		}
		return sum
	}
}
