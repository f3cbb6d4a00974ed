package mc

import (
	"math"

	"github.com/Borislavv/go-mc/internal/sampler"
)

// Integrand is a function integrated over [0,1). It must be pure and finite
// on [0,1]; draws of exactly 1.0 are possible.
type Integrand func(x float64) float64

// Square is the default integrand, f(x) = x². Its integral over [0,1) is 1/3.
func Square(x float64) float64 {
	return x * x
}

// EstimatePi estimates pi from n random points in the unit square using
// GOMAXPROCS workers. The estimate always lies in [0, 4].
//
// n must be positive; for n <= 0 the result is NaN.
func EstimatePi(n int64, seed uint32) float64 {
	if n <= 0 {
		return math.NaN()
	}
	hits := sampler.Run[int64](sampler.Plan{Trials: n, Seed: seed}, sampler.PiTrials)
	return PiFromHits(hits, n)
}

// EstimateIntegral estimates the integral of Square over [0,1) as the mean of
// n sampled values using GOMAXPROCS workers.
//
// n must be positive; for n <= 0 the result is NaN.
func EstimateIntegral(n int64, seed uint32) float64 {
	if n <= 0 {
		return math.NaN()
	}
	sum := sampler.Run[float64](sampler.Plan{Trials: n, Seed: seed}, sampler.IntegralTrials(Square))
	return MeanFromSum(sum, n)
}

// PiFromHits converts a quarter-circle hit count into a pi estimate.
func PiFromHits(hits, n int64) float64 {
	return 4.0 * float64(hits) / float64(n)
}

// MeanFromSum converts a sum of n integrand values into the integral estimate.
func MeanFromSum(sum float64, n int64) float64 {
	return sum / float64(n)
}
