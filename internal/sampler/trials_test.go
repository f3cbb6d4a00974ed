package sampler

import (
	"github.com/Borislavv/go-mc/internal/rng"
	"github.com/stretchr/testify/require"
	"testing"
)

// TestInUnitCircle_Boundary verifies points exactly on the circle count as hits.
func TestInUnitCircle_Boundary(t *testing.T) {
	require.True(t, InUnitCircle(1.0, 0.0))
	require.True(t, InUnitCircle(0.0, 1.0))
	require.True(t, InUnitCircle(0.6, 0.8))
	require.True(t, InUnitCircle(0, 0))
	require.False(t, InUnitCircle(1.0, 1.0))
	require.False(t, InUnitCircle(0.8, 0.7))
}

// TestPiTrials_DrawsTwicePerTrial verifies x and y consume consecutive draws.
func TestPiTrials_DrawsTwicePerTrial(t *testing.T) {
	r := rng.NewXorShift32(77)
	ref := rng.NewXorShift32(77)

	PiTrials(&r, 0, 10)
	for i := 0; i < 20; i++ {
		ref.Next()
	}
	require.Equal(t, ref.State(), r.State())
}

// TestPiTrials_HitsBounded verifies 0 <= hits <= n.
func TestPiTrials_HitsBounded(t *testing.T) {
	r := rng.NewXorShift32(rng.MixSeed(1, 0))
	hits := PiTrials(&r, 0, 10_000)
	require.GreaterOrEqual(t, hits, int64(0))
	require.LessOrEqual(t, hits, int64(10_000))
}

// TestIntegralTrials_SumsFunctionValues verifies a constant integrand sums to n*c.
func TestIntegralTrials_SumsFunctionValues(t *testing.T) {
	r := rng.NewXorShift32(5)
	sum := IntegralTrials(func(float64) float64 { return 2 })(&r, 0, 1000)
	require.Equal(t, 2000.0, sum)
}

// TestIntegralTrials_EvaluatesDraws verifies the kernel feeds draws to f in order.
func TestIntegralTrials_EvaluatesDraws(t *testing.T) {
	r := rng.NewXorShift32(11)
	ref := rng.NewXorShift32(11)

	var want float64
	for i := 0; i < 3; i++ {
		want += ref.Float64()
	}
	got := IntegralTrials(func(x float64) float64 { return x })(&r, 0, 3)
	require.Equal(t, want, got)
}
