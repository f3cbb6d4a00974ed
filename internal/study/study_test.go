package study

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Borislavv/go-mc"
	"github.com/Borislavv/go-mc/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeEstimator struct {
	calls int
	err   error
	value func(n int64, seed uint32) float64
}

func (f *fakeEstimator) Pi(n int64, seed uint32) (mc.Result, error) {
	f.calls++
	if f.err != nil {
		return mc.Result{}, f.err
	}
	return mc.Result{Kind: mc.KindPi, Value: f.value(n, seed), Trials: n, Seed: seed}, nil
}

func testLogger(t *testing.T) zerolog.Logger {
	return zerolog.New(zerolog.NewTestWriter(t))
}

// TestStudy_Run_RealEstimator verifies the pi estimator converges over a geometric ladder.
func TestStudy_Run_RealEstimator(t *testing.T) {
	cfg := &config.StudyCfg{Seeds: 8, FirstSeed: 1, Trials: []int64{100, 10_000, 1_000_000}}
	s := New(cfg, testLogger(t), mc.New(nil, zerolog.Nop()))

	report, err := s.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Steps, 3)

	require.Zero(t, report.Steps[0].Shrink)
	require.Equal(t, 10.0, report.Steps[1].ExpectedShrink)
	require.Equal(t, 10.0, report.Steps[2].ExpectedShrink)
	require.True(t, report.Converges(0.3), "report: %+v", report)
}

// TestStudy_Run_ComputesMeanError verifies the per-step aggregation.
func TestStudy_Run_ComputesMeanError(t *testing.T) {
	est := &fakeEstimator{value: func(n int64, seed uint32) float64 {
		// error of 1/n for odd seeds, 3/n for even ones
		if seed%2 == 1 {
			return math.Pi + 1/float64(n)
		}
		return math.Pi - 3/float64(n)
	}}
	cfg := &config.StudyCfg{Seeds: 2, FirstSeed: 1, Trials: []int64{1, 4}}

	report, err := New(cfg, testLogger(t), est).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, est.calls)

	require.InDelta(t, 2.0, report.Steps[0].MeanAbsErr, 1e-12)
	require.InDelta(t, 0.5, report.Steps[1].MeanAbsErr, 1e-12)
	require.InDelta(t, 4.0, report.Steps[1].Shrink, 1e-9)
	require.Equal(t, 2.0, report.Steps[1].ExpectedShrink)
	require.True(t, report.Converges(1.0))
}

// TestStudy_Run_NotConverging verifies a flat error curve is reported.
func TestStudy_Run_NotConverging(t *testing.T) {
	est := &fakeEstimator{value: func(int64, uint32) float64 { return 3.0 }}
	cfg := &config.StudyCfg{Seeds: 1, Trials: []int64{10, 1000}}

	report, err := New(cfg, testLogger(t), est).Run(context.Background())
	require.NoError(t, err)
	require.InDelta(t, 1.0, report.Steps[1].Shrink, 1e-12)
	require.False(t, report.Converges(0.5))
}

// TestStudy_Run_EmptyLadder rejects a study without trial counts.
func TestStudy_Run_EmptyLadder(t *testing.T) {
	_, err := New(&config.StudyCfg{Seeds: 1}, testLogger(t), &fakeEstimator{}).Run(context.Background())
	require.ErrorIs(t, err, ErrEmptyLadder)
}

// TestStudy_Run_EstimatorError verifies estimator failures are wrapped and stop the study.
func TestStudy_Run_EstimatorError(t *testing.T) {
	boom := errors.New("boom")
	est := &fakeEstimator{err: boom}
	cfg := &config.StudyCfg{Seeds: 3, Trials: []int64{10, 100}}

	_, err := New(cfg, testLogger(t), est).Run(context.Background())
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, est.calls)
}

// TestStudy_Run_Cancelled verifies a cancelled context stops the study before any run.
func TestStudy_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	est := &fakeEstimator{value: func(int64, uint32) float64 { return math.Pi }}
	_, err := New(&config.StudyCfg{Seeds: 2, Trials: []int64{10}, RoundsPerSec: 10}, testLogger(t), est).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, est.calls)
}

// TestStudy_Run_Paced verifies pacing still completes all rounds.
func TestStudy_Run_Paced(t *testing.T) {
	est := &fakeEstimator{value: func(int64, uint32) float64 { return math.Pi }}
	cfg := &config.StudyCfg{Seeds: 3, Trials: []int64{10}, RoundsPerSec: 200}

	report, err := New(cfg, testLogger(t), est).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, est.calls)
	require.Zero(t, report.Steps[0].MeanAbsErr)
}

// TestNew_DefaultStudy verifies a nil config uses the default ladder.
func TestNew_DefaultStudy(t *testing.T) {
	s := New(nil, testLogger(t), &fakeEstimator{})
	require.Equal(t, config.DefaultStudy().Trials, s.cfg.Trials)
}
