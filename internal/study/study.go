package study

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Borislavv/go-mc"
	"github.com/Borislavv/go-mc/config"
	"github.com/Borislavv/go-mc/internal/shared/rate"
	"github.com/rs/zerolog"
)

var ErrEmptyLadder = errors.New("study has no trial counts")

// PiEstimator is the part of mc.Estimator the study needs.
type PiEstimator interface {
	Pi(n int64, seed uint32) (mc.Result, error)
}

// Step is the outcome of one ladder step.
type Step struct {
	Trials int64
	Seeds  int
	// MeanAbsErr is the mean of |estimate - pi| over all seeds.
	MeanAbsErr float64
	// Shrink is MeanAbsErr of the previous step divided by this one; 0 for the first step.
	// With 1/sqrt(N) convergence it approaches sqrt(Trials/prevTrials).
	Shrink float64
	// ExpectedShrink is sqrt(Trials/prevTrials); 0 for the first step.
	ExpectedShrink float64
}

// Report is the outcome of a full study.
type Report struct {
	Steps []Step
}

// Converges reports whether the error shrank at every step by at least
// tolerance times the 1/sqrt(N) expectation.
func (r Report) Converges(tolerance float64) bool {
	if len(r.Steps) == 0 {
		return false
	}
	for _, s := range r.Steps[1:] {
		if s.Shrink < s.ExpectedShrink*tolerance {
			return false
		}
	}
	return true
}

type Study struct {
	cfg       *config.StudyCfg
	logger    zerolog.Logger
	estimator PiEstimator
}

// New builds a study. A nil cfg means config.DefaultStudy().
func New(cfg *config.StudyCfg, logger zerolog.Logger, estimator PiEstimator) *Study {
	if cfg == nil {
		cfg = config.DefaultStudy()
	}
	return &Study{cfg: cfg, logger: logger, estimator: estimator}
}

// Run walks the trial ladder. ctx is checked between estimator runs only;
// a run that has started always completes.
func (s *Study) Run(ctx context.Context) (Report, error) {
	if len(s.cfg.Trials) == 0 {
		return Report{}, ErrEmptyLadder
	}
	seeds := max(s.cfg.Seeds, 1)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	pacer := rate.NewPacer(ctx, s.cfg.RoundsPerSec)

	s.logger.Info().
		Ints64("trials", s.cfg.Trials).
		Int("seeds", seeds).
		Int("rounds_per_sec", pacer.Limit()).
		Msg("study is running")

	report := Report{Steps: make([]Step, 0, len(s.cfg.Trials))}
	for i, n := range s.cfg.Trials {
		var errSum float64
		for k := 0; k < seeds; k++ {
			if err := pacer.Wait(ctx); err != nil {
				return report, err
			}
			seed := s.cfg.FirstSeed + uint32(k)
			res, err := s.estimator.Pi(n, seed)
			if err != nil {
				return report, fmt.Errorf("estimate pi (trials=%d, seed=%d): %w", n, seed, err)
			}
			errSum += math.Abs(res.Value - math.Pi)
		}

		step := Step{Trials: n, Seeds: seeds, MeanAbsErr: errSum / float64(seeds)}
		if i > 0 {
			prev := report.Steps[i-1]
			step.ExpectedShrink = math.Sqrt(float64(n) / float64(prev.Trials))
			if step.MeanAbsErr > 0 {
				step.Shrink = prev.MeanAbsErr / step.MeanAbsErr
			} else {
				step.Shrink = math.Inf(1)
			}
		}
		report.Steps = append(report.Steps, step)

		s.logger.Info().
			Int64("trials", step.Trials).
			Int("seeds", step.Seeds).
			Float64("mean_abs_err", step.MeanAbsErr).
			Float64("shrink", step.Shrink).
			Float64("expected_shrink", step.ExpectedShrink).
			Msg("study step")
	}

	return report, nil
}
