package mc

import (
	"errors"
	"fmt"

	"github.com/Borislavv/go-mc/config"
	"github.com/Borislavv/go-mc/internal/memo"
	"github.com/Borislavv/go-mc/internal/sampler"
	"github.com/rs/zerolog"
)

var ErrInvalidTrialCount = errors.New("trial count must be positive")

type Kind string

const (
	KindPi       Kind = "pi"
	KindIntegral Kind = "integral"
)

// Result is a finished estimate together with the reduced total it came from.
type Result struct {
	Kind   Kind
	Value  float64
	Trials int64
	Seed   uint32

	Hits int64   // pi runs: points inside or on the quarter circle
	Sum  float64 // integral runs: sum of integrand values

	Blocks   int64 // number of random streams used
	Workers  int   // goroutines that sampled the run (0 when memoized)
	Memoized bool
}

type Estimator interface {
	Pi(n int64, seed uint32) (Result, error)
	Integral(n int64, seed uint32) (Result, error)
	Metrics() (runs, trials, memoHits, memoMisses int64)
}

type MonteCarlo struct {
	cfg           *config.Estimation
	logger        zerolog.Logger
	memo          memo.Memo[Result]
	counters      *counters
	integrand     Integrand
	integrandName string
}

type Option func(m *MonteCarlo)

// WithIntegrand replaces Square for Integral runs. name identifies f in the
// result memo, so different functions must use different names.
func WithIntegrand(name string, f Integrand) Option {
	return func(m *MonteCarlo) {
		m.integrand = f
		m.integrandName = name
	}
}

// New builds an estimator. A nil cfg means config.Default().
func New(cfg *config.Estimation, logger zerolog.Logger, opts ...Option) *MonteCarlo {
	if cfg == nil {
		cfg = config.Default()
	}
	cfg.AdjustConfig()

	m := &MonteCarlo{
		cfg:           cfg,
		logger:        logger,
		memo:          memo.New[Result](cfg.Memo),
		counters:      newCounters(),
		integrand:     Square,
		integrandName: "square",
	}
	for _, opt := range opts {
		opt(m)
	}

	m.logger.Debug().
		Int("workers", cfg.Workers).
		Str("schedule", string(cfg.Schedule)).
		Int64("block_size", cfg.BlockSize).
		Bool("memo", cfg.Memo.Enabled()).
		Str("integrand", m.integrandName).
		Msg("estimator is ready")

	return m
}

// Pi estimates pi from n points; see EstimatePi.
func (m *MonteCarlo) Pi(n int64, seed uint32) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidTrialCount, n)
	}

	key := memo.NewKey(string(KindPi), n, seed, m.cfg.BlockSize, "")
	if res, hit := m.lookup(key); hit {
		return res, nil
	}

	plan := m.plan(n, seed)
	hits := sampler.Run[int64](plan, sampler.PiTrials)
	res := Result{
		Kind:    KindPi,
		Value:   PiFromHits(hits, n),
		Trials:  n,
		Seed:    seed,
		Hits:    hits,
		Blocks:  plan.Blocks(),
		Workers: plan.EffectiveWorkers(),
	}
	m.store(key, res)

	return res, nil
}

// Integral estimates the integral of the configured integrand over [0,1).
func (m *MonteCarlo) Integral(n int64, seed uint32) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidTrialCount, n)
	}

	key := memo.NewKey(string(KindIntegral), n, seed, m.cfg.BlockSize, m.integrandName)
	if res, hit := m.lookup(key); hit {
		return res, nil
	}

	plan := m.plan(n, seed)
	sum := sampler.Run[float64](plan, sampler.IntegralTrials(m.integrand))
	res := Result{
		Kind:    KindIntegral,
		Value:   MeanFromSum(sum, n),
		Trials:  n,
		Seed:    seed,
		Sum:     sum,
		Blocks:  plan.Blocks(),
		Workers: plan.EffectiveWorkers(),
	}
	m.store(key, res)

	return res, nil
}

func (m *MonteCarlo) Metrics() (runs, trials, memoHits, memoMisses int64) {
	return m.counters.snapshot()
}

func (m *MonteCarlo) plan(n int64, seed uint32) sampler.Plan {
	return sampler.Plan{
		Trials:    n,
		Seed:      seed,
		BlockSize: m.cfg.BlockSize,
		Workers:   m.cfg.Workers,
		Dynamic:   m.cfg.IsDynamic,
	}
}

func (m *MonteCarlo) lookup(key *memo.Key) (Result, bool) {
	if !m.cfg.Memo.Enabled() {
		return Result{}, false
	}
	res, hit := m.memo.Get(key)
	if !hit {
		m.counters.memoMisses.Add(1)
		return Result{}, false
	}
	m.counters.memoHits.Add(1)

	res.Memoized = true
	res.Workers = 0
	return res, true
}

func (m *MonteCarlo) store(key *memo.Key, res Result) {
	m.counters.runs.Add(1)
	m.counters.trials.Add(res.Trials)
	m.memo.Set(key, res)

	m.logger.Debug().
		Str("kind", string(res.Kind)).
		Int64("trials", res.Trials).
		Uint32("seed", res.Seed).
		Int64("blocks", res.Blocks).
		Int("workers", res.Workers).
		Float64("estimate", res.Value).
		Msg("estimate done")
}
