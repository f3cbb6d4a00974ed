package config

// StudyCfg configures the convergence study: the pi estimator is run for
// every trial count of Trials with Seeds consecutive seeds each.
type StudyCfg struct {
	// Seeds is the number of seeds averaged per trial count.
	Seeds int `yaml:"seeds"`

	// FirstSeed is the first seed of each ladder step; the rest follow it.
	FirstSeed uint32 `yaml:"first_seed"`

	// Trials is the ladder of trial counts, usually growing geometrically.
	// Example: [1000, 100000, 10000000].
	Trials []int64 `yaml:"trials"`

	// RoundsPerSec limits how many estimator runs the study starts per second.
	// 0 disables pacing.
	RoundsPerSec int `yaml:"rounds_per_sec"`
}

// DefaultStudy returns the 10^3, 10^5, 10^7 ladder with 8 seeds per step.
func DefaultStudy() *StudyCfg {
	return &StudyCfg{
		Seeds:     8,
		FirstSeed: 1,
		Trials:    []int64{1_000, 100_000, 10_000_000},
	}
}
