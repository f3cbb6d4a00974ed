package config

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"runtime"
	"time"
)

var ErrUnknownSchedule = errors.New("unknown schedule")

// Schedule defines how blocks of trials are handed out to workers.
type Schedule string

const (
	// ScheduleStatic gives every worker one contiguous range of blocks.
	ScheduleStatic Schedule = "static"

	// ScheduleDynamic lets workers pull the next free block from a shared cursor.
	ScheduleDynamic Schedule = "dynamic"
)

// Estimation groups configuration of the estimators and the optional subsystems.
// Optional subsystems are disabled by leaving them nil.
type Estimation struct {
	// Workers is the size of the goroutine pool. 0 means GOMAXPROCS.
	// The pool size never changes an estimate, only how fast it is produced.
	Workers int `yaml:"workers"`

	// Schedule defines the work distribution policy.
	// Supported values:
	//   - "static":  contiguous block ranges per worker (default)
	//   - "dynamic": workers pull blocks one at a time
	Schedule Schedule `yaml:"schedule"`

	// BlockSize is the number of trials served by a single random stream.
	// Estimates are reproducible for a fixed (trials, seed, BlockSize);
	// changing BlockSize changes the streams and therefore the estimate.
	// 0 means 65536.
	BlockSize int64 `yaml:"block_size"`

	// Memo configures memoization of finished estimates.
	// If nil, every call samples from scratch.
	Memo *MemoCfg `yaml:"memo"`

	// Study configures the convergence study.
	// If nil, the defaults of DefaultStudy are used by the study runner.
	Study *StudyCfg `yaml:"study"`

	// TelemetryInterval enables periodic logging of estimator counters
	// (runs, trials, memo hits) while a command is running. 0 disables it.
	// Example: "5s".
	TelemetryInterval time.Duration `yaml:"telemetry_interval"`

	// IsDynamic is derived from Schedule during initialization.
	// This field is not read from YAML.
	IsDynamic bool // virtual: computed during init
}

// Default returns a configuration with memoization off and GOMAXPROCS workers.
func Default() *Estimation {
	cfg := &Estimation{Schedule: ScheduleStatic}
	cfg.AdjustConfig()
	return cfg
}

func (cfg *Estimation) AdjustConfig() {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.Schedule == "" {
		cfg.Schedule = ScheduleStatic
	}
	if cfg.BlockSize <= 0 {
		cfg.BlockSize = 1 << 16
	}
	cfg.IsDynamic = cfg.Schedule == ScheduleDynamic

	if cfg.Memo.Enabled() {
		if cfg.Memo.Shards <= 0 {
			cfg.Memo.Shards = 16
		}
		if cfg.Memo.Capacity <= 0 {
			cfg.Memo.Capacity = 1024
		}
	}
}

func (cfg *Estimation) Validate() error {
	switch cfg.Schedule {
	case ScheduleStatic, ScheduleDynamic:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSchedule, cfg.Schedule)
	}
}

func LoadConfig(path string) (*Estimation, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	cfg := &Estimation{}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}
	cfg.AdjustConfig()
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}

	return cfg, nil
}
