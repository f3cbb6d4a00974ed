package main

import (
	"fmt"

	"github.com/Borislavv/go-mc"
	"github.com/Borislavv/go-mc/config"
	"github.com/Borislavv/go-mc/internal/study"
	"github.com/Borislavv/go-mc/internal/telemetry"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	trials     int64
	seed       uint32
	workers    int
	schedule   string
	logLevel   string
}

func newRootCmd(logger *zerolog.Logger) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "mc",
		Short:         "Parallel Monte Carlo estimates of pi and of the integral of x² over [0,1)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := zerolog.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("parse log level: %w", err)
			}
			*logger = logger.Level(lvl)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	pf.Int64VarP(&opts.trials, "trials", "n", 1_000_000, "number of trials (must be positive)")
	pf.Uint32VarP(&opts.seed, "seed", "s", 42, "base seed")
	pf.IntVarP(&opts.workers, "workers", "w", 0, "worker goroutines, 0 means GOMAXPROCS (overrides config)")
	pf.StringVar(&opts.schedule, "schedule", "", "static or dynamic (overrides config)")
	pf.StringVar(&opts.logLevel, "log-level", "info", "zerolog level")

	root.AddCommand(
		newEstimateCmd("pi", "Estimate pi", opts, logger, (*mc.MonteCarlo).Pi),
		newEstimateCmd("integral", "Estimate the integral of x² over [0,1)", opts, logger, (*mc.MonteCarlo).Integral),
		newStudyCmd(opts, logger),
	)
	return root
}

func newEstimateCmd(
	use, short string,
	opts *options,
	logger *zerolog.Logger,
	estimate func(m *mc.MonteCarlo, n int64, seed uint32) (mc.Result, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			m := mc.New(cfg, *logger)
			tel := telemetry.New(cmd.Context(), *logger, m, cfg.TelemetryInterval)
			defer tel.Close()

			res, err := estimate(m, opts.trials, opts.seed)
			if err != nil {
				return err
			}

			logger.Info().
				Str("kind", string(res.Kind)).
				Int64("trials", res.Trials).
				Uint32("seed", res.Seed).
				Int("workers", res.Workers).
				Int64("blocks", res.Blocks).
				Float64("estimate", res.Value).
				Msg("estimate")
			return nil
		},
	}
}

func newStudyCmd(opts *options, logger *zerolog.Logger) *cobra.Command {
	var tolerance float64

	cmd := &cobra.Command{
		Use:   "study",
		Short: "Check that the pi estimator converges as 1/sqrt(N)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			m := mc.New(cfg, *logger)
			tel := telemetry.New(cmd.Context(), *logger, m, cfg.TelemetryInterval)
			defer tel.Close()

			report, err := study.New(cfg.Study, *logger, m).Run(cmd.Context())
			if err != nil {
				return err
			}
			if !report.Converges(tolerance) {
				return fmt.Errorf("error did not shrink as 1/sqrt(N) within tolerance %.2f", tolerance)
			}
			logger.Info().Float64("tolerance", tolerance).Msg("study converged")
			return nil
		},
	}
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0.3, "fraction of the expected error shrink each step must reach")
	return cmd
}

func (o *options) load() (*config.Estimation, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.LoadConfig(o.configPath); err != nil {
			return nil, err
		}
	}

	if o.workers > 0 {
		cfg.Workers = o.workers
	}
	if o.schedule != "" {
		cfg.Schedule = config.Schedule(o.schedule)
	}
	cfg.AdjustConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
