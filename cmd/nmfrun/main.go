// SPDX-License-Identifier: MIT

// Command nmfrun factorizes synthetic non-negative data and reports how the
// run went.
//
// Configuration comes from defaults, an optional YAML file (-config or
// $NMF_CONFIG) and NMF_* environment variables. Plot payloads are written to
// stdout as JSON lines; logs go to stderr.
//
//	NMF_MODE=joint NMF_DATA_MATRICES=4 NMF_WORKERS=4 nmfrun
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvnmf/builder"
	"github.com/katalvlaran/lvnmf/internal/config"
	"github.com/katalvlaran/lvnmf/internal/logging"
	"github.com/katalvlaran/lvnmf/internal/metrics"
	"github.com/katalvlaran/lvnmf/matrix"
	"github.com/katalvlaran/lvnmf/nmf"
	"github.com/katalvlaran/lvnmf/plot"
	"github.com/katalvlaran/lvnmf/reference"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (overrides $NMF_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nmfrun: %v\n", err)
		os.Exit(2)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Format = cfg.Log.Format
	logCfg.Caller = cfg.Log.Caller
	logger := logging.New(logCfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error().Err(err).Msg("run failed")
		stop()
		os.Exit(1)
	}
}

// run executes one configured factorization. Plot payloads go to stdout
// when cfg.Plot.Enabled is set.
func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger, stdout io.Writer) error {
	var surface plot.Surface = plot.Discard
	if cfg.Plot.Enabled {
		surface = plot.NewJSONSurface(stdout)
	}
	rec := metrics.New()

	vs, err := observations(cfg)
	if err != nil {
		return fmt.Errorf("generate data: %w", err)
	}
	logger.Info().
		Str("mode", cfg.Mode).
		Int("matrices", len(vs)).
		Int("rows", cfg.Data.Rows).
		Int("cols", cfg.Data.Cols).
		Int("rank", cfg.Rank).
		Int("iterations", cfg.Iterations).
		Int("workers", cfg.Workers).
		Msg("starting factorization")

	completed := 0
	opts := []nmf.Option{
		nmf.WithEpsilon(cfg.Epsilon),
		nmf.WithWorkers(cfg.Workers),
		nmf.WithProgress(func(p nmf.Progress) {
			completed = p.Iteration
			logger.Debug().
				Int("iteration", p.Iteration).
				Int("total", p.Total).
				Floats64("residuals", p.Residuals).
				Msg("iteration done")
		}),
	}

	start := time.Now()
	var (
		w      *matrix.Dense
		hs     []*matrix.Dense
		traces [][]float64
	)
	switch cfg.Mode {
	case config.ModeJoint:
		var res *nmf.JointResult
		res, err = nmf.FactorizeJointContext(ctx, vs, cfg.Rank, cfg.Iterations, cfg.Seed, opts...)
		if err == nil {
			w, hs, traces = res.W, res.Hs, res.Norms
		}
	default:
		var res *nmf.Result
		res, err = nmf.FactorizeContext(ctx, vs[0], cfg.Rank, cfg.Iterations, cfg.Seed, opts...)
		if err == nil {
			w, hs, traces = res.W, []*matrix.Dense{res.H}, [][]float64{res.Norms}
		}
	}
	elapsed := time.Since(start)
	rec.ObserveRun(cfg.Mode, completed, elapsed, err)
	if err != nil {
		logSnapshot(logger, cfg, rec)
		return fmt.Errorf("factorize: %w", err)
	}

	final := make([]float64, len(traces))
	for i, tr := range traces {
		final[i] = nmf.Trace(tr).Last()
		rec.SetResidual(cfg.Mode, i, final[i])
	}
	logger.Info().
		Dur("elapsed", elapsed).
		Floats64("final_residuals", final).
		Msg("factorization finished")

	if cfg.Reference.Enabled {
		if err := compareReference(ctx, cfg, logger, vs, w, hs, traces); err != nil {
			return err
		}
	}

	if err := surface.PlotTrace(traces, "residual per iteration"); err != nil {
		return fmt.Errorf("plot trace: %w", err)
	}
	if err := surface.PlotHeatmap(w, "basis W"); err != nil {
		return fmt.Errorf("plot basis: %w", err)
	}
	for i, h := range hs {
		if err := surface.PlotHeatmap(h, fmt.Sprintf("coefficients H[%d]", i)); err != nil {
			return fmt.Errorf("plot coefficients: %w", err)
		}
	}

	logSnapshot(logger, cfg, rec)

	return nil
}

// observations generates the configured synthetic input.
func observations(cfg *config.Config) ([]matrix.Matrix, error) {
	opts := []builder.BuilderOption{
		builder.WithSeed(cfg.Data.DataSeed),
		builder.WithNoise(cfg.Data.Noise),
	}
	if cfg.Mode != config.ModeJoint {
		v, err := builder.LowRankObservation(cfg.Data.Rows, cfg.Data.Cols, cfg.Data.TrueRank, opts...)
		if err != nil {
			return nil, err
		}
		return []matrix.Matrix{v}, nil
	}

	cols := make([]int, cfg.Data.Matrices)
	for i := range cols {
		cols[i] = cfg.Data.Cols
	}
	dense, err := builder.JointObservations(cfg.Data.Rows, cols, cfg.Data.TrueRank, opts...)
	if err != nil {
		return nil, err
	}
	vs := make([]matrix.Matrix, len(dense))
	for i, d := range dense {
		vs[i] = d
	}

	return vs, nil
}

// compareReference runs the projected-gradient factorizer on every
// observation and logs how the core residual compares.
func compareReference(ctx context.Context, cfg *config.Config, logger zerolog.Logger,
	vs []matrix.Matrix, w *matrix.Dense, hs []*matrix.Dense, traces [][]float64) error {
	pg := reference.ProjectedGradient{
		Tolerance:   cfg.Reference.Tolerance,
		MaxOuterSub: cfg.Reference.MaxOuterSub,
		MaxInnerSub: cfg.Reference.MaxInnerSub,
	}
	for i, v := range vs {
		core := &nmf.Result{W: w, H: hs[i], Norms: traces[i]}
		rep, err := reference.Compare(ctx, pg, v, core, cfg.Rank, cfg.Iterations, cfg.Seed)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			return fmt.Errorf("reference comparison for V[%d]: %w", i, err)
		}
		logger.Info().
			Int("matrix", i).
			Float64("core_residual", rep.CoreResidual).
			Float64("reference_residual", rep.ReferenceResidual).
			Float64("ratio", rep.Ratio).
			Float64("relative_residual", rep.RelativeResidual).
			Int("reference_iterations", rep.Iterations).
			Dur("reference_elapsed", rep.Elapsed).
			Msg("reference comparison")
	}

	return nil
}

func logSnapshot(logger zerolog.Logger, cfg *config.Config, rec *metrics.Recorder) {
	if !cfg.Metrics.Enabled {
		return
	}
	samples, err := rec.Snapshot()
	if err != nil {
		logger.Warn().Err(err).Msg("metrics snapshot failed")
		return
	}
	for _, s := range samples {
		logger.Info().
			Str("metric", s.Name).
			Interface("labels", s.Labels).
			Float64("value", s.Value).
			Msg("metric")
	}
}
