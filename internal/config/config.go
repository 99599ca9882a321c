// SPDX-License-Identifier: MIT

// Package config loads the nmfrun driver settings.
//
// Sources are layered with koanf, highest priority last:
//
//  1. Built-in defaults (DefaultConfig)
//  2. Optional YAML file
//  3. Environment variables with the NMF_ prefix (NMF_DATA_ROWS -> data.rows)
package config

import (
	"errors"
	"fmt"
	"math"
)

// Run modes.
const (
	ModeSingle = "single"
	ModeJoint  = "joint"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full driver configuration.
type Config struct {
	Mode       string  `koanf:"mode"`
	Rank       int     `koanf:"rank"`
	Iterations int     `koanf:"iterations"`
	Seed       int64   `koanf:"seed"`
	Epsilon    float64 `koanf:"epsilon"`
	Workers    int     `koanf:"workers"`

	Data      DataConfig      `koanf:"data"`
	Reference ReferenceConfig `koanf:"reference"`
	Plot      PlotConfig      `koanf:"plot"`
	Log       LogConfig       `koanf:"log"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

// DataConfig describes the synthetic observations the driver generates.
// In joint mode Matrices observations of Rows×Cols share one low-rank basis.
type DataConfig struct {
	Rows     int     `koanf:"rows"`
	Cols     int     `koanf:"cols"`
	Matrices int     `koanf:"matrices"`
	TrueRank int     `koanf:"true_rank"`
	Noise    float64 `koanf:"noise"`
	DataSeed int64   `koanf:"seed"`
}

// ReferenceConfig controls the projected-gradient comparison run.
type ReferenceConfig struct {
	Enabled     bool    `koanf:"enabled"`
	Tolerance   float64 `koanf:"tolerance"`
	MaxOuterSub int     `koanf:"max_outer_sub"`
	MaxInnerSub int     `koanf:"max_inner_sub"`
}

// PlotConfig toggles the JSON plot payloads written to stdout.
type PlotConfig struct {
	Enabled bool `koanf:"enabled"`
}

// LogConfig mirrors logging.Config for the fields that come from config.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// MetricsConfig toggles the end-of-run metrics summary.
type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() *Config {
	return &Config{
		Mode:       ModeSingle,
		Rank:       4,
		Iterations: 200,
		Seed:       42,
		Epsilon:    1e-10,
		Workers:    1,
		Data: DataConfig{
			Rows:     40,
			Cols:     30,
			Matrices: 3,
			TrueRank: 4,
			Noise:    0,
			DataSeed: 7,
		},
		Reference: ReferenceConfig{
			Enabled:     false,
			Tolerance:   1e-5,
			MaxOuterSub: 1000,
			MaxInnerSub: 20,
		},
		Plot:    PlotConfig{Enabled: true},
		Log:     LogConfig{Level: "info", Format: "json"},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeSingle, ModeJoint:
	default:
		return fmt.Errorf("%w: mode %q (want %q or %q)", ErrInvalidConfig, c.Mode, ModeSingle, ModeJoint)
	}
	if c.Rank < 1 {
		return fmt.Errorf("%w: rank must be >= 1, got %d", ErrInvalidConfig, c.Rank)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be >= 1, got %d", ErrInvalidConfig, c.Iterations)
	}
	if c.Epsilon < 0 || math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) {
		return fmt.Errorf("%w: epsilon must be finite and >= 0, got %g", ErrInvalidConfig, c.Epsilon)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if err := c.Data.validate(c.Mode); err != nil {
		return err
	}
	if err := c.Reference.validate(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log.format %q (want json or console)", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

func (d DataConfig) validate(mode string) error {
	if d.Rows < 1 || d.Cols < 1 {
		return fmt.Errorf("%w: data shape %dx%d", ErrInvalidConfig, d.Rows, d.Cols)
	}
	if mode == ModeJoint && d.Matrices < 1 {
		return fmt.Errorf("%w: data.matrices must be >= 1 in joint mode, got %d", ErrInvalidConfig, d.Matrices)
	}
	if d.TrueRank < 1 {
		return fmt.Errorf("%w: data.true_rank must be >= 1, got %d", ErrInvalidConfig, d.TrueRank)
	}
	if d.Noise < 0 || math.IsNaN(d.Noise) || math.IsInf(d.Noise, 0) {
		return fmt.Errorf("%w: data.noise must be finite and >= 0, got %g", ErrInvalidConfig, d.Noise)
	}

	return nil
}

func (r ReferenceConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if !(r.Tolerance > 0) || math.IsInf(r.Tolerance, 0) {
		return fmt.Errorf("%w: reference.tolerance must be > 0, got %g", ErrInvalidConfig, r.Tolerance)
	}
	if r.MaxOuterSub < 1 || r.MaxInnerSub < 1 {
		return fmt.Errorf("%w: reference sub-iteration limits must be >= 1, got outer=%d inner=%d",
			ErrInvalidConfig, r.MaxOuterSub, r.MaxInnerSub)
	}

	return nil
}
