// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variable names before mapping.
const EnvPrefix = "NMF_"

// EnvConfigPath names a YAML file to load when Load gets an empty path.
const EnvConfigPath = "NMF_CONFIG"

// envKeys maps the lowercased variable name (prefix stripped) to its koanf
// path. Names absent from the table are ignored.
var envKeys = map[string]string{
	"mode":       "mode",
	"rank":       "rank",
	"iterations": "iterations",
	"seed":       "seed",
	"epsilon":    "epsilon",
	"workers":    "workers",

	"data_rows":      "data.rows",
	"data_cols":      "data.cols",
	"data_matrices":  "data.matrices",
	"data_true_rank": "data.true_rank",
	"data_noise":     "data.noise",
	"data_seed":      "data.seed",

	"reference_enabled":       "reference.enabled",
	"reference_tolerance":     "reference.tolerance",
	"reference_max_outer_sub": "reference.max_outer_sub",
	"reference_max_inner_sub": "reference.max_inner_sub",

	"plot_enabled":    "plot.enabled",
	"log_level":       "log.level",
	"log_format":      "log.format",
	"log_caller":      "log.caller",
	"metrics_enabled": "metrics.enabled",
}

// Load layers defaults, the YAML file at path (or $NMF_CONFIG when path is
// empty) and NMF_* environment variables, then validates the result.
// A named file that does not exist is an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// envTransformFunc turns NMF_DATA_TRUE_RANK into data.true_rank.
// Returning "" makes koanf skip the variable.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

	return envKeys[key]
}
