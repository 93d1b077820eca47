// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/pathbuilder/scoring"
)

// Ethnicity normalization policies. The dataset ships ethnicity exposures
// already bounded in [0,1]; "minmax" rescales them across the ethnicity set
// anyway (matching how the dataset has always been processed), while
// "passthrough" clamps and uses them as risks directly.
const (
	EthnicityMinMax      = "minmax"
	EthnicityPassthrough = "passthrough"
)

// Config is the scoring policy, loaded from YAML. Everything here is a
// deployment constant: it is read once at startup and never derived from
// the dataset.
type Config struct {
	Weights                Weights             `yaml:"weights"`
	TaperByPCS             bool                `yaml:"taper_by_pcs"`
	EthnicityNormalization string              `yaml:"ethnicity_normalization"`
	FeatureScaleMax        float64             `yaml:"feature_scale_max"`
	RubricScaleMax         float64             `yaml:"rubric_scale_max"`
	Categories             map[string][]string `yaml:"categories"`
}

// Weights are the composite blend factors. Must sum to 1.
type Weights struct {
	Province  float64 `yaml:"province"`
	Ethnicity float64 `yaml:"ethnicity"`
	Job       float64 `yaml:"job"`
}

// Load reads a YAML scoring config and returns it merged over Defaults and
// validated. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading scoring config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing scoring config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the policy once, at startup. Invalid weights are a
// configuration error and must never surface per request.
func (c Config) Validate() error {
	if err := c.ScoringWeights().Validate(); err != nil {
		return err
	}
	switch c.EthnicityNormalization {
	case EthnicityMinMax, EthnicityPassthrough:
	default:
		return fmt.Errorf("ethnicity_normalization must be %q or %q, got %q",
			EthnicityMinMax, EthnicityPassthrough, c.EthnicityNormalization)
	}
	if c.FeatureScaleMax <= 0 {
		return fmt.Errorf("feature_scale_max must be positive, got %v", c.FeatureScaleMax)
	}
	if c.RubricScaleMax <= 0 {
		return fmt.Errorf("rubric_scale_max must be positive, got %v", c.RubricScaleMax)
	}
	if _, err := c.CategoryMap(); err != nil {
		return err
	}
	return nil
}

// ScoringWeights converts the YAML weights into the engine's type.
func (c Config) ScoringWeights() scoring.Weights {
	return scoring.Weights{
		Province:  c.Weights.Province,
		Ethnicity: c.Weights.Ethnicity,
		Job:       c.Weights.Job,
	}
}

// CategoryMap builds the skill category map from the configured name lists.
func (c Config) CategoryMap() (scoring.CategoryMap, error) {
	return scoring.BuildCategoryMap(c.Categories)
}
