// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package config loads the YAML scoring policy.

# Loading

	cfg, err := config.Load("scoring.yaml")

An empty path yields Defaults(). File values are merged over the defaults
and the result is validated once; an invalid weight configuration is fatal
at startup, never at request time.

# Fields

  - weights: composite blend factors (province/ethnicity/job), must sum to 1
  - taper_by_pcs: scale province/ethnicity weights down by the job's
    protective share (off by default; makes effective weights data-dependent)
  - ethnicity_normalization: "minmax" (default) or "passthrough"
  - feature_scale_max, rubric_scale_max: raw dataset scales (both 5.0)
  - categories: skill name lists per category (routine/physical/creative/social)

# Example

	weights:
	  province: 0.10
	  ethnicity: 0.15
	  job: 0.75
	taper_by_pcs: false
	ethnicity_normalization: minmax
*/
package config
