// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidWeights indicates a composite weight configuration that is
// negative or does not sum to 1. Checked once at startup, never per request.
var ErrInvalidWeights = errors.New("invalid weight configuration")

// weightTolerance absorbs floating-point drift in the sum-to-one check.
const weightTolerance = 1e-6

// Weights are the fixed blend factors for the composite score.
type Weights struct {
	Province  float64
	Ethnicity float64
	Job       float64
}

// Validate checks that all weights are non-negative and sum to 1.
func (w Weights) Validate() error {
	if w.Province < 0 || w.Ethnicity < 0 || w.Job < 0 {
		return fmt.Errorf("%w: weights must be non-negative (province=%v ethnicity=%v job=%v)",
			ErrInvalidWeights, w.Province, w.Ethnicity, w.Job)
	}
	if sum := w.Province + w.Ethnicity + w.Job; math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("%w: weights sum to %v, want 1", ErrInvalidWeights, sum)
	}
	return nil
}

// Tapered scales the province and ethnicity weights down by the job's
// protective share, handing the remainder to the job weight. As pcsShare
// approaches 1 the score is carried entirely by the job component: a
// worker in a highly protected occupation is not penalized for where they
// live or who they are.
func (w Weights) Tapered(pcsShare float64) Weights {
	pcs := Clamp01(pcsShare)
	wp := w.Province * (1 - pcs)
	we := w.Ethnicity * (1 - pcs)
	return Weights{
		Province:  wp,
		Ethnicity: we,
		Job:       1 - (wp + we),
	}
}

// ComposeFinal blends the three already-normalized risks into one score:
// final = w_p·province + w_e·ethnicity + w_j·job, clamped to [0,1].
// Pure function of its inputs; the weights are assumed validated.
func ComposeFinal(provinceRisk, ethnicityRisk, jobRisk float64, w Weights) float64 {
	return Clamp01(w.Province*provinceRisk + w.Ethnicity*ethnicityRisk + w.Job*jobRisk)
}

// Risk band labels presented alongside the numeric score.
const (
	BandLow    = "Low"
	BandMedium = "Medium"
	BandHigh   = "High"
)

// Band buckets a composite score into a coarse label for display.
func Band(score float64) string {
	switch {
	case score < 0.33:
		return BandLow
	case score < 0.66:
		return BandMedium
	default:
		return BandHigh
	}
}
