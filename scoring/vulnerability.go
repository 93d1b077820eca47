// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMissingRubricEntry indicates a skill referenced by a job feature vector
// has no rubric entry. The rubric is closed-world: a missing entry is a
// data-integrity fault, never silently scored as zero.
var ErrMissingRubricEntry = errors.New("missing rubric entry")

// RubricEntry holds the substitution/complementarity weights for one
// skill/ability, already scaled to [0,1].
type RubricEntry struct {
	Substitution    float64
	Complementarity float64
}

// Rubric maps normalized skill/ability names (see NormKey) to their entries.
type Rubric map[string]RubricEntry

// Validate checks that every feature key has a rubric entry. Returns an
// error wrapping ErrMissingRubricEntry naming the offending skills.
func (r Rubric) Validate(features map[string]float64) error {
	var missing []string
	for name := range features {
		if _, ok := r[NormKey(name)]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%w: %v", ErrMissingRubricEntry, missing)
}

// JobScore is the per-job output of the skill vulnerability scorer.
type JobScore struct {
	// RoutineExposure is the magnitude-weighted average substitution index
	// across the job's features.
	RoutineExposure float64
	// PCSShare is the fraction of categorized feature weight attributable
	// to protective (physical/creative/social) skills, in [0,1].
	PCSShare float64
}

// ScoreJob computes routine exposure and protective share for a single job.
// All inputs are expected on their final scale (magnitudes and rubric
// indices in [0,1]); no cross-job state is involved.
//
// Skills the rubric lacks fail the computation with ErrMissingRubricEntry.
// Skills the category map does not know ("other") carry no routine or
// protective signal and are left out of the PCS share on both sides.
func ScoreJob(features map[string]float64, rubric Rubric, categories CategoryMap) (JobScore, error) {
	if err := rubric.Validate(features); err != nil {
		return JobScore{}, err
	}

	var (
		weightedSub float64 // Σ magnitude · substitution_index
		totalMass   float64 // Σ magnitude
		pcsMass     float64 // protective magnitude
		pcsDenom    float64 // protective + routine magnitude
	)

	for name, magnitude := range features {
		if magnitude < 0 {
			magnitude = 0
		}

		entry := rubric[NormKey(name)]
		weightedSub += magnitude * entry.Substitution
		totalMass += magnitude

		switch cat := categories.Lookup(name); {
		case cat.Protective():
			pcsMass += magnitude
			pcsDenom += magnitude
		case cat == CategoryRoutine:
			pcsDenom += magnitude
		}
	}

	score := JobScore{}
	if totalMass > 0 {
		score.RoutineExposure = weightedSub / totalMass
	}
	if pcsDenom > 0 {
		score.PCSShare = Clamp01(pcsMass / pcsDenom)
	}
	return score, nil
}
