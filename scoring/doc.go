// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring implements the risk scoring engine: pure functions that turn
raw exposure measurements into normalized [0,1] risks and compose them into
one final score.

# Pipeline

	raw exposures ──MinMax──▶ province/ethnicity risk
	job features  ──ScoreJob──▶ routine exposure + PCS share
	              ──ComposeJobRisks──▶ job risk
	three risks   ──ComposeFinal──▶ composite score ──Band──▶ label

# Exposure Normalization

MinMax rescales any peer set of raw values onto [0,1]. A degenerate set
(every value identical) maps uniformly to NeutralRisk (0.5).

# Skill Vulnerability

ScoreJob computes, per job and with no cross-job state:

  - RoutineExposure: magnitude-weighted average substitution index
  - PCSShare: protective (physical/creative/social) fraction of the
    categorized feature mass

The rubric is closed-world: any feature key without a rubric entry fails
with ErrMissingRubricEntry. Category lookups fall back to CategoryOther,
which carries no signal in either direction.

# Job Risk Composition

ComposeJobRisks min-max normalizes routine exposure across the whole job
set, then applies a Combiner. The combiner is a plain function value so the
combination policy can be swapped; MultiplicativeCombiner is the reference:

	risk = clamp(routineNorm · (1 − pcsShare), 0, 1)

# Composite Score

ComposeFinal is a fixed-weight linear blend. Weights must be non-negative
and sum to 1 (Weights.Validate, checked once at startup). Tapered derives
PCS-adjusted weights for deployments that enable the taper policy.

Every function here is pure and side-effect free; concurrent callers need
no synchronization.
*/
package scoring
