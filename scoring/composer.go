// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

// Combiner merges a job's normalized routine risk and protective share into
// one job risk. Any combiner must be monotonic increasing in routineNorm,
// monotonic decreasing in pcsShare, and return a value in [0,1].
type Combiner func(routineNorm, pcsShare float64) float64

// MultiplicativeCombiner is the reference combination: the protective share
// scales the routine risk down, flooring at 0 for a fully protective job
// (pcsShare = 1) and passing routine risk through untouched at pcsShare = 0.
func MultiplicativeCombiner(routineNorm, pcsShare float64) float64 {
	return Clamp01(routineNorm * (1 - pcsShare))
}

// ComposeJobRisks turns per-job routine exposures and protective shares into
// final job risks: routine exposure is first min-max normalized across the
// entire job set, then combined with the job's protective share.
func ComposeJobRisks(exposures, pcsShares map[string]float64, combine Combiner) map[string]float64 {
	routineNorm := MinMax(exposures)

	risks := make(map[string]float64, len(routineNorm))
	for jobID, rn := range routineNorm {
		risks[jobID] = combine(rn, Clamp01(pcsShares[jobID]))
	}
	return risks
}
