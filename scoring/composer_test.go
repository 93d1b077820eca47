// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import "testing"

func TestMultiplicativeCombiner(t *testing.T) {
	tests := []struct {
		name        string
		routineNorm float64
		pcsShare    float64
		want        float64
	}{
		{"no protection passes through", 0.8, 0.0, 0.8},
		{"full protection floors at zero", 1.0, 1.0, 0.0},
		{"half protection halves", 0.6, 0.5, 0.3},
		{"zero routine stays zero", 0.0, 0.2, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MultiplicativeCombiner(tt.routineNorm, tt.pcsShare); !almostEqual(got, tt.want) {
				t.Errorf("MultiplicativeCombiner(%v, %v) = %v, want %v",
					tt.routineNorm, tt.pcsShare, got, tt.want)
			}
		})
	}
}

func TestMultiplicativeCombiner_Monotonic(t *testing.T) {
	// Increasing routine risk never lowers job risk
	if MultiplicativeCombiner(0.3, 0.4) > MultiplicativeCombiner(0.7, 0.4) {
		t.Error("combiner should be increasing in routineNorm")
	}
	// Increasing protection never raises job risk
	if MultiplicativeCombiner(0.7, 0.6) > MultiplicativeCombiner(0.7, 0.2) {
		t.Error("combiner should be decreasing in pcsShare")
	}
}

func TestComposeJobRisks(t *testing.T) {
	exposures := map[string]float64{
		"0001": 0.6,
		"0002": 0.3,
		"0003": 0.45,
	}
	pcsShares := map[string]float64{
		"0001": 0.0,
		"0002": 0.0,
		"0003": 0.5,
	}

	got := ComposeJobRisks(exposures, pcsShares, MultiplicativeCombiner)

	// Exposures are normalized across the job set before combining:
	// 0001 -> 1.0, 0002 -> 0.0, 0003 -> 0.5 then halved by protection.
	want := map[string]float64{
		"0001": 1.0,
		"0002": 0.0,
		"0003": 0.25,
	}
	for jobID, w := range want {
		if !almostEqual(got[jobID], w) {
			t.Errorf("risk[%s] = %v, want %v", jobID, got[jobID], w)
		}
	}
}

func TestComposeJobRisks_FullyProtectedJob(t *testing.T) {
	// Even the most exposed job scores zero when fully protective
	got := ComposeJobRisks(
		map[string]float64{"a": 0.9, "b": 0.1},
		map[string]float64{"a": 1.0, "b": 0.0},
		MultiplicativeCombiner,
	)
	if got["a"] != 0 {
		t.Errorf("risk[a] = %v, want 0 for pcsShare=1", got["a"])
	}
}

func TestComposeJobRisks_SingleJob(t *testing.T) {
	// A lone job has no peers; it normalizes to neutral
	got := ComposeJobRisks(
		map[string]float64{"only": 0.7},
		map[string]float64{"only": 0.0},
		MultiplicativeCombiner,
	)
	if !almostEqual(got["only"], NeutralRisk) {
		t.Errorf("risk[only] = %v, want %v", got["only"], NeutralRisk)
	}
}
