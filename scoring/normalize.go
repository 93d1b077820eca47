// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

// NeutralRisk is assigned to every member of a degenerate peer set
// (all raw values identical), where relative position is undefined.
const NeutralRisk = 0.5

// MinMax rescales a set of raw exposure values onto [0,1] relative to the
// full peer set: risk(k) = (raw(k) - min) / (max - min). The result for a
// key depends only on the set of values, never on iteration order.
//
// If every value is identical (including the single-entry case) each key
// maps to NeutralRisk rather than dividing by zero.
func MinMax(raw map[string]float64) map[string]float64 {
	if len(raw) == 0 {
		return map[string]float64{}
	}

	first := true
	var lo, hi float64
	for _, v := range raw {
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	out := make(map[string]float64, len(raw))
	if hi == lo {
		for k := range raw {
			out[k] = NeutralRisk
		}
		return out
	}

	span := hi - lo
	for k, v := range raw {
		out[k] = (v - lo) / span
	}
	return out
}

// Clamp01 bounds a value to [0,1], absorbing floating-point drift.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
