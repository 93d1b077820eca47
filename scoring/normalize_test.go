// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestMinMax(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]float64
		want map[string]float64
	}{
		{
			name: "three provinces",
			raw:  map[string]float64{"BC": 16.0, "ON": 19.6, "AB": 10.9},
			want: map[string]float64{
				"BC": (16.0 - 10.9) / (19.6 - 10.9),
				"ON": 1.0,
				"AB": 0.0,
			},
		},
		{
			name: "two values",
			raw:  map[string]float64{"lo": 2.0, "hi": 8.0},
			want: map[string]float64{"lo": 0.0, "hi": 1.0},
		},
		{
			name: "all identical maps to neutral",
			raw:  map[string]float64{"a": 3.0, "b": 3.0, "c": 3.0},
			want: map[string]float64{"a": NeutralRisk, "b": NeutralRisk, "c": NeutralRisk},
		},
		{
			name: "single entry maps to neutral",
			raw:  map[string]float64{"only": 42.0},
			want: map[string]float64{"only": NeutralRisk},
		},
		{
			name: "empty input",
			raw:  map[string]float64{},
			want: map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinMax(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("MinMax() returned %d entries, want %d", len(got), len(tt.want))
			}
			for k, want := range tt.want {
				if !almostEqual(got[k], want) {
					t.Errorf("MinMax()[%s] = %v, want %v", k, got[k], want)
				}
			}
		})
	}
}

func TestMinMax_OutputRange(t *testing.T) {
	raw := map[string]float64{"a": -5.0, "b": 0.0, "c": 100.0, "d": 33.3}

	got := MinMax(raw)
	for k, v := range got {
		if v < 0 || v > 1 {
			t.Errorf("MinMax()[%s] = %v, outside [0,1]", k, v)
		}
	}
	if !almostEqual(got["a"], 0) {
		t.Errorf("minimum should map to 0, got %v", got["a"])
	}
	if !almostEqual(got["c"], 1) {
		t.Errorf("maximum should map to 1, got %v", got["c"])
	}
}

func TestMinMax_PreservesOrder(t *testing.T) {
	// Monotonicity: a larger raw value never gets a smaller risk
	raw := map[string]float64{"w": 1.0, "x": 2.0, "y": 2.0, "z": 9.0}

	got := MinMax(raw)
	if got["w"] >= got["x"] {
		t.Errorf("risk(w)=%v should be below risk(x)=%v", got["w"], got["x"])
	}
	if !almostEqual(got["x"], got["y"]) {
		t.Errorf("equal raw values should get equal risks: %v vs %v", got["x"], got["y"])
	}
	if got["y"] >= got["z"] {
		t.Errorf("risk(y)=%v should be below risk(z)=%v", got["y"], got["z"])
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"below range", -0.1, 0},
		{"zero", 0, 0},
		{"in range", 0.42, 0.42},
		{"one", 1, 1},
		{"above range", 1.0000001, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp01(tt.in); got != tt.want {
				t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
