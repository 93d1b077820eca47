// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"errors"
	"strings"
	"testing"
)

func testCategories(t *testing.T) CategoryMap {
	t.Helper()
	cm, err := BuildCategoryMap(map[string][]string{
		"routine":  {"Monitoring", "Numeracy"},
		"physical": {"Stamina"},
		"creative": {"Product Design"},
		"social":   {"Negotiating"},
	})
	if err != nil {
		t.Fatalf("BuildCategoryMap() error = %v", err)
	}
	return cm
}

func TestScoreJob(t *testing.T) {
	categories := testCategories(t)

	tests := []struct {
		name         string
		features     map[string]float64
		rubric       Rubric
		wantExposure float64
		wantPCS      float64
	}{
		{
			// Two equal-magnitude skills, one routine (sub 0.8) and one
			// social (sub 0.1): exposure (0.8+0.1)/2, half the categorized
			// mass is protective.
			name:     "routine vs social split",
			features: map[string]float64{"Monitoring": 2, "Negotiating": 2},
			rubric: Rubric{
				"monitoring":  {Substitution: 0.8},
				"negotiating": {Substitution: 0.1},
			},
			wantExposure: 0.45,
			wantPCS:      0.5,
		},
		{
			name:     "magnitude weighting",
			features: map[string]float64{"Monitoring": 3, "Negotiating": 1},
			rubric: Rubric{
				"monitoring":  {Substitution: 1.0},
				"negotiating": {Substitution: 0.0},
			},
			wantExposure: 0.75,
			wantPCS:      0.25,
		},
		{
			name:     "all protective",
			features: map[string]float64{"Stamina": 2, "Negotiating": 3},
			rubric: Rubric{
				"stamina":     {Substitution: 0.2},
				"negotiating": {Substitution: 0.1},
			},
			wantExposure: (2*0.2 + 3*0.1) / 5,
			wantPCS:      1.0,
		},
		{
			name:     "all routine",
			features: map[string]float64{"Monitoring": 1, "Numeracy": 1},
			rubric: Rubric{
				"monitoring": {Substitution: 0.5},
				"numeracy":   {Substitution: 0.7},
			},
			wantExposure: 0.6,
			wantPCS:      0.0,
		},
		{
			// Uncategorized skills still count toward routine exposure but
			// stay out of the protective share entirely.
			name:     "other category excluded from pcs",
			features: map[string]float64{"Monitoring": 2, "Basket Weaving": 2},
			rubric: Rubric{
				"monitoring":     {Substitution: 0.8},
				"basket weaving": {Substitution: 0.4},
			},
			wantExposure: 0.6,
			wantPCS:      0.0,
		},
		{
			name:     "zero magnitudes",
			features: map[string]float64{"Monitoring": 0, "Negotiating": 0},
			rubric: Rubric{
				"monitoring":  {Substitution: 0.8},
				"negotiating": {Substitution: 0.1},
			},
			wantExposure: 0.0,
			wantPCS:      0.0,
		},
		{
			// Negative magnitudes are dirty data; treated as zero weight
			name:     "negative magnitude ignored",
			features: map[string]float64{"Monitoring": 2, "Negotiating": -3},
			rubric: Rubric{
				"monitoring":  {Substitution: 0.5},
				"negotiating": {Substitution: 0.9},
			},
			wantExposure: 0.5,
			wantPCS:      0.0,
		},
		{
			name:         "empty feature vector",
			features:     map[string]float64{},
			rubric:       Rubric{},
			wantExposure: 0.0,
			wantPCS:      0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreJob(tt.features, tt.rubric, categories)
			if err != nil {
				t.Fatalf("ScoreJob() error = %v", err)
			}
			if !almostEqual(got.RoutineExposure, tt.wantExposure) {
				t.Errorf("RoutineExposure = %v, want %v", got.RoutineExposure, tt.wantExposure)
			}
			if !almostEqual(got.PCSShare, tt.wantPCS) {
				t.Errorf("PCSShare = %v, want %v", got.PCSShare, tt.wantPCS)
			}
		})
	}
}

func TestScoreJob_MissingRubricEntry(t *testing.T) {
	categories := testCategories(t)
	features := map[string]float64{"Monitoring": 2, "Negotiating": 2}
	rubric := Rubric{"monitoring": {Substitution: 0.8}}

	_, err := ScoreJob(features, rubric, categories)
	if !errors.Is(err, ErrMissingRubricEntry) {
		t.Fatalf("ScoreJob() error = %v, want ErrMissingRubricEntry", err)
	}
	if !strings.Contains(err.Error(), "Negotiating") {
		t.Errorf("error should name the missing skill, got: %v", err)
	}
}

func TestRubricValidate(t *testing.T) {
	rubric := Rubric{"monitoring": {Substitution: 0.8}}

	if err := rubric.Validate(map[string]float64{"Monitoring": 1}); err != nil {
		t.Errorf("Validate() with full coverage error = %v", err)
	}

	// Missing skills are listed sorted so reruns produce the same message
	err := rubric.Validate(map[string]float64{"Zeta": 1, "Alpha": 1, "Monitoring": 1})
	if !errors.Is(err, ErrMissingRubricEntry) {
		t.Fatalf("Validate() error = %v, want ErrMissingRubricEntry", err)
	}
	msg := err.Error()
	if strings.Index(msg, "Alpha") > strings.Index(msg, "Zeta") {
		t.Errorf("missing skills should be sorted: %v", msg)
	}
}

func TestScoreJob_RubricMatchesNormalizedNames(t *testing.T) {
	categories := testCategories(t)

	// Feature spelling drifts from the rubric spelling; the normalized key
	// still joins them.
	features := map[string]float64{"MULTI-LIMB  COORDINATION": 2}
	rubric := Rubric{"multi limb coordination": {Substitution: 0.3}}

	got, err := ScoreJob(features, rubric, categories)
	if err != nil {
		t.Fatalf("ScoreJob() error = %v", err)
	}
	if !almostEqual(got.RoutineExposure, 0.3) {
		t.Errorf("RoutineExposure = %v, want 0.3", got.RoutineExposure)
	}
}
