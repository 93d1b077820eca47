// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package config

// Defaults returns the stock scoring policy: the weights and category
// rubric the NOC/OASIS dataset was calibrated with. Feature magnitudes
// arrive on a 0-5 importance scale and rubric indices on a 1-5 scale;
// both are rescaled to [0,1] before scoring.
func Defaults() Config {
	return Config{
		Weights: Weights{
			Province:  0.10,
			Ethnicity: 0.15,
			Job:       0.75,
		},
		TaperByPCS:             false,
		EthnicityNormalization: EthnicityMinMax,
		FeatureScaleMax:        5.0,
		RubricScaleMax:         5.0,
		Categories:             defaultCategories(),
	}
}

// defaultCategories is the PCS classification of the ~82 OASIS skill and
// ability names. Names missing from every list are treated as "other" and
// carry no routine or protective signal.
func defaultCategories() map[string][]string {
	return map[string][]string{
		"routine": {
			"Operation Monitoring of Machinery and Equipment",
			"Quality Control Testing",
			"Monitoring",
			"Categorization Flexibility",
			"Numeracy",
			"Information Ordering",
			"Pattern Identification",
			"Pattern Organization Speed",
		},
		"physical": {
			"Repairing",
			"Setting up",
			"Memorizing",
			"Multitasking",
			"Perceptual Speed",
			"Selective Attention",
			"Spatial Orientation",
			"Spatial Visualization",
			"Verbal Ability",
			"Body Flexibility",
			"Dynamic Strength",
			"Explosive Strength",
			"Gross Body Coordination",
			"Gross Body Equilibrium",
			"Multi-Limb Coordination",
			"Stamina",
			"Static Strength",
			"Trunk Strength",
			"Arm-Hand Steadiness",
			"Control of Settings",
			"Finger Dexterity",
			"Manual Dexterity",
			"Multi-Signal Response",
			"Rate Control",
			"Reaction Time",
			"Speed of Limb Movement",
			"Finger-Hand-Wrist Motion",
			"Auditory Attention",
			"Depth Perception",
			"Far Vision",
			"Glare Tolerance",
			"Hearing Sensitivity",
			"Near Vision",
			"Night Vision",
			"Peripheral Vision",
			"Speech Clarity",
			"Speech Recognition",
			"Sound Localization",
			"Colour Perception",
		},
		"creative": {
			"Fluency of Ideas",
			"Product Design",
		},
		"social": {
			"Oral Communication: Active Listening",
			"Oral Communication: Oral Comprehension",
			"Oral Communication: Oral Expression",
			"Coordinating",
			"Instructing",
			"Negotiating",
			"Persuading",
			"Social Perceptiveness",
		},
	}
}
