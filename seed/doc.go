// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed bulk-loads the raw dataset tables.

Seeding runs once at setup (or whenever the source datasets change) and is
the only writer of the raw tables. The seed directory must contain:

  - seed_raw.sql: provinces, ethnicities, and their raw exposure values
  - NOC_Code.csv: occupation codes and titles (NOC_CODE, OASIS_LABEL)
  - SkillsAbilitiesMerged.csv: wide per-job skill/ability magnitudes
  - AbilitySkillRubric.csv: substitution/complementarity indices

	if err := seed.Load(db, "./data"); err != nil {
		...
	}

Occupation codes are normalized to four zero-padded digits. Duplicate
feature rows for the same occupation are averaged; feature rows for
occupations missing from the NOC file are dropped. Each target table is
replaced wholesale inside a transaction.
*/
package seed
