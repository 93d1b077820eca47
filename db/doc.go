// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

Raw tables, written only by the seed loader:

  - provinces, ethnicities, jobs: static reference data
  - job_titles: all (job_id, title) alias pairs for search
  - province_exposure_raw, ethnicity_exposure_raw: exposure measurements
  - job_features_raw: per-job skill/ability vector (JSON)
  - skill_rubric: substitution/complementarity indices per skill name

Derived tables, replaced wholesale by each recalculation run:

  - province_risk, ethnicity_risk: normalized [0,1] risks
  - job_profile: protective (physical/creative/social) share per job
  - job_risk: normalized [0,1] job risk

Plus recalc_run, an audit row per recalculation invocation.

# Relationships

	provinces   1──1 province_exposure_raw 1──1 province_risk
	ethnicities 1──1 ethnicity_exposure_raw 1──1 ethnicity_risk
	jobs        1──* job_titles
	jobs        1──1 job_features_raw
	jobs        1──1 job_profile
	jobs        1──1 job_risk

All foreign keys use ON DELETE CASCADE. The SQL is restricted to the
portable subset shared by SQLite and PostgreSQL.
*/
package db
