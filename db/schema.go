// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The SQL below sticks to the portable subset shared by SQLite and
// PostgreSQL, since the service runs on either driver.
const schema = `
-- Reference data
CREATE TABLE IF NOT EXISTS provinces (
    code TEXT PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS ethnicities (
    code TEXT PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS jobs (
    job_id TEXT PRIMARY KEY,
    title TEXT NOT NULL
);

-- All (job_id, title) alias pairs, kept for free-text search.
CREATE TABLE IF NOT EXISTS job_titles (
    job_id TEXT NOT NULL REFERENCES jobs(job_id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    PRIMARY KEY (job_id, title)
);

CREATE INDEX IF NOT EXISTS idx_job_titles_title ON job_titles(title);

-- Raw exposure measurements (bulk-loaded, never touched by recalculation)
CREATE TABLE IF NOT EXISTS province_exposure_raw (
    province_code TEXT PRIMARY KEY REFERENCES provinces(code) ON DELETE CASCADE,
    exposure_value REAL NOT NULL CHECK (exposure_value >= 0)
);

CREATE TABLE IF NOT EXISTS ethnicity_exposure_raw (
    ethnicity_code TEXT PRIMARY KEY REFERENCES ethnicities(code) ON DELETE CASCADE,
    exposure_value REAL NOT NULL CHECK (exposure_value >= 0)
);

-- One row per job: the full skill/ability vector serialized as JSON.
CREATE TABLE IF NOT EXISTS job_features_raw (
    job_id TEXT PRIMARY KEY REFERENCES jobs(job_id) ON DELETE CASCADE,
    features_json TEXT NOT NULL
);

-- Substitution/complementarity rubric, one row per skill/ability name.
CREATE TABLE IF NOT EXISTS skill_rubric (
    name TEXT PRIMARY KEY,
    substitution_index REAL NOT NULL,
    complementarity_index REAL NOT NULL
);

-- Derived tables (replaced wholesale by the recalculation driver)
CREATE TABLE IF NOT EXISTS province_risk (
    province_code TEXT PRIMARY KEY REFERENCES provinces(code) ON DELETE CASCADE,
    risk REAL NOT NULL CHECK (risk >= 0 AND risk <= 1)
);

CREATE TABLE IF NOT EXISTS ethnicity_risk (
    ethnicity_code TEXT PRIMARY KEY REFERENCES ethnicities(code) ON DELETE CASCADE,
    risk REAL NOT NULL CHECK (risk >= 0 AND risk <= 1)
);

CREATE TABLE IF NOT EXISTS job_profile (
    job_id TEXT PRIMARY KEY REFERENCES jobs(job_id) ON DELETE CASCADE,
    pcs_share REAL NOT NULL CHECK (pcs_share >= 0 AND pcs_share <= 1)
);

CREATE TABLE IF NOT EXISTS job_risk (
    job_id TEXT PRIMARY KEY REFERENCES jobs(job_id) ON DELETE CASCADE,
    risk REAL NOT NULL CHECK (risk >= 0 AND risk <= 1)
);

-- Audit trail of recalculation runs
CREATE TABLE IF NOT EXISTS recalc_run (
    id TEXT PRIMARY KEY,
    started_at TIMESTAMP NOT NULL,
    finished_at TIMESTAMP,
    status TEXT NOT NULL CHECK (status IN ('running', 'complete', 'failed')),
    rows_written TEXT,
    error TEXT
);
`
