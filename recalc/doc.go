// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package recalc orchestrates the scoring engine over the full dataset.

# Lifecycle

The driver moves through a small state machine:

	NotStarted ──▶ Running ──▶ Complete
	                  │
	                  └──────▶ Failed

Failed blocks request serving until a later run succeeds: stale or partial
derived data would silently corrupt every score, so handlers consult
Driver.Ready before touching derived tables.

# Running

	driver, err := recalc.New(db, scoringCfg)
	result, err := driver.Run()

Run reads the raw tables, validates the rubric against every job's feature
keys (a missing entry fails the whole run before anything is written),
scores all jobs, and replaces the four derived tables inside a single
transaction. Readers therefore observe either the previous snapshot or the
new one, never a mix; a failed run rolls back and leaves the prior snapshot
intact.

Rows are written in sorted key order so rerunning on unchanged raw data
produces byte-identical derived tables.

# Auditing

Each invocation writes a recalc_run row (uuid, timestamps, status,
per-table row counts, error text). Concurrent Run calls are rejected with
ErrAlreadyRunning.
*/
package recalc
