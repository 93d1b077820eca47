// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package recalc

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/danielhkuo/pathbuilder/config"
	"github.com/danielhkuo/pathbuilder/scoring"
)

// ErrAlreadyRunning is returned when a run is requested while one is in
// flight. Only one recalculation may run at a time.
var ErrAlreadyRunning = errors.New("recalculation already running")

// Status is the driver's lifecycle state.
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusComplete
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusComplete:
		return "complete"
	case StatusFailed:
		return "failed"
	default:
		return "not_started"
	}
}

// Result summarizes one recalculation run.
type Result struct {
	RunID       string
	Status      Status
	RowsWritten map[string]int
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Driver orchestrates the scoring engine over the full dataset, replacing
// all derived tables atomically. It owns the lifecycle state that gates
// request serving: scores may only be served while the driver is Complete.
type Driver struct {
	db         *sql.DB
	cfg        config.Config
	categories scoring.CategoryMap
	combine    scoring.Combiner

	mu      sync.Mutex
	status  Status
	lastErr error
}

// New builds a driver from a validated scoring config. The category map is
// compiled once here so a bad config fails at startup, not mid-run.
func New(db *sql.DB, cfg config.Config) (*Driver, error) {
	categories, err := cfg.CategoryMap()
	if err != nil {
		return nil, err
	}
	return &Driver{
		db:         db,
		cfg:        cfg,
		categories: categories,
		combine:    scoring.MultiplicativeCombiner,
	}, nil
}

// Status returns the current lifecycle state.
func (d *Driver) Status() Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}

// Ready reports whether derived tables are consistent and serving is allowed.
func (d *Driver) Ready() bool {
	return d.Status() == StatusComplete
}

// LastError returns the error from the most recent failed run, if any.
func (d *Driver) LastError() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastErr
}

// Run executes one full recalculation pass. On success all derived tables
// have been replaced in a single transaction; on failure nothing was
// written, the prior snapshot (if any) is intact, and the driver is Failed
// until a later run succeeds.
func (d *Driver) Run() (Result, error) {
	d.mu.Lock()
	if d.status == StatusRunning {
		d.mu.Unlock()
		return Result{}, ErrAlreadyRunning
	}
	d.status = StatusRunning
	d.mu.Unlock()

	res, err := d.run()

	d.mu.Lock()
	if err != nil {
		d.status = StatusFailed
		d.lastErr = err
	} else {
		d.status = StatusComplete
		d.lastErr = nil
	}
	res.Status = d.status
	d.mu.Unlock()

	return res, err
}

func (d *Driver) run() (Result, error) {
	res := Result{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}

	if _, err := d.db.Exec(`
		INSERT INTO recalc_run (id, started_at, status)
		VALUES ($1, $2, 'running')
	`, res.RunID, res.StartedAt); err != nil {
		return res, fmt.Errorf("failed to record run start: %w", err)
	}

	rows, err := d.compute()
	if err != nil {
		d.finishRun(res.RunID, "failed", nil, err)
		res.FinishedAt = time.Now().UTC()
		return res, err
	}

	written, err := d.publish(rows)
	if err != nil {
		d.finishRun(res.RunID, "failed", nil, err)
		res.FinishedAt = time.Now().UTC()
		return res, err
	}

	res.RowsWritten = written
	res.FinishedAt = time.Now().UTC()
	d.finishRun(res.RunID, "complete", written, nil)

	total := 0
	for _, n := range written {
		total += n
	}
	slog.Info("recalculation complete",
		"run_id", res.RunID,
		"rows", humanize.Comma(int64(total)),
		"duration_ms", res.FinishedAt.Sub(res.StartedAt).Milliseconds(),
	)
	return res, nil
}

// derivedRows holds one full derived snapshot, ready to publish.
type derivedRows struct {
	provinceRisk  map[string]float64
	ethnicityRisk map[string]float64
	pcsShare      map[string]float64
	jobRisk       map[string]float64
}

// compute runs the scoring engine over the raw tables. Pure reads; nothing
// is written until publish.
func (d *Driver) compute() (derivedRows, error) {
	var out derivedRows

	provinceRaw, err := readExposures(d.db, "province_exposure_raw", "province_code")
	if err != nil {
		return out, err
	}
	ethnicityRaw, err := readExposures(d.db, "ethnicity_exposure_raw", "ethnicity_code")
	if err != nil {
		return out, err
	}
	features, err := d.readFeatures()
	if err != nil {
		return out, err
	}
	rubric, err := d.readRubric()
	if err != nil {
		return out, err
	}

	// Eager closed-world check: every feature key of every job must have a
	// rubric entry before any scoring happens.
	for _, jobID := range sortedKeys(features) {
		if err := rubric.Validate(features[jobID]); err != nil {
			return out, fmt.Errorf("job %s: %w", jobID, err)
		}
	}

	out.provinceRisk = scoring.MinMax(provinceRaw)

	switch d.cfg.EthnicityNormalization {
	case config.EthnicityPassthrough:
		out.ethnicityRisk = make(map[string]float64, len(ethnicityRaw))
		for code, v := range ethnicityRaw {
			out.ethnicityRisk[code] = scoring.Clamp01(v)
		}
	default:
		out.ethnicityRisk = scoring.MinMax(ethnicityRaw)
	}

	exposures := make(map[string]float64, len(features))
	out.pcsShare = make(map[string]float64, len(features))
	for jobID, vector := range features {
		score, err := scoring.ScoreJob(vector, rubric, d.categories)
		if err != nil {
			return out, fmt.Errorf("job %s: %w", jobID, err)
		}
		exposures[jobID] = score.RoutineExposure
		out.pcsShare[jobID] = score.PCSShare
	}

	out.jobRisk = scoring.ComposeJobRisks(exposures, out.pcsShare, d.combine)
	return out, nil
}

// publish replaces all four derived tables in one transaction, so readers
// observe either the old snapshot or the new one, never a mix. Rows are
// inserted in sorted key order to keep reruns byte-identical.
func (d *Driver) publish(rows derivedRows) (map[string]int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin publish transaction: %w", err)
	}
	defer tx.Rollback()

	written := make(map[string]int, 4)

	for _, t := range []struct {
		table  string
		keyCol string
		valCol string
		data   map[string]float64
	}{
		{"province_risk", "province_code", "risk", rows.provinceRisk},
		{"ethnicity_risk", "ethnicity_code", "risk", rows.ethnicityRisk},
		{"job_profile", "job_id", "pcs_share", rows.pcsShare},
		{"job_risk", "job_id", "risk", rows.jobRisk},
	} {
		if _, err := tx.Exec("DELETE FROM " + t.table); err != nil {
			return nil, fmt.Errorf("failed to clear %s: %w", t.table, err)
		}

		insert := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)", t.table, t.keyCol, t.valCol)
		for _, key := range sortedKeys(t.data) {
			if _, err := tx.Exec(insert, key, t.data[key]); err != nil {
				return nil, fmt.Errorf("failed to insert into %s: %w", t.table, err)
			}
		}
		written[t.table] = len(t.data)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit publish transaction: %w", err)
	}
	return written, nil
}

// finishRun updates the audit row. Best effort: a failed audit write must
// not mask the run's own outcome.
func (d *Driver) finishRun(runID, status string, written map[string]int, runErr error) {
	var rowsJSON sql.NullString
	if written != nil {
		if data, err := json.Marshal(written); err == nil {
			rowsJSON = sql.NullString{String: string(data), Valid: true}
		}
	}
	var errText sql.NullString
	if runErr != nil {
		errText = sql.NullString{String: runErr.Error(), Valid: true}
	}

	if _, err := d.db.Exec(`
		UPDATE recalc_run
		SET finished_at = $1, status = $2, rows_written = $3, error = $4
		WHERE id = $5
	`, time.Now().UTC(), status, rowsJSON, errText, runID); err != nil {
		slog.Error("failed to update recalc_run audit row", "run_id", runID, "error", err)
	}
}

// readExposures loads one raw exposure table into a map.
func readExposures(db *sql.DB, table, keyCol string) (map[string]float64, error) {
	rows, err := db.Query(fmt.Sprintf("SELECT %s, exposure_value FROM %s", keyCol, table))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}
	defer rows.Close()

	out := make(map[string]float64)
	for rows.Next() {
		var key string
		var value float64
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		out[key] = value
	}
	return out, rows.Err()
}

// readFeatures loads every job's feature vector, rescaling magnitudes from
// the dataset's raw scale to [0,1].
func (d *Driver) readFeatures() (map[string]map[string]float64, error) {
	rows, err := d.db.Query("SELECT job_id, features_json FROM job_features_raw")
	if err != nil {
		return nil, fmt.Errorf("failed to read job features: %w", err)
	}
	defer rows.Close()

	out := make(map[string]map[string]float64)
	for rows.Next() {
		var jobID, featuresJSON string
		if err := rows.Scan(&jobID, &featuresJSON); err != nil {
			return nil, fmt.Errorf("failed to scan job features: %w", err)
		}

		var vector map[string]float64
		if err := json.Unmarshal([]byte(featuresJSON), &vector); err != nil {
			return nil, fmt.Errorf("corrupt features_json for job %s: %w", jobID, err)
		}

		scaled := make(map[string]float64, len(vector))
		for name, v := range vector {
			if v < 0 {
				v = 0
			}
			if v > d.cfg.FeatureScaleMax {
				v = d.cfg.FeatureScaleMax
			}
			scaled[name] = v / d.cfg.FeatureScaleMax
		}
		out[jobID] = scaled
	}
	return out, rows.Err()
}

// readRubric loads the substitution/complementarity rubric, keyed by
// normalized skill name and rescaled to [0,1].
func (d *Driver) readRubric() (scoring.Rubric, error) {
	rows, err := d.db.Query("SELECT name, substitution_index, complementarity_index FROM skill_rubric")
	if err != nil {
		return nil, fmt.Errorf("failed to read skill rubric: %w", err)
	}
	defer rows.Close()

	rubric := make(scoring.Rubric)
	for rows.Next() {
		var name string
		var sub, comp float64
		if err := rows.Scan(&name, &sub, &comp); err != nil {
			return nil, fmt.Errorf("failed to scan skill rubric: %w", err)
		}
		rubric[scoring.NormKey(name)] = scoring.RubricEntry{
			Substitution:    scoring.Clamp01(sub / d.cfg.RubricScaleMax),
			Complementarity: scoring.Clamp01(comp / d.cfg.RubricScaleMax),
		}
	}
	return rubric, rows.Err()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
