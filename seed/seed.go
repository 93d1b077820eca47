// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Expected file names inside the seed directory.
const (
	RawSQLFile   = "seed_raw.sql"
	NOCFile      = "NOC_Code.csv"
	FeaturesFile = "SkillsAbilitiesMerged.csv"
	RubricFile   = "AbilitySkillRubric.csv"
)

// Column names in the source CSVs.
const (
	colJobID = "NOC_CODE"
	colTitle = "OASIS_LABEL"

	colRubricName = "Name"
	colRubricSub  = "Substitution_Index"
	colRubricComp = "Complementarity_Index"
)

// Load bulk-loads the raw tables from a seed directory:
// provinces/ethnicities plus raw exposures from seed_raw.sql, jobs and
// title aliases from the NOC CSV, feature vectors from the wide skills
// CSV, and the ability/skill rubric. Each table is replaced wholesale.
func Load(db *sql.DB, dir string) error {
	if err := applySQL(db, filepath.Join(dir, RawSQLFile)); err != nil {
		return err
	}
	if err := loadJobs(db, filepath.Join(dir, NOCFile)); err != nil {
		return err
	}
	if err := loadFeatures(db, filepath.Join(dir, FeaturesFile)); err != nil {
		return err
	}
	if err := loadRubric(db, filepath.Join(dir, RubricFile)); err != nil {
		return err
	}
	return nil
}

// applySQL executes a seed SQL script as-is.
func applySQL(db *sql.DB, path string) error {
	script, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading seed script %s: %w", path, err)
	}
	if _, err := db.Exec(string(script)); err != nil {
		return fmt.Errorf("applying seed script %s: %w", path, err)
	}
	slog.Info("seed script applied", "file", filepath.Base(path))
	return nil
}

// NormalizeJobID canonicalizes a NOC occupation code: codes of up to four
// digits are zero-padded to four ("1" -> "0001"); anything else is kept
// trimmed as-is.
func NormalizeJobID(s string) string {
	s = strings.TrimSpace(s)
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if n := digits.Len(); n > 0 && n <= 4 {
		return strings.Repeat("0", 4-n) + digits.String()
	}
	return s
}

// loadJobs reads the NOC CSV and populates jobs (one canonical row per
// job_id, first title wins) and job_titles (every distinct pair, for
// search).
func loadJobs(db *sql.DB, path string) error {
	records, header, err := readCSV(path)
	if err != nil {
		return err
	}

	idCol, ok := header[colJobID]
	if !ok {
		return fmt.Errorf("%s must contain a %s column", filepath.Base(path), colJobID)
	}
	titleCol, ok := header[colTitle]
	if !ok {
		return fmt.Errorf("%s must contain a %s column", filepath.Base(path), colTitle)
	}

	type pair struct{ jobID, title string }
	var canonical []pair
	var aliases []pair
	seenJob := make(map[string]bool)
	seenPair := make(map[pair]bool)

	for _, rec := range records {
		jobID := NormalizeJobID(field(rec, idCol))
		title := strings.TrimSpace(field(rec, titleCol))
		if jobID == "" {
			continue
		}
		if !seenJob[jobID] {
			seenJob[jobID] = true
			canonical = append(canonical, pair{jobID, title})
		}
		p := pair{jobID, title}
		if !seenPair[p] {
			seenPair[p] = true
			aliases = append(aliases, p)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("loading jobs: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM job_titles"); err != nil {
		return fmt.Errorf("clearing job_titles: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM jobs"); err != nil {
		return fmt.Errorf("clearing jobs: %w", err)
	}
	for _, p := range canonical {
		if _, err := tx.Exec("INSERT INTO jobs (job_id, title) VALUES ($1, $2)", p.jobID, p.title); err != nil {
			return fmt.Errorf("inserting job %s: %w", p.jobID, err)
		}
	}
	for _, p := range aliases {
		if _, err := tx.Exec("INSERT INTO job_titles (job_id, title) VALUES ($1, $2)", p.jobID, p.title); err != nil {
			return fmt.Errorf("inserting job title %s: %w", p.jobID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("loading jobs: %w", err)
	}

	slog.Info("jobs loaded",
		"jobs", humanize.Comma(int64(len(canonical))),
		"titles", humanize.Comma(int64(len(aliases))),
	)
	return nil
}

// loadFeatures reads the wide skills/abilities CSV. Duplicate rows per job
// are averaged, non-numeric cells become 0, and each job's vector is stored
// as JSON. Rows whose job_id is absent from jobs are skipped.
func loadFeatures(db *sql.DB, path string) error {
	records, header, err := readCSV(path)
	if err != nil {
		return err
	}

	idCol, ok := header[colJobID]
	if !ok {
		return fmt.Errorf("%s must contain a %s column", filepath.Base(path), colJobID)
	}

	featureCols := make(map[string]int) // feature name -> column index
	for name, idx := range header {
		if name == colJobID || name == colTitle {
			continue
		}
		featureCols[name] = idx
	}

	known, err := knownJobIDs(db)
	if err != nil {
		return err
	}

	sums := make(map[string]map[string]float64)
	counts := make(map[string]int)
	for _, rec := range records {
		jobID := NormalizeJobID(field(rec, idCol))
		if jobID == "" || !known[jobID] {
			continue
		}
		if sums[jobID] == nil {
			sums[jobID] = make(map[string]float64, len(featureCols))
		}
		for name, idx := range featureCols {
			v, err := strconv.ParseFloat(strings.TrimSpace(field(rec, idx)), 64)
			if err != nil {
				v = 0
			}
			sums[jobID][name] += v
		}
		counts[jobID]++
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("loading job features: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM job_features_raw"); err != nil {
		return fmt.Errorf("clearing job_features_raw: %w", err)
	}
	for jobID, vector := range sums {
		n := float64(counts[jobID])
		avg := make(map[string]float64, len(vector))
		for name, sum := range vector {
			avg[name] = sum / n
		}
		data, err := json.Marshal(avg)
		if err != nil {
			return fmt.Errorf("encoding features for job %s: %w", jobID, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO job_features_raw (job_id, features_json) VALUES ($1, $2)",
			jobID, string(data),
		); err != nil {
			return fmt.Errorf("inserting features for job %s: %w", jobID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("loading job features: %w", err)
	}

	slog.Info("job features loaded",
		"jobs", humanize.Comma(int64(len(sums))),
		"features_per_job", len(featureCols),
	)
	return nil
}

// loadRubric reads the ability/skill rubric CSV.
func loadRubric(db *sql.DB, path string) error {
	records, header, err := readCSV(path)
	if err != nil {
		return err
	}

	nameCol, ok := header[colRubricName]
	if !ok {
		return fmt.Errorf("%s must contain a %s column", filepath.Base(path), colRubricName)
	}
	subCol, ok := header[colRubricSub]
	if !ok {
		return fmt.Errorf("%s must contain a %s column", filepath.Base(path), colRubricSub)
	}
	compCol, ok := header[colRubricComp]
	if !ok {
		return fmt.Errorf("%s must contain a %s column", filepath.Base(path), colRubricComp)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("loading rubric: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM skill_rubric"); err != nil {
		return fmt.Errorf("clearing skill_rubric: %w", err)
	}

	count := 0
	for _, rec := range records {
		name := strings.TrimSpace(field(rec, nameCol))
		if name == "" {
			continue
		}
		sub, err := strconv.ParseFloat(strings.TrimSpace(field(rec, subCol)), 64)
		if err != nil {
			sub = 0
		}
		comp, err := strconv.ParseFloat(strings.TrimSpace(field(rec, compCol)), 64)
		if err != nil {
			comp = 0
		}
		if _, err := tx.Exec(
			"INSERT INTO skill_rubric (name, substitution_index, complementarity_index) VALUES ($1, $2, $3)",
			name, sub, comp,
		); err != nil {
			return fmt.Errorf("inserting rubric entry %q: %w", name, err)
		}
		count++
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("loading rubric: %w", err)
	}

	slog.Info("skill rubric loaded", "entries", count)
	return nil
}

// readCSV loads a whole CSV and returns its data rows plus a header index.
func readCSV(path string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // source files have ragged rows
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%s is empty", path)
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.TrimSpace(name)] = i
	}
	return rows[1:], header, nil
}

// field reads a column from a possibly ragged row.
func field(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return rec[idx]
}

func knownJobIDs(db *sql.DB) (map[string]bool, error) {
	rows, err := db.Query("SELECT job_id FROM jobs")
	if err != nil {
		return nil, fmt.Errorf("reading job ids: %w", err)
	}
	defer rows.Close()

	known := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning job id: %w", err)
		}
		known[id] = true
	}
	return known, rows.Err()
}
