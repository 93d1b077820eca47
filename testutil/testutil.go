// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pathbuilder/cliparse"
	"github.com/danielhkuo/pathbuilder/db"
)

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A second connection would see a different empty in-memory database.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		AdminKeySalt: "test-admin-salt",
		RecalcTZ:     "UTC",
	}
}

// AddTestProvince inserts a province with its raw exposure value
func AddTestProvince(t *testing.T, conn *sql.DB, code, name string, exposure float64) {
	t.Helper()

	_, err := conn.Exec(`INSERT INTO provinces (code, name) VALUES ($1, $2)`, code, name)
	if err != nil {
		t.Fatalf("Failed to create test province: %v", err)
	}
	_, err = conn.Exec(`
		INSERT INTO province_exposure_raw (province_code, exposure_value)
		VALUES ($1, $2)
	`, code, exposure)
	if err != nil {
		t.Fatalf("Failed to create test province exposure: %v", err)
	}
}

// AddTestEthnicity inserts an ethnicity with its raw exposure value
func AddTestEthnicity(t *testing.T, conn *sql.DB, code, name string, exposure float64) {
	t.Helper()

	_, err := conn.Exec(`INSERT INTO ethnicities (code, name) VALUES ($1, $2)`, code, name)
	if err != nil {
		t.Fatalf("Failed to create test ethnicity: %v", err)
	}
	_, err = conn.Exec(`
		INSERT INTO ethnicity_exposure_raw (ethnicity_code, exposure_value)
		VALUES ($1, $2)
	`, code, exposure)
	if err != nil {
		t.Fatalf("Failed to create test ethnicity exposure: %v", err)
	}
}

// AddTestJob inserts a job, its canonical title, and its feature vector.
// Feature magnitudes use the raw dataset scale (0-5 by default).
func AddTestJob(t *testing.T, conn *sql.DB, jobID, title string, features map[string]float64) {
	t.Helper()

	_, err := conn.Exec(`INSERT INTO jobs (job_id, title) VALUES ($1, $2)`, jobID, title)
	if err != nil {
		t.Fatalf("Failed to create test job: %v", err)
	}
	_, err = conn.Exec(`INSERT INTO job_titles (job_id, title) VALUES ($1, $2)`, jobID, title)
	if err != nil {
		t.Fatalf("Failed to create test job title: %v", err)
	}

	if features != nil {
		data, err := json.Marshal(features)
		if err != nil {
			t.Fatalf("Failed to marshal test features: %v", err)
		}
		_, err = conn.Exec(`
			INSERT INTO job_features_raw (job_id, features_json)
			VALUES ($1, $2)
		`, jobID, string(data))
		if err != nil {
			t.Fatalf("Failed to create test job features: %v", err)
		}
	}
}

// AddTestJobAlias adds an extra searchable title for an existing job
func AddTestJobAlias(t *testing.T, conn *sql.DB, jobID, title string) {
	t.Helper()

	_, err := conn.Exec(`INSERT INTO job_titles (job_id, title) VALUES ($1, $2)`, jobID, title)
	if err != nil {
		t.Fatalf("Failed to create test job alias: %v", err)
	}
}

// AddTestRubricEntry inserts one skill rubric row.
// Indices use the raw dataset scale (0-5 by default).
func AddTestRubricEntry(t *testing.T, conn *sql.DB, name string, substitution, complementarity float64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO skill_rubric (name, substitution_index, complementarity_index)
		VALUES ($1, $2, $3)
	`, name, substitution, complementarity)
	if err != nil {
		t.Fatalf("Failed to create test rubric entry: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
