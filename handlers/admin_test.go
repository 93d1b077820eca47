// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pathbuilder/auth"
	"github.com/danielhkuo/pathbuilder/models"
	"github.com/danielhkuo/pathbuilder/testutil"
)

func TestRecalculate(t *testing.T) {
	conn, _, driver := setupScoring(t)
	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(cfg, driver)

	adminKey := auth.AdminKey(cfg.AdminKeySalt)
	req := testutil.MakeRequest("POST", "/admin/recalculate", nil, map[string]string{
		"X-Admin-Key": adminKey,
	})
	w := httptest.NewRecorder()

	handler.Recalculate(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.RecalcResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Status != "complete" {
		t.Errorf("status = %q, want complete", resp.Status)
	}
	if resp.RunID == "" {
		t.Error("response should carry a run ID")
	}
	if resp.RowsWritten["job_risk"] != 2 {
		t.Errorf("rows_written[job_risk] = %d, want 2", resp.RowsWritten["job_risk"])
	}

	// The run is also recorded in the audit table
	var status string
	if err := conn.QueryRow("SELECT status FROM recalc_run WHERE id = $1", resp.RunID).Scan(&status); err != nil {
		t.Fatalf("Failed to read audit row: %v", err)
	}
	if status != "complete" {
		t.Errorf("audit status = %q, want complete", status)
	}
}

func TestRecalculate_RequiresAdminKey(t *testing.T) {
	_, _, driver := setupScoring(t)
	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(cfg, driver)

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Recalculate(w, testutil.MakeRequest("POST", "/admin/recalculate", nil, nil))
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("wrong key", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/admin/recalculate", nil, map[string]string{
			"X-Admin-Key": "not-the-key",
		})
		w := httptest.NewRecorder()
		handler.Recalculate(w, req)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})
}

func TestRecalculate_FailureReportsError(t *testing.T) {
	conn, _, driver := setupScoring(t)
	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(cfg, driver)

	// Break the dataset so the rerun fails
	testutil.AddTestJob(t, conn, "0003", "Mystery Job", map[string]float64{
		"Uncharted Skill": 3,
	})

	req := testutil.MakeRequest("POST", "/admin/recalculate", nil, map[string]string{
		"X-Admin-Key": auth.AdminKey(cfg.AdminKeySalt),
	})
	w := httptest.NewRecorder()

	handler.Recalculate(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	if driver.Ready() {
		t.Error("driver should not be ready after a failed recalculation")
	}
}
