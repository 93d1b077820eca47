// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pathbuilder/models"
	"github.com/danielhkuo/pathbuilder/testutil"
)

func TestListProvinces(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.AddTestProvince(t, conn, "ON", "Ontario", 19.6)
	testutil.AddTestProvince(t, conn, "BC", "British Columbia", 16.0)

	handler := NewMetaHandler(conn)
	w := httptest.NewRecorder()
	handler.ListProvinces(w, testutil.MakeRequest("GET", "/meta/provinces", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var provinces []models.Province
	testutil.AssertJSON(t, w, &provinces)

	if len(provinces) != 2 {
		t.Fatalf("got %d provinces, want 2", len(provinces))
	}
	// Sorted by name
	if provinces[0].Code != "BC" || provinces[1].Code != "ON" {
		t.Errorf("unexpected order: %v", provinces)
	}
}

func TestListEthnicities(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.AddTestEthnicity(t, conn, "E2", "Zeta Group", 0.6)
	testutil.AddTestEthnicity(t, conn, "E1", "Alpha Group", 0.2)

	handler := NewMetaHandler(conn)
	w := httptest.NewRecorder()
	handler.ListEthnicities(w, testutil.MakeRequest("GET", "/meta/ethnicities", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var ethnicities []models.Ethnicity
	testutil.AssertJSON(t, w, &ethnicities)

	if len(ethnicities) != 2 {
		t.Fatalf("got %d ethnicities, want 2", len(ethnicities))
	}
	if ethnicities[0].Name != "Alpha Group" {
		t.Errorf("unexpected order: %v", ethnicities)
	}
}

func TestListJobs(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.AddTestJob(t, conn, "0001", "Data Analyst", nil)
	testutil.AddTestJobAlias(t, conn, "0001", "Business Analyst")
	testutil.AddTestJob(t, conn, "0002", "Mediator", nil)

	handler := NewMetaHandler(conn)
	w := httptest.NewRecorder()
	handler.ListJobs(w, testutil.MakeRequest("GET", "/meta/jobs", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var titles []models.JobTitle
	testutil.AssertJSON(t, w, &titles)

	// Every alias appears, each mapped to its job_id
	if len(titles) != 3 {
		t.Fatalf("got %d titles, want 3", len(titles))
	}
	if titles[0].Title != "Business Analyst" || titles[0].JobID != "0001" {
		t.Errorf("unexpected first title: %+v", titles[0])
	}
}

func TestListProvinces_Empty(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	handler := NewMetaHandler(conn)
	w := httptest.NewRecorder()
	handler.ListProvinces(w, testutil.MakeRequest("GET", "/meta/provinces", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	// Empty list, not null
	if body := w.Body.String(); body != "[]\n" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}
