// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pathbuilder/middleware"
	"github.com/danielhkuo/pathbuilder/models"
)

type MetaHandler struct {
	db *sql.DB
}

func NewMetaHandler(db *sql.DB) *MetaHandler {
	return &MetaHandler{db: db}
}

// ListProvinces handles GET /meta/provinces
func (h *MetaHandler) ListProvinces(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query("SELECT code, name FROM provinces ORDER BY name")
	if err != nil {
		slog.Error("failed to query provinces", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	provinces := []models.Province{}
	for rows.Next() {
		var p models.Province
		if err := rows.Scan(&p.Code, &p.Name); err != nil {
			slog.Error("failed to scan province", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		provinces = append(provinces, p)
	}

	middleware.JSONResponse(w, http.StatusOK, provinces)
}

// ListEthnicities handles GET /meta/ethnicities
func (h *MetaHandler) ListEthnicities(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query("SELECT code, name FROM ethnicities ORDER BY name")
	if err != nil {
		slog.Error("failed to query ethnicities", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	ethnicities := []models.Ethnicity{}
	for rows.Next() {
		var e models.Ethnicity
		if err := rows.Scan(&e.Code, &e.Name); err != nil {
			slog.Error("failed to scan ethnicity", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		ethnicities = append(ethnicities, e)
	}

	middleware.JSONResponse(w, http.StatusOK, ethnicities)
}

// ListJobs handles GET /meta/jobs
// Returns ALL title aliases mapped to job_id so the UI search covers every
// known spelling of an occupation.
func (h *MetaHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query("SELECT job_id, title FROM job_titles ORDER BY title")
	if err != nil {
		slog.Error("failed to query job titles", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	titles := []models.JobTitle{}
	for rows.Next() {
		var jt models.JobTitle
		if err := rows.Scan(&jt.JobID, &jt.Title); err != nil {
			slog.Error("failed to scan job title", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		titles = append(titles, jt)
	}

	middleware.JSONResponse(w, http.StatusOK, titles)
}
