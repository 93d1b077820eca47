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

// searchLimit caps free-text search results.
const searchLimit = 50

type JobsHandler struct {
	db *sql.DB
}

func NewJobsHandler(db *sql.DB) *JobsHandler {
	return &JobsHandler{db: db}
}

// Search handles GET /jobs/search?q=...
// Case-insensitive substring match over the title alias table.
func (h *JobsHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "q is required")
		return
	}

	rows, err := h.db.Query(`
		SELECT job_id, title
		FROM job_titles
		WHERE lower(title) LIKE '%' || lower($1) || '%'
		ORDER BY title
		LIMIT $2
	`, query, searchLimit)
	if err != nil {
		slog.Error("failed to search job titles", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	results := []models.JobTitle{}
	for rows.Next() {
		var jt models.JobTitle
		if err := rows.Scan(&jt.JobID, &jt.Title); err != nil {
			slog.Error("failed to scan job title", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		results = append(results, jt)
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}
