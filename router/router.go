// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/pathbuilder/cliparse"
	"github.com/danielhkuo/pathbuilder/config"
	"github.com/danielhkuo/pathbuilder/handlers"
	"github.com/danielhkuo/pathbuilder/middleware"
	"github.com/danielhkuo/pathbuilder/recalc"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, policy config.Config, driver *recalc.Driver) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	scoreHandler := handlers.NewScoreHandler(db, policy, driver)
	metaHandler := handlers.NewMetaHandler(db)
	jobsHandler := handlers.NewJobsHandler(db)
	adminHandler := handlers.NewAdminHandler(cfg, driver)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Scoring
	mux.HandleFunc("POST /score", middleware.WithLogging(scoreHandler.Score))

	// Meta endpoints for dropdowns
	mux.HandleFunc("GET /meta/provinces", middleware.WithLogging(metaHandler.ListProvinces))
	mux.HandleFunc("GET /meta/ethnicities", middleware.WithLogging(metaHandler.ListEthnicities))
	mux.HandleFunc("GET /meta/jobs", middleware.WithLogging(metaHandler.ListJobs))

	// Occupation search
	mux.HandleFunc("GET /jobs/search", middleware.WithLogging(jobsHandler.Search))

	// Admin operations
	mux.HandleFunc("POST /admin/recalculate", middleware.WithLogging(adminHandler.Recalculate))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pathbuilder API v1"))
	})

	return mux
}
