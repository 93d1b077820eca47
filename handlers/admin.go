// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pathbuilder/auth"
	"github.com/danielhkuo/pathbuilder/cliparse"
	"github.com/danielhkuo/pathbuilder/middleware"
	"github.com/danielhkuo/pathbuilder/models"
	"github.com/danielhkuo/pathbuilder/recalc"
)

type AdminHandler struct {
	cfg    cliparse.Config
	driver *recalc.Driver
}

func NewAdminHandler(cfg cliparse.Config, driver *recalc.Driver) *AdminHandler {
	return &AdminHandler{cfg: cfg, driver: driver}
}

// Recalculate handles POST /admin/recalculate
// Reruns the full derivation pass on demand. Requires the X-Admin-Key
// header. The new snapshot is published atomically, so requests in flight
// keep reading a consistent set of derived tables.
func (h *AdminHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	adminKey := r.Header.Get("X-Admin-Key")
	if adminKey == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Admin-Key header required")
		return
	}
	if err := auth.ValidateAdminKey(adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	result, err := h.driver.Run()
	if errors.Is(err, recalc.ErrAlreadyRunning) {
		middleware.CodedErrorResponse(w, http.StatusConflict, models.CodeRecalcRunning,
			"A recalculation is already in progress")
		return
	}
	if err != nil {
		slog.Error("recalculation failed", "run_id", result.RunID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Recalculation failed: "+err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RecalcResponse{
		RunID:       result.RunID,
		Status:      result.Status.String(),
		RowsWritten: result.RowsWritten,
		StartedAt:   result.StartedAt,
		FinishedAt:  result.FinishedAt,
	})
}
