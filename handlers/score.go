// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"math"
	"net/http"

	"github.com/danielhkuo/pathbuilder/config"
	"github.com/danielhkuo/pathbuilder/middleware"
	"github.com/danielhkuo/pathbuilder/models"
	"github.com/danielhkuo/pathbuilder/recalc"
	"github.com/danielhkuo/pathbuilder/scoring"
)

type ScoreHandler struct {
	db     *sql.DB
	policy config.Config
	driver *recalc.Driver
}

func NewScoreHandler(db *sql.DB, policy config.Config, driver *recalc.Driver) *ScoreHandler {
	return &ScoreHandler{db: db, policy: policy, driver: driver}
}

// Score handles POST /score
// Composes the final risk from the three derived risk tables. Serving is
// refused until a recalculation run has completed, so a caller can never
// observe scores built from a partial snapshot.
func (h *ScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	if !h.driver.Ready() {
		middleware.CodedErrorResponse(w, http.StatusServiceUnavailable, models.CodeNotReady,
			"Derived risk tables are not ready (recalculation "+h.driver.Status().String()+")")
		return
	}

	var req models.ScoreRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.ProvinceCode == "" || req.EthnicityCode == "" || req.JobID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "province_code, ethnicity_code and job_id are required")
		return
	}

	provinceRisk, err := h.lookupRisk("SELECT risk FROM province_risk WHERE province_code = $1", req.ProvinceCode)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.CodedErrorResponse(w, http.StatusNotFound, models.CodeUnknownProvince,
			"Unknown province: "+req.ProvinceCode)
		return
	}
	if err != nil {
		slog.Error("failed to query province risk", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	ethnicityRisk, err := h.lookupRisk("SELECT risk FROM ethnicity_risk WHERE ethnicity_code = $1", req.EthnicityCode)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.CodedErrorResponse(w, http.StatusNotFound, models.CodeUnknownEthnicity,
			"Unknown ethnicity: "+req.EthnicityCode)
		return
	}
	if err != nil {
		slog.Error("failed to query ethnicity risk", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	jobRisk, err := h.lookupRisk("SELECT risk FROM job_risk WHERE job_id = $1", req.JobID)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.CodedErrorResponse(w, http.StatusNotFound, models.CodeUnknownJob,
			"Unknown job: "+req.JobID)
		return
	}
	if err != nil {
		slog.Error("failed to query job risk", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// job_profile is written in the same transaction as job_risk, so a
	// missing row here is corruption, not a bad request.
	pcsShare, err := h.lookupRisk("SELECT pcs_share FROM job_profile WHERE job_id = $1", req.JobID)
	if err != nil {
		slog.Error("failed to query job profile", "job_id", req.JobID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	weights := h.policy.ScoringWeights()
	if h.policy.TaperByPCS {
		weights = weights.Tapered(pcsShare)
	}

	score := scoring.ComposeFinal(provinceRisk, ethnicityRisk, jobRisk, weights)

	response := models.ScoreResponse{
		Inputs: map[string]string{
			"province":  h.displayName("SELECT name FROM provinces WHERE code = $1", req.ProvinceCode),
			"ethnicity": h.displayName("SELECT name FROM ethnicities WHERE code = $1", req.EthnicityCode),
			"job":       h.displayName("SELECT title FROM jobs WHERE job_id = $1", req.JobID),
		},
		Components: map[string]float64{
			"province":  round2(provinceRisk),
			"ethnicity": round2(ethnicityRisk),
			"job":       round2(jobRisk),
		},
		Weights: map[string]float64{
			"province":  round2(weights.Province),
			"ethnicity": round2(weights.Ethnicity),
			"job":       round2(weights.Job),
		},
		Score: round2(score),
		Band:  scoring.Band(score),
	}

	middleware.JSONResponse(w, http.StatusOK, response)
}

func (h *ScoreHandler) lookupRisk(query, key string) (float64, error) {
	var risk float64
	err := h.db.QueryRow(query, key).Scan(&risk)
	return risk, err
}

// displayName resolves a human-readable name, falling back to the raw key.
func (h *ScoreHandler) displayName(query, key string) string {
	var name string
	if err := h.db.QueryRow(query, key).Scan(&name); err != nil {
		return key
	}
	return name
}

// round2 rounds for display; the engine itself works at full precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
