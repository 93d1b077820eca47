package models

import "time"

// Typed error codes returned in API error responses. A caller must be able
// to tell "entity unknown" apart from a computed risk of zero.
const (
	CodeUnknownProvince  = "unknown_province"
	CodeUnknownEthnicity = "unknown_ethnicity"
	CodeUnknownJob       = "unknown_job"
	CodeNotReady         = "not_ready"
	CodeRecalcRunning    = "recalc_running"
)

// Request types

type ScoreRequest struct {
	ProvinceCode  string `json:"province_code"`
	EthnicityCode string `json:"ethnicity_code"`
	JobID         string `json:"job_id"`
}

// Response types

type ScoreResponse struct {
	Inputs     map[string]string  `json:"inputs"`
	Components map[string]float64 `json:"components"`
	Weights    map[string]float64 `json:"weights"`
	Score      float64            `json:"score"`
	Band       string             `json:"band"`
}

type RecalcResponse struct {
	RunID       string         `json:"run_id"`
	Status      string         `json:"status"`
	RowsWritten map[string]int `json:"rows_written"`
	StartedAt   time.Time      `json:"started_at"`
	FinishedAt  time.Time      `json:"finished_at"`
}

// Domain types

type Province struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Ethnicity struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type JobTitle struct {
	JobID string `json:"job_id"`
	Title string `json:"title"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
