// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - ScoreRequest: province_code, ethnicity_code, job_id

# Response Types

Types for JSON responses:

  - ScoreResponse: inputs, components, weights, score, band
  - RecalcResponse: run_id, status, rows_written, started_at, finished_at
  - ErrorResponse: error, code, message

# Domain Types

Internal data structures:

  - Province: code and display name
  - Ethnicity: code and display name
  - JobTitle: occupation code with one of its title aliases

# Constants

Error codes carried by ErrorResponse so a caller can distinguish failure
modes with identical HTTP statuses:

	CodeUnknownProvince  = "unknown_province"
	CodeUnknownEthnicity = "unknown_ethnicity"
	CodeUnknownJob       = "unknown_job"
	CodeNotReady         = "not_ready"
	CodeRecalcRunning    = "recalc_running"
*/
package models
