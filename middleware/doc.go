// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Middleware

  - WithLogging: structured request/completion logging with a request id
  - CORS: cross-origin headers for the frontend

# Helpers

  - JSONResponse: write a JSON body with status code
  - ErrorResponse: standard JSON error envelope
  - CodedErrorResponse: error envelope with a machine-readable code
    (unknown_province, unknown_ethnicity, unknown_job, not_ready, ...)
  - ParseJSONBody: decode a request body into a struct
*/
package middleware
