// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the PathBuilder API server.

PathBuilder scores AI disruption risk for a (province, ethnicity, occupation)
triple by blending three precomputed risk components into a single 0-1 score
with a low/medium/high band.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	ADMIN_KEY_SALT=... go run .

Or with flags:

	go run . -p 8000 -t sqlite -d pathbuilder.db -seed-dir ./data

# Configuration

Required settings:

  - ADMIN_KEY_SALT (-admin-salt): Secret for the admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): Connection string or SQLite path
  - SCORING_CONFIG (-scoring-config): Scoring policy YAML
  - SEED_DIR (-seed-dir): Dataset directory to bulk-load at startup
  - RECALC_AT / RECALC_TZ: Daily recalculation schedule

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (scoring, metadata, search, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - scoring: Pure scoring engine (normalization, vulnerability, composition)
  - recalc: Recalculation driver and lifecycle state
  - seed: Raw dataset bulk loading
  - scheduler: Daily recalculation trigger
  - config: Scoring policy (weights, categories, scales)
  - auth: Admin key generation and validation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
