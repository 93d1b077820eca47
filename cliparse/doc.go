// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: PostgreSQL connection string or SQLite path
  - DatabaseType: "sqlite" (default) or "postgres"
  - ScoringConfig: path to the scoring policy YAML (optional)
  - SeedDir: dataset directory to bulk-load at startup (optional)
  - RecalcAt / RecalcTZ: daily recalculation schedule (optional)
  - AdminKeySalt: secret for the admin key HMAC (required)

# CLI Flags

	-p               Server port
	-d               Database URL or SQLite path
	-t               Database type
	-scoring-config  Scoring policy YAML path
	-seed-dir        Seed dataset directory
	-recalc-at       Daily recalculation time (HH:MM)
	-recalc-tz       Timezone for -recalc-at
	-admin-salt      Admin key salt

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	SCORING_CONFIG  → -scoring-config
	SEED_DIR        → -seed-dir
	RECALC_AT       → -recalc-at
	RECALC_TZ       → -recalc-tz
	ADMIN_KEY_SALT  → -admin-salt

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - ADMIN_KEY_SALT must be provided
  - DATABASE_URL must be provided when the type is postgres
  - DatabaseType must be sqlite or postgres
*/
package cliparse
