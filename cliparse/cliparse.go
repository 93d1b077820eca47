package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	ScoringConfig string
	SeedDir       string
	AdminKeySalt  string
	RecalcAt      string
	RecalcTZ      string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("pathbuilder", flag.ContinueOnError)

	// Network / storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Scoring / dataset config
	fs.StringVar(&cfg.ScoringConfig, "scoring-config", "", "Path to scoring policy YAML (optional)")
	fs.StringVar(&cfg.SeedDir, "seed-dir", "", "Seed dataset directory; when set, raw tables are reloaded at startup")
	fs.StringVar(&cfg.RecalcAt, "recalc-at", "", "Daily recalculation time HH:MM (optional)")
	fs.StringVar(&cfg.RecalcTZ, "recalc-tz", "", "Timezone for -recalc-at (default UTC)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "sqlite" {
			cfg.DatabaseURL = "pathbuilder.db" // bundled-database default
		} else {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	}

	if cfg.ScoringConfig == "" {
		cfg.ScoringConfig = os.Getenv("SCORING_CONFIG")
	}
	if cfg.SeedDir == "" {
		cfg.SeedDir = os.Getenv("SEED_DIR")
	}
	if cfg.RecalcAt == "" {
		cfg.RecalcAt = os.Getenv("RECALC_AT")
	}
	if cfg.RecalcTZ == "" {
		cfg.RecalcTZ = os.Getenv("RECALC_TZ")
		if cfg.RecalcTZ == "" {
			cfg.RecalcTZ = "UTC"
		}
	}

	// Secrets - MUST be provided
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	return cfg, nil
}

// DriverName maps the configured database type to its database/sql driver.
func (c Config) DriverName() string {
	if c.DatabaseType == "postgres" {
		return "postgres"
	}
	return "sqlite"
}
