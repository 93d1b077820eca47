package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pathbuilder/cliparse"
	"github.com/danielhkuo/pathbuilder/config"
	"github.com/danielhkuo/pathbuilder/db"
	"github.com/danielhkuo/pathbuilder/recalc"
	"github.com/danielhkuo/pathbuilder/router"
	"github.com/danielhkuo/pathbuilder/scheduler"
	"github.com/danielhkuo/pathbuilder/seed"
)

func main() {
	var err error

	// Load .env if present; real env variables take precedence
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load scoring policy (defaults when no file is given)
	policy, err := config.Load(cfg.ScoringConfig)
	if err != nil {
		slog.Error("Error loading scoring config", "error", err)
		os.Exit(1)
	}

	// Connect to the database (SQLite or PostgreSQL)
	dbConn, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if cfg.DatabaseType == "sqlite" {
		// modernc.org/sqlite serializes writes per connection; a single
		// connection avoids SQLITE_BUSY under concurrent handlers.
		dbConn.SetMaxOpenConns(1)
		if _, err := dbConn.Exec("PRAGMA journal_mode=WAL"); err != nil {
			slog.Error("failed to enable WAL mode", "error", err)
			os.Exit(1)
		}
	}

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Bulk-load the raw dataset when requested
	if cfg.SeedDir != "" {
		if err := seed.Load(dbConn, cfg.SeedDir); err != nil {
			slog.Error("seed load failed", "dir", cfg.SeedDir, "error", err)
			os.Exit(1)
		}
	}

	// Build the recalculation driver and compute the first snapshot. A
	// failed run is not fatal: the server starts anyway and answers 503
	// until a later run succeeds.
	driver, err := recalc.New(dbConn, policy)
	if err != nil {
		slog.Error("invalid scoring config", "error", err)
		os.Exit(1)
	}
	if _, err := driver.Run(); err != nil {
		slog.Error("initial recalculation failed; serving unavailable until a run succeeds", "error", err)
	}

	// Optional daily recalculation
	if cfg.RecalcAt != "" {
		sched, err := scheduler.New(cfg.RecalcTZ)
		if err != nil {
			slog.Error("scheduler setup failed", "error", err)
			os.Exit(1)
		}
		err = sched.Schedule(cfg.RecalcAt, func() {
			if _, err := driver.Run(); err != nil {
				slog.Error("scheduled recalculation failed", "error", err)
			}
		})
		if err != nil {
			slog.Error("scheduler setup failed", "error", err)
			os.Exit(1)
		}
		sched.Start()
		defer sched.Stop()
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg, policy, driver)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
