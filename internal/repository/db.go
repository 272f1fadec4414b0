package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/autohub/automation-hub/gen/ent"
)

type Config struct {
	// Path is the SQLite database file. Parent directories are created
	// on open.
	Path string
}

// Open creates the SQLite database, wraps it for Ent, and runs schema
// migration.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*ent.Client, *sql.DB, error) {
	logger.Info("opening database", "path", cfg.Path)

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			logger.Error("failed to create database directory", "dir", dir, "error", err)
			return nil, nil, err
		}
	}

	// foreign_keys enables the cascade delete from templates to fields;
	// busy_timeout covers UI writes racing a firing job.
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return nil, nil, err
	}
	// modernc sqlite is single-writer; more connections just contend.
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		_ = client.Close()
		return nil, nil, err
	}

	logger.Info("database ready")
	return client, db, nil
}

// Close closes the database connections gracefully
func Close(entc *ent.Client, db *sql.DB, logger *slog.Logger) {
	logger.Info("closing database connections")
	if entc != nil {
		if err := entc.Close(); err != nil {
			logger.Error("failed to close ent client", "error", err)
		}
	} else if db != nil {
		_ = db.Close()
	}
	logger.Info("database connections closed")
}

// HealthCheck pings using database/sql to catch path issues early.
func HealthCheck(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	logger.Debug("pinging database")
	if err := db.PingContext(ctx); err != nil {
		return err
	}
	logger.Debug("database ping successful")
	return nil
}
