package repository

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/benx421/catalog/internal/config"
	"github.com/benx421/catalog/internal/db"
)

// setupTestDB connects to the database named by the DB_* environment
// variables. Set RUN_INTEGRATION_TESTS=true to run these tests.
func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("set RUN_INTEGRATION_TESTS=true to run integration tests")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	database := db.NewTestDB(sqlDB)
	if err := database.PingContext(context.Background()); err != nil {
		t.Fatalf("failed to reach test database: %v", err)
	}

	runMigrations(t, database)
	truncateTables(t, database)
	t.Cleanup(func() { _ = database.Close() })

	return database
}

func runMigrations(t *testing.T, database *db.DB) {
	t.Helper()

	migrationPath := filepath.Join("..", "db", "migrations", "000001_init.up.sql")
	sqlBytes, err := os.ReadFile(migrationPath) // #nosec G304
	if err != nil {
		t.Fatalf("failed to read migration file: %v", err)
	}

	if _, err := database.ExecContext(context.Background(), string(sqlBytes)); err != nil {
		t.Logf("migration execution completed (tables may already exist)")
	}
}

func truncateTables(t *testing.T, database *db.DB) {
	t.Helper()

	_, err := database.ExecContext(context.Background(), `
		TRUNCATE TABLE idempotency_keys CASCADE;
		TRUNCATE TABLE password_resets CASCADE;
		TRUNCATE TABLE products CASCADE;
		TRUNCATE TABLE users CASCADE;
	`)
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}
