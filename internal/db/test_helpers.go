package db

import (
	"database/sql"
	"io"
	"log/slog"
)

// NewTestDB wraps an already-open *sql.DB for use in tests. Query logging is
// routed to io.Discard so test output stays readable.
func NewTestDB(sqlDB *sql.DB) *DB {
	return &DB{
		DB:     sqlDB,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
