// Package repositories wires the local SQLite database: it opens the file,
// runs the embedded migrations and hands out repository constructors.
package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/developerekene/task-tracker-main/internal/migrations"
	"github.com/developerekene/task-tracker-main/internal/repositories/snapshots"

	_ "modernc.org/sqlite"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and applies them.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}

	return gooseUpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite file at dsn, migrates it and returns the
// snapshot repository backed by it. The caller owns the database handle.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, snapshots.Repository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}

	return db, snapshots.NewSQLiteRepository(db), nil
}
