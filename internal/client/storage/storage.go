// Package storage opens the client's local sqlite database, applies goose
// migrations, and hands out the repositories built on top of it.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/jobtrackr/internal/client/migrations"
	"github.com/dmitrijs2005/jobtrackr/internal/client/repositories/applications"
	"github.com/dmitrijs2005/jobtrackr/internal/client/repositories/metadata"
)

// Storage bundles the local database handle with its repositories.
// The *sql.DB is exposed so services can run multi-write transactions
// via dbx.WithTx.
type Storage struct {
	DB           *sql.DB
	Metadata     metadata.Repository
	Applications applications.Repository
}

// RunMigrations applies the embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Open opens (creating if needed) the sqlite database at dsn, migrates it,
// and returns the repository set.
func Open(ctx context.Context, dsn string) (*Storage, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storage{
		DB:           db,
		Metadata:     metadata.NewSQLiteRepository(db),
		Applications: applications.NewSQLiteRepository(db),
	}, nil
}

// Close releases the underlying database handle.
func (s *Storage) Close() error {
	return s.DB.Close()
}
