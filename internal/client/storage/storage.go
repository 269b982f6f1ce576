// Package storage opens the client-local SQLite database, applies embedded
// migrations, and wires up the repositories that live on top of it.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Haseebfayyaz/authgate/internal/client/migrations"
	"github.com/Haseebfayyaz/authgate/internal/client/repositories/credentials"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	Credentials credentials.Repository

	db *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if necessary) the database at dsn, migrates it, and
// returns the repository bundle. The caller owns Close.
func Open(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Credentials: credentials.NewSQLiteRepository(db),
		db:          db,
	}, nil
}

func (r *Repositories) Close() error {
	return r.db.Close()
}
