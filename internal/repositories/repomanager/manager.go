// Package repomanager vends dialect-specific repository implementations and
// runs the embedded goose migrations for the selected database.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/dbx"
	"github.com/dmitrijs2005/usermanager/internal/migrations"
	"github.com/dmitrijs2005/usermanager/internal/repositories/users"
	"github.com/pressly/goose/v3"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func runMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, dir); err != nil {
		return err
	}
	return nil
}

// NewRepositoryManager returns the manager for a database/sql driver name:
// "pgx" for PostgreSQL, "sqlite" for modernc.org/sqlite.
func NewRepositoryManager(driver string) (RepositoryManager, error) {
	switch driver {
	case "pgx":
		return NewPostgresRepositoryManager()
	case "sqlite":
		return NewSQLiteRepositoryManager()
	default:
		return nil, fmt.Errorf("%w: unsupported driver %q", common.ErrInvalidInput, driver)
	}
}
