package postgres

import (
	"context"
	"database/sql"

	"pawfam-api/internal/adapters/storage/postgres/migrations"

	"github.com/pressly/goose/v3"
)

// gooseUp es un seam para tests.
var gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

// Migrate aplica las migraciones embebidas pendientes.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUp(ctx, db, ".")
}
