package postgres

import (
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"errandgo/internal/pkg/config"
)

const migrationsDir = "migrations"

// Migrate applies pending goose migrations from the migrations directory.
// It opens a short-lived database/sql connection; the pgx pool is not reused
// because goose drives database/sql.
func Migrate(cfg config.Database) error {
	db, err := goose.OpenDBWithDriver("pgx", DSN(cfg))
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
