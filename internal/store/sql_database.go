package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/itemkeeper/itemkeeper/internal/logger"
	"github.com/itemkeeper/itemkeeper/migrations"
)

// DB wraps the shared *sql.DB handle together with the driver name so that
// repositories and migrations can stay driver-agnostic.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Migrate applies all embedded goose migrations for the configured driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// isUniqueViolation reports whether err is a unique-constraint violation for
// either supported driver. Repositories map it to domain sentinels such as
// [ErrUsernameAlreadyExists].
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
