package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"

	"bloglist/internal/domain/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

const (
	pgErrCodeUniqueViolation = "23505"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeUniqueViolation
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// mapError переводит ошибки драйвера в доменные
func mapError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%w: %s", models.ErrUnfound, what)
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %s: %v", models.ErrConflict, what, err)
	default:
		return fmt.Errorf("database error on %s: %w", what, err)
	}
}
