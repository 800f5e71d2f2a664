package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"accounts/internal/errors"
)

const pgUniqueViolation = "23505"

// isUniqueConstraintViolation accepts both the translated GORM error and a raw
// pgconn error, since translation only happens when the dialector supports it.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return false
}
