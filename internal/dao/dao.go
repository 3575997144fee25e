// Package dao holds the data access objects. Every store failure crossing a
// dao boundary is translated into one of the apperrors kinds; callers never
// see driver-specific errors.
package dao

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/example/afume/internal/apperrors"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translate maps gorm and postgres driver errors to domain error kinds.
// Errors without a more specific kind pass through unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotMatched
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrDuplicateEntry
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperrors.ErrNoReferencedRow
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.ErrDuplicateEntry
		case pgForeignKeyViolation:
			return apperrors.ErrNoReferencedRow
		}
	}
	return err
}

// parseSort maps a sort token like "name_desc" to a constant ORDER BY clause.
// Unknown tokens fall back to newest-first. Only whitelisted clauses ever
// reach the query text.
func parseSort(sort string) string {
	switch sort {
	case "name_asc":
		return "name ASC"
	case "name_desc":
		return "name DESC"
	case "created_at_asc":
		return "created_at ASC"
	case "created_at_desc", "":
		return "created_at DESC"
	default:
		return "created_at DESC"
	}
}
