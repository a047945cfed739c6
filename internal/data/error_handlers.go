package data

import (
	"errors"
	"fmt"

	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/errdefs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func handleError(err error) error {
	if isNotFound(err) {
		return errdefs.ErrNotFound
	}
	switch pgErrorCode(err) {
	case uniqueViolation:
		return errdefs.ErrConflict
	case foreignKeyViolation:
		return errdefs.ErrNotFound
	case checkViolation:
		return errdefs.ErrValidation
	}
	return fmt.Errorf("repository error: %w", err)
}
