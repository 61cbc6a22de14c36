package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nikolayk812/bakery-pos/internal/domain"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
	checkViolation      = "23514"

	stockCheckConstraint = "products_stock_quantity_check"
)

// mapError translates driver errors into domain error kinds.
func mapError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrAlreadyExists, pgErr.Detail)
		case foreignKeyViolation:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrNotFound, pgErr.Detail)
		case checkViolation:
			if pgErr.ConstraintName == stockCheckConstraint {
				return fmt.Errorf("%s: %w", op, domain.ErrInsufficientStock)
			}
			return fmt.Errorf("%s: %w: %s", op, domain.ErrValidation, pgErr.ConstraintName)
		}
	}

	return &domain.PersistenceError{Op: op, Err: err}
}
