package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/budgetms/budgetvote/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors. The entity name and
// reference (token or numeric id rendered as a string) are included for log
// context; the raw driver message never reaches end users.
func MapError(err error, entity, ref string) error {
	if err == nil {
		return nil
	}

	// Bounded-timeout contract: expired deadlines surface as ErrTimeout.
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrTimeout)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, ref, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrValidation)
		}
	}

	// Everything else is an infrastructure failure.
	return fmt.Errorf("%s %s: %w", entity, ref, errors.Join(domain.ErrStorage, err))
}
