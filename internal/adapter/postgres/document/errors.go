package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/fairway-backend/internal/domain"
)

// mapError converts pgx/pgconn errors into domain errors. The message carries
// the collection and, when known, the document id.
func mapError(err error, collection, id string) error {
	if err == nil {
		return nil
	}

	ref := collection
	if id != "" {
		ref = collection + "/" + id
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", ref, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", ref, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", ref, domain.ErrAlreadyExists)
		case "23514", "23502": // check_violation, not_null_violation
			return fmt.Errorf("%s: %w", ref, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s: %w", ref, err)
}
