package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/vfg2006/budget-guard-api/internal/domain"
)

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// dbError maps constraint violations to domain errors and wraps the rest.
func dbError(err error, entity string) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return domain.NewConflictError(entity, pqErr.Detail)
		case "foreign_key_violation":
			notFound := domain.NewNotFoundError("referenced entity", "")
			notFound.Details = pqErr.Detail
			return notFound
		case "check_violation":
			return domain.NewInvalidInputError(fmt.Sprintf("%s violates %s", entity, pqErr.Constraint))
		case "string_data_right_truncation":
			return domain.NewInvalidInputError(fmt.Sprintf("%s has a value too long for its column", entity))
		case "numeric_value_out_of_range":
			return domain.NewInvalidInputError(fmt.Sprintf("%s has an amount out of range", entity))
		}
		return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return err
	}

	return fmt.Errorf("failed to execute query: %w", err)
}

func rowsAffected(result sql.Result) (int64, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}
