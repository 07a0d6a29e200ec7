package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"ridehail/internal/repository"
)

// Querier is an interface satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Ensure interfaces are satisfied.
var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// translateError maps PostgreSQL constraint violations onto repository errors.
// Anything else is returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code.Name() {
	case "foreign_key_violation":
		return fmt.Errorf("%w: %s", repository.ErrInvalidReference, pqErr.Constraint)
	case "unique_violation":
		return fmt.Errorf("%w: %s", repository.ErrConflict, pqErr.Constraint)
	case "check_violation", "invalid_text_representation":
		return fmt.Errorf("%w: %s", repository.ErrInvalidValue, pqErr.Message)
	default:
		return err
	}
}

// nullID converts an optional reference to a nullable column value.
func nullID(id int64) sql.NullInt64 {
	if id == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: id, Valid: true}
}

// mustAffect returns repository.ErrNotFound when an UPDATE touched no rows.
func mustAffect(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
