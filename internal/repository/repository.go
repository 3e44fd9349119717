// Package repository provides the Postgres-backed entity store. Status columns
// are only ever written through conditional updates that name the expected
// current status, so a lost race surfaces as models.ErrStatusConflict.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/benx421/homebid/internal/models"
	"github.com/lib/pq"
)

// DBTX is satisfied by both the connection pool and an open transaction, so
// repositories can be bound to either.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const pqUniqueViolation = "23505"

type rowScanner interface {
	Scan(dest ...any) error
}

// translateError maps driver errors onto the model sentinels.
func translateError(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return fmt.Errorf("%s: %w: %s", op, models.ErrDuplicate, pqErr.Constraint)
	}

	return fmt.Errorf("%s: %w", op, err)
}

// expectOneRow turns a zero-row conditional update into a status conflict.
func expectOneRow(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get rows affected: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrStatusConflict)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}
