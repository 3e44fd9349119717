package service

import (
	"context"
	"database/sql"

	"github.com/benx421/homebid/internal/db"
)

// runInTx executes fn inside one database transaction and commits when fn
// returns nil. Any error from fn rolls back every write it made, which is what
// keeps multi-row transitions all-or-nothing.
func runInTx(ctx context.Context, database *db.DB, isolation sql.IsolationLevel, fn func(tx *sql.Tx) error) error {
	tx, err := database.BeginTx(ctx, &sql.TxOptions{Isolation: isolation})
	if err != nil {
		return internalError("failed to start transaction", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return internalError("failed to commit transaction", err)
	}

	return nil
}
