package repository

import (
	"context"
	"time"

	"github.com/benx421/homebid/internal/models"
	"github.com/google/uuid"
)

// TransactionRepository defines the interface for ledger transaction data access
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.TransactionStatus) error
}

type transactionRepository struct {
	db DBTX
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db DBTX) TransactionRepository {
	return &transactionRepository{db: db}
}

const transactionColumns = `
	id, payer_id, recipient_id, amount_cents, currency, payment_method,
	transaction_type, status, transaction_date, updated_at`

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	var txn models.Transaction
	err := row.Scan(
		&txn.ID,
		&txn.PayerID,
		&txn.RecipientID,
		&txn.AmountCents,
		&txn.Currency,
		&txn.PaymentMethod,
		&txn.Type,
		&txn.Status,
		&txn.TransactionDate,
		&txn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// Create inserts a new ledger transaction
func (r *transactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	if txn.TransactionDate.IsZero() {
		txn.TransactionDate = time.Now()
	}
	txn.UpdatedAt = txn.TransactionDate

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		txn.ID,
		txn.PayerID,
		txn.RecipientID,
		txn.AmountCents,
		txn.Currency,
		txn.PaymentMethod,
		txn.Type,
		txn.Status,
		txn.TransactionDate,
		txn.UpdatedAt,
	)
	if err != nil {
		return translateError(err, "failed to create transaction")
	}

	return nil
}

// FindByID retrieves a transaction by its UUID
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	txn, err := scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err, "failed to find transaction")
	}
	return txn, nil
}

// UpdateStatus moves a transaction between statuses only if it is currently in from
func (r *transactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.TransactionStatus) error {
	if err := from.CheckTransition(to); err != nil {
		return err
	}

	query := `
		UPDATE transactions
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	result, err := r.db.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return translateError(err, "failed to update transaction status")
	}

	return expectOneRow(result, "failed to update transaction status")
}
