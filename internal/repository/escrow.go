package repository

import (
	"context"
	"time"

	"github.com/benx421/homebid/internal/models"
	"github.com/google/uuid"
)

// EscrowRepository defines the interface for escrow payment data access
type EscrowRepository interface {
	Create(ctx context.Context, escrow *models.EscrowPayment) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.EscrowPayment, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.EscrowPayment, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.EscrowPayment, error)
	Release(ctx context.Context, id uuid.UUID, releasedAt time.Time) error
	Refund(ctx context.Context, id uuid.UUID, reason string) error
}

type escrowRepository struct {
	db DBTX
}

// NewEscrowRepository creates a new EscrowRepository
func NewEscrowRepository(db DBTX) EscrowRepository {
	return &escrowRepository{db: db}
}

const escrowColumns = `
	id, transaction_id, project_id, milestone_id, amount_cents, release_conditions,
	status, release_date, refund_reason, created_at, updated_at`

func scanEscrow(row rowScanner) (*models.EscrowPayment, error) {
	var escrow models.EscrowPayment
	err := row.Scan(
		&escrow.ID,
		&escrow.TransactionID,
		&escrow.ProjectID,
		&escrow.MilestoneID,
		&escrow.AmountCents,
		&escrow.ReleaseConditions,
		&escrow.Status,
		&escrow.ReleaseDate,
		&escrow.RefundReason,
		&escrow.CreatedAt,
		&escrow.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &escrow, nil
}

// Create inserts a new escrow payment. The referenced transaction must exist.
func (r *escrowRepository) Create(ctx context.Context, escrow *models.EscrowPayment) error {
	if escrow.ID == uuid.Nil {
		escrow.ID = uuid.New()
	}
	if escrow.CreatedAt.IsZero() {
		escrow.CreatedAt = time.Now()
	}
	escrow.UpdatedAt = escrow.CreatedAt

	query := `
		INSERT INTO escrow_payments (` + escrowColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(ctx, query,
		escrow.ID,
		escrow.TransactionID,
		escrow.ProjectID,
		escrow.MilestoneID,
		escrow.AmountCents,
		escrow.ReleaseConditions,
		escrow.Status,
		escrow.ReleaseDate,
		escrow.RefundReason,
		escrow.CreatedAt,
		escrow.UpdatedAt,
	)
	if err != nil {
		return translateError(err, "failed to create escrow payment")
	}

	return nil
}

// FindByID retrieves an escrow payment by its UUID
func (r *escrowRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.EscrowPayment, error) {
	query := `SELECT ` + escrowColumns + ` FROM escrow_payments WHERE id = $1`

	escrow, err := scanEscrow(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err, "failed to find escrow payment")
	}
	return escrow, nil
}

// FindByIDForUpdate retrieves an escrow payment and locks its row
func (r *escrowRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.EscrowPayment, error) {
	query := `SELECT ` + escrowColumns + ` FROM escrow_payments WHERE id = $1 FOR UPDATE`

	escrow, err := scanEscrow(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err, "failed to lock escrow payment")
	}
	return escrow, nil
}

// ListByProject returns a project's escrow payments, newest first
func (r *escrowRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.EscrowPayment, error) {
	query := `
		SELECT ` + escrowColumns + `
		FROM escrow_payments
		WHERE project_id = $1
		ORDER BY created_at DESC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, translateError(err, "failed to list escrow payments")
	}
	defer rows.Close()

	escrows := make([]models.EscrowPayment, 0)
	for rows.Next() {
		escrow, err := scanEscrow(rows)
		if err != nil {
			return nil, translateError(err, "failed to scan escrow payment")
		}
		escrows = append(escrows, *escrow)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "failed to list escrow payments")
	}

	return escrows, nil
}

// Release marks a held escrow payment released. The held predicate is the
// guard against double release.
func (r *escrowRepository) Release(ctx context.Context, id uuid.UUID, releasedAt time.Time) error {
	if err := models.EscrowStatusHeld.CheckTransition(models.EscrowStatusReleased); err != nil {
		return err
	}

	query := `
		UPDATE escrow_payments
		SET status = $3, release_date = $4, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	result, err := r.db.ExecContext(ctx, query, id, models.EscrowStatusHeld, models.EscrowStatusReleased, releasedAt)
	if err != nil {
		return translateError(err, "failed to release escrow payment")
	}

	return expectOneRow(result, "failed to release escrow payment")
}

// Refund marks a held escrow payment refunded with the claim reason
func (r *escrowRepository) Refund(ctx context.Context, id uuid.UUID, reason string) error {
	if err := models.EscrowStatusHeld.CheckTransition(models.EscrowStatusRefunded); err != nil {
		return err
	}

	query := `
		UPDATE escrow_payments
		SET status = $3, refund_reason = $4, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	result, err := r.db.ExecContext(ctx, query, id, models.EscrowStatusHeld, models.EscrowStatusRefunded, reason)
	if err != nil {
		return translateError(err, "failed to refund escrow payment")
	}

	return expectOneRow(result, "failed to refund escrow payment")
}
