package repository

import (
	"context"
	"time"

	"github.com/benx421/homebid/internal/models"
	"github.com/google/uuid"
)

// EstimateRequestRepository defines the interface for estimate request data access
type EstimateRequestRepository interface {
	Create(ctx context.Context, req *models.EstimateRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.EstimateRequest, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.EstimateRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.RequestStatus) error
}

type estimateRequestRepository struct {
	db DBTX
}

// NewEstimateRequestRepository creates a new EstimateRequestRepository
func NewEstimateRequestRepository(db DBTX) EstimateRequestRepository {
	return &estimateRequestRepository{db: db}
}

const estimateRequestColumns = `
	id, homeowner_id, service_id, property_id, status,
	budget_min_cents, budget_max_cents, timeline, created_at, updated_at`

func scanEstimateRequest(row rowScanner) (*models.EstimateRequest, error) {
	var req models.EstimateRequest
	err := row.Scan(
		&req.ID,
		&req.HomeownerID,
		&req.ServiceID,
		&req.PropertyID,
		&req.Status,
		&req.BudgetMinCents,
		&req.BudgetMaxCents,
		&req.Timeline,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Create inserts a new estimate request. A zero ID is replaced with a fresh UUID.
func (r *estimateRequestRepository) Create(ctx context.Context, req *models.EstimateRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	req.UpdatedAt = req.CreatedAt

	query := `
		INSERT INTO estimate_requests (` + estimateRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		req.ID,
		req.HomeownerID,
		req.ServiceID,
		req.PropertyID,
		req.Status,
		req.BudgetMinCents,
		req.BudgetMaxCents,
		req.Timeline,
		req.CreatedAt,
		req.UpdatedAt,
	)
	if err != nil {
		return translateError(err, "failed to create estimate request")
	}

	return nil
}

// FindByID retrieves an estimate request by its UUID
func (r *estimateRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.EstimateRequest, error) {
	query := `SELECT ` + estimateRequestColumns + ` FROM estimate_requests WHERE id = $1`

	req, err := scanEstimateRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err, "failed to find estimate request")
	}
	return req, nil
}

// FindByIDForUpdate retrieves an estimate request and locks its row until the
// surrounding transaction ends. Every multi-row change under a request takes
// this lock first.
func (r *estimateRequestRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.EstimateRequest, error) {
	query := `SELECT ` + estimateRequestColumns + ` FROM estimate_requests WHERE id = $1 FOR UPDATE`

	req, err := scanEstimateRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err, "failed to lock estimate request")
	}
	return req, nil
}

// UpdateStatus moves the request from one status to another only if it is
// currently in the from status.
func (r *estimateRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.RequestStatus) error {
	if err := from.CheckTransition(to); err != nil {
		return err
	}

	query := `
		UPDATE estimate_requests
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	result, err := r.db.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return translateError(err, "failed to update estimate request status")
	}

	return expectOneRow(result, "failed to update estimate request status")
}
