package repository

import (
	"context"
	"time"

	"github.com/benx421/homebid/internal/models"
	"github.com/google/uuid"
)

// EstimateResponseRepository defines the interface for estimate response (bid) data access
type EstimateResponseRepository interface {
	Create(ctx context.Context, resp *models.EstimateResponse) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.EstimateResponse, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.EstimateResponse, error)
	FindAccepted(ctx context.Context, requestID uuid.UUID) (*models.EstimateResponse, error)
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]models.EstimateResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.ResponseStatus) error
	DeclinePending(ctx context.Context, requestID, exceptID uuid.UUID) ([]models.EstimateResponse, error)
}

type estimateResponseRepository struct {
	db DBTX
}

// NewEstimateResponseRepository creates a new EstimateResponseRepository
func NewEstimateResponseRepository(db DBTX) EstimateResponseRepository {
	return &estimateResponseRepository{db: db}
}

const estimateResponseColumns = `
	id, request_id, provider_id, price_cents, timeline, status, created_at, updated_at`

func scanEstimateResponse(row rowScanner) (*models.EstimateResponse, error) {
	var resp models.EstimateResponse
	err := row.Scan(
		&resp.ID,
		&resp.RequestID,
		&resp.ProviderID,
		&resp.PriceCents,
		&resp.Timeline,
		&resp.Status,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Create inserts a new response. A provider holding a response on the same
// request already yields models.ErrDuplicate.
func (r *estimateResponseRepository) Create(ctx context.Context, resp *models.EstimateResponse) error {
	if resp.ID == uuid.Nil {
		resp.ID = uuid.New()
	}
	if resp.CreatedAt.IsZero() {
		resp.CreatedAt = time.Now()
	}
	resp.UpdatedAt = resp.CreatedAt

	query := `
		INSERT INTO estimate_responses (` + estimateResponseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		resp.ID,
		resp.RequestID,
		resp.ProviderID,
		resp.PriceCents,
		resp.Timeline,
		resp.Status,
		resp.CreatedAt,
		resp.UpdatedAt,
	)
	if err != nil {
		return translateError(err, "failed to create estimate response")
	}

	return nil
}

// FindByID retrieves a response by its UUID
func (r *estimateResponseRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.EstimateResponse, error) {
	query := `SELECT ` + estimateResponseColumns + ` FROM estimate_responses WHERE id = $1`

	resp, err := scanEstimateResponse(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err, "failed to find estimate response")
	}
	return resp, nil
}

// FindByIDForUpdate retrieves a response and locks its row
func (r *estimateResponseRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.EstimateResponse, error) {
	query := `SELECT ` + estimateResponseColumns + ` FROM estimate_responses WHERE id = $1 FOR UPDATE`

	resp, err := scanEstimateResponse(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err, "failed to lock estimate response")
	}
	return resp, nil
}

// FindAccepted returns the accepted response of a request, or nil if there is none
func (r *estimateResponseRepository) FindAccepted(ctx context.Context, requestID uuid.UUID) (*models.EstimateResponse, error) {
	query := `
		SELECT ` + estimateResponseColumns + `
		FROM estimate_responses
		WHERE request_id = $1 AND status = $2
	`

	resp, err := scanEstimateResponse(r.db.QueryRowContext(ctx, query, requestID, models.ResponseStatusAccepted))
	if err != nil {
		err = translateError(err, "failed to find accepted response")
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return resp, nil
}

// ListByRequest returns every response on a request, oldest first
func (r *estimateResponseRepository) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]models.EstimateResponse, error) {
	query := `
		SELECT ` + estimateResponseColumns + `
		FROM estimate_responses
		WHERE request_id = $1
		ORDER BY created_at ASC, id ASC
	`

	return r.queryResponses(ctx, "failed to list estimate responses", query, requestID)
}

// UpdateStatus moves a response between statuses only if it is currently in from
func (r *estimateResponseRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.ResponseStatus) error {
	if err := from.CheckTransition(to); err != nil {
		return err
	}

	query := `
		UPDATE estimate_responses
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	result, err := r.db.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return translateError(err, "failed to update estimate response status")
	}

	return expectOneRow(result, "failed to update estimate response status")
}

// DeclinePending declines every pending response on a request except exceptID
// (pass uuid.Nil to decline all of them) and returns the rows it changed.
func (r *estimateResponseRepository) DeclinePending(ctx context.Context, requestID, exceptID uuid.UUID) ([]models.EstimateResponse, error) {
	query := `
		UPDATE estimate_responses
		SET status = $4, updated_at = NOW()
		WHERE request_id = $1 AND id <> $2 AND status = $3
		RETURNING ` + estimateResponseColumns

	return r.queryResponses(ctx, "failed to decline pending responses", query,
		requestID, exceptID, models.ResponseStatusPending, models.ResponseStatusDeclined)
}

func (r *estimateResponseRepository) queryResponses(ctx context.Context, op, query string, args ...any) ([]models.EstimateResponse, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, op)
	}
	defer rows.Close()

	responses := make([]models.EstimateResponse, 0)
	for rows.Next() {
		resp, err := scanEstimateResponse(rows)
		if err != nil {
			return nil, translateError(err, op)
		}
		responses = append(responses, *resp)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, op)
	}

	return responses, nil
}
