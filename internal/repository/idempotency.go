package repository

import (
	"context"
	"time"

	"github.com/benx421/homebid/internal/models"
)

// IdempotencyRepository stores responses of already processed mutating requests
type IdempotencyRepository interface {
	Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error)
	Reserve(ctx context.Context, key, requestPath string) (bool, error)
	Store(ctx context.Context, idemKey *models.IdempotencyKey) error
	Release(ctx context.Context, key, requestPath string) error
}

// inFlightLease bounds how long a reservation blocks its key when the request
// holding it never stores or releases it.
const inFlightLease = time.Minute

type idempotencyRepository struct {
	db  DBTX
	ttl time.Duration
}

// NewIdempotencyRepository creates a new IdempotencyRepository. Entries older
// than ttl are ignored by Get and overwritten by Store.
func NewIdempotencyRepository(db DBTX, ttl time.Duration) IdempotencyRepository {
	return &idempotencyRepository{db: db, ttl: ttl}
}

// Get returns the cached response or live reservation for key and path, or nil
// when there is none.
func (r *idempotencyRepository) Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error) {
	query := `
		SELECT key, request_path, response_status, response_body, created_at
		FROM idempotency_keys
		WHERE key = $1 AND request_path = $2 AND created_at > $3
		  AND (response_status <> 0 OR created_at > $4)
	`

	now := time.Now()
	var idemKey models.IdempotencyKey
	err := r.db.QueryRowContext(ctx, query, key, requestPath, now.Add(-r.ttl), now.Add(-inFlightLease)).Scan(
		&idemKey.Key,
		&idemKey.RequestPath,
		&idemKey.ResponseStatus,
		&idemKey.ResponseBody,
		&idemKey.CreatedAt,
	)
	if err != nil {
		err = translateError(err, "failed to get idempotency key")
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return &idemKey, nil
}

// Reserve claims key and path for a request about to run. It reports false
// when an unexpired response or a live reservation already holds them.
func (r *idempotencyRepository) Reserve(ctx context.Context, key, requestPath string) (bool, error) {
	query := `
		INSERT INTO idempotency_keys (key, request_path, response_status, response_body, created_at)
		VALUES ($1, $2, 0, '', $3)
		ON CONFLICT (key, request_path) DO UPDATE
		SET response_status = 0,
		    response_body = '',
		    created_at = EXCLUDED.created_at
		WHERE idempotency_keys.created_at <= $4
		   OR (idempotency_keys.response_status = 0 AND idempotency_keys.created_at <= $5)
		RETURNING key
	`

	now := time.Now()
	var claimed string
	err := r.db.QueryRowContext(ctx, query, key, requestPath, now, now.Add(-r.ttl), now.Add(-inFlightLease)).Scan(&claimed)
	if err != nil {
		err = translateError(err, "failed to reserve idempotency key")
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Release drops a reservation whose request produced nothing worth replaying
func (r *idempotencyRepository) Release(ctx context.Context, key, requestPath string) error {
	query := `
		DELETE FROM idempotency_keys
		WHERE key = $1 AND request_path = $2 AND response_status = 0
	`

	if _, err := r.db.ExecContext(ctx, query, key, requestPath); err != nil {
		return translateError(err, "failed to release idempotency key")
	}
	return nil
}

// Store records a response, filling in a reservation for the same key and
// path. An unexpired stored response wins.
func (r *idempotencyRepository) Store(ctx context.Context, idemKey *models.IdempotencyKey) error {
	if idemKey.CreatedAt.IsZero() {
		idemKey.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO idempotency_keys (key, request_path, response_status, response_body, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (key, request_path) DO UPDATE
		SET response_status = EXCLUDED.response_status,
		    response_body = EXCLUDED.response_body,
		    created_at = EXCLUDED.created_at
		WHERE idempotency_keys.response_status = 0
		   OR idempotency_keys.created_at <= $6
	`

	_, err := r.db.ExecContext(ctx, query,
		idemKey.Key,
		idemKey.RequestPath,
		idemKey.ResponseStatus,
		idemKey.ResponseBody,
		idemKey.CreatedAt,
		time.Now().Add(-r.ttl),
	)
	if err != nil {
		return translateError(err, "failed to store idempotency key")
	}

	return nil
}
