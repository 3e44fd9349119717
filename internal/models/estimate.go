package models

import (
	"time"

	"github.com/google/uuid"
)

// EstimateRequest is a homeowner's posted need for a service
type EstimateRequest struct {
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
	BudgetMaxCents *int64        `db:"budget_max_cents"`
	Timeline       string        `db:"timeline"`
	Status         RequestStatus `db:"status"`
	BudgetMinCents int64         `db:"budget_min_cents"`
	ID             uuid.UUID     `db:"id"`
	HomeownerID    uuid.UUID     `db:"homeowner_id"`
	ServiceID      uuid.UUID     `db:"service_id"`
	PropertyID     uuid.UUID     `db:"property_id"`
}

// EstimateResponse is a provider's priced bid against an estimate request
type EstimateResponse struct {
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
	Timeline   string         `db:"timeline"`
	Status     ResponseStatus `db:"status"`
	PriceCents int64          `db:"price_cents"`
	ID         uuid.UUID      `db:"id"`
	RequestID  uuid.UUID      `db:"request_id"`
	ProviderID uuid.UUID      `db:"provider_id"`
}
