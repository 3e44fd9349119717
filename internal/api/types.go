package api

import (
	"time"

	"github.com/google/uuid"
)

// ErrorCode is the machine readable code of an Error body
type ErrorCode string

// Error codes produced outside the service layer
const (
	ErrorCodeInvalidInput  ErrorCode = "invalid_input"
	ErrorCodeUnauthorized  ErrorCode = "unauthorized"
	ErrorCodeNotFound      ErrorCode = "not_found"
	ErrorCodeInternalError ErrorCode = "internal_error"
	ErrorCodeInProgress    ErrorCode = "request_in_progress"
)

// HealthStatus reports service health
type HealthStatus string

const (
	Healthy   HealthStatus = "healthy"
	Unhealthy HealthStatus = "unhealthy"
)

// Error is the body of every non-2xx response
type Error struct {
	Error   ErrorCode `json:"error"`
	Message string    `json:"message"`
}

// Health is the body of GET /health
type Health struct {
	Status HealthStatus `json:"status"`
}

// EstimateRequest is a homeowner's request for estimates
type EstimateRequest struct {
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	BudgetMaxCents *int64    `json:"budget_max_cents,omitempty"`
	Status         string    `json:"status"`
	Timeline       string    `json:"timeline"`
	BudgetMinCents int64     `json:"budget_min_cents"`
	Id             uuid.UUID `json:"id"`
	HomeownerId    uuid.UUID `json:"homeowner_id"`
	ServiceId      uuid.UUID `json:"service_id"`
	PropertyId     uuid.UUID `json:"property_id"`
}

// CreateEstimateRequest is the body of POST /api/v1/estimate-requests
type CreateEstimateRequest struct {
	BudgetMaxCents *int64    `json:"budget_max_cents,omitempty"`
	Timeline       string    `json:"timeline"`
	BudgetMinCents int64     `json:"budget_min_cents"`
	ServiceId      uuid.UUID `json:"service_id"`
	PropertyId     uuid.UUID `json:"property_id"`
}

// EstimateResponse is a provider's bid
type EstimateResponse struct {
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Status     string    `json:"status"`
	Timeline   string    `json:"timeline"`
	PriceCents int64     `json:"price_cents"`
	Id         uuid.UUID `json:"id"`
	RequestId  uuid.UUID `json:"request_id"`
	ProviderId uuid.UUID `json:"provider_id"`
}

// EstimateResponseList wraps a list of bids
type EstimateResponseList struct {
	Data []EstimateResponse `json:"data"`
}

// SubmitEstimateResponse is the body of POST .../responses
type SubmitEstimateResponse struct {
	Timeline   string `json:"timeline"`
	PriceCents int64  `json:"price_cents"`
}

// AcceptResult is the outcome of accepting a bid
type AcceptResult struct {
	Request  EstimateRequest    `json:"request"`
	Accepted EstimateResponse   `json:"accepted"`
	Declined []EstimateResponse `json:"declined"`
}

// Transaction is the ledger entry behind an escrow payment
type Transaction struct {
	TransactionDate time.Time `json:"transaction_date"`
	Currency        string    `json:"currency"`
	PaymentMethod   string    `json:"payment_method"`
	Type            string    `json:"type"`
	Status          string    `json:"status"`
	AmountCents     int64     `json:"amount_cents"`
	Id              uuid.UUID `json:"id"`
	PayerId         uuid.UUID `json:"payer_id"`
	RecipientId     uuid.UUID `json:"recipient_id"`
}

// Escrow is an escrow payment
type Escrow struct {
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
	MilestoneId       *uuid.UUID   `json:"milestone_id,omitempty"`
	ReleaseDate       *time.Time   `json:"release_date,omitempty"`
	RefundReason      *string      `json:"refund_reason,omitempty"`
	Transaction       *Transaction `json:"transaction,omitempty"`
	ReleaseConditions string       `json:"release_conditions"`
	Status            string       `json:"status"`
	AmountCents       int64        `json:"amount_cents"`
	Id                uuid.UUID    `json:"id"`
	TransactionId     uuid.UUID    `json:"transaction_id"`
	ProjectId         uuid.UUID    `json:"project_id"`
}

// EscrowList wraps a list of escrow payments
type EscrowList struct {
	Data []Escrow `json:"data"`
}

// FundEscrow is the body of POST /api/v1/escrows
type FundEscrow struct {
	MilestoneId       *uuid.UUID `json:"milestone_id,omitempty"`
	ReleaseConditions string     `json:"release_conditions"`
	PaymentMethod     string     `json:"payment_method"`
	AmountCents       int64      `json:"amount_cents"`
	ProjectId         uuid.UUID  `json:"project_id"`
	RecipientId       uuid.UUID  `json:"recipient_id"`
}

// RefundEscrow is the body of POST .../refund
type RefundEscrow struct {
	Reason string `json:"reason"`
}

// AwardBid is the body of POST /api/v1/workflows/award
type AwardBid struct {
	MilestoneId       *uuid.UUID `json:"milestone_id,omitempty"`
	ReleaseConditions string     `json:"release_conditions"`
	PaymentMethod     string     `json:"payment_method"`
	RequestId         uuid.UUID  `json:"request_id"`
	ResponseId        uuid.UUID  `json:"response_id"`
	ProjectId         uuid.UUID  `json:"project_id"`
}

// FundAwarded is the body of POST /api/v1/workflows/fund
type FundAwarded struct {
	MilestoneId       *uuid.UUID `json:"milestone_id,omitempty"`
	ReleaseConditions string     `json:"release_conditions"`
	PaymentMethod     string     `json:"payment_method"`
	RequestId         uuid.UUID  `json:"request_id"`
	ProjectId         uuid.UUID  `json:"project_id"`
}

// AwardResult is the outcome of the award workflow
type AwardResult struct {
	Escrow       *Escrow      `json:"escrow,omitempty"`
	FundingError *Error       `json:"funding_error,omitempty"`
	Acceptance   AcceptResult `json:"acceptance"`
}

// CompleteWork is the body of POST /api/v1/workflows/complete
type CompleteWork struct {
	RequestId uuid.UUID `json:"request_id"`
	EscrowId  uuid.UUID `json:"escrow_id"`
}

// CompleteResult is the outcome of the completion workflow
type CompleteResult struct {
	Request         *EstimateRequest `json:"request,omitempty"`
	CompletionError *Error           `json:"completion_error,omitempty"`
	Escrow          Escrow           `json:"escrow"`
}
