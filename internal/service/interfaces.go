package service

import (
	"context"

	"github.com/benx421/homebid/internal/models"
	"github.com/google/uuid"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// EstimateRequester handles estimate request and response operations
type EstimateRequester interface {
	CreateRequest(ctx context.Context, input CreateRequestInput) (*models.EstimateRequest, error)
	GetRequest(ctx context.Context, requestID uuid.UUID) (*models.EstimateRequest, error)
	ListResponses(ctx context.Context, requestID, actorID uuid.UUID) ([]models.EstimateResponse, error)
	SubmitResponse(ctx context.Context, input SubmitResponseInput) (*models.EstimateResponse, error)
	CompleteRequest(ctx context.Context, requestID, actorID uuid.UUID) (*models.EstimateRequest, error)
	CancelRequest(ctx context.Context, requestID, actorID uuid.UUID) (*models.EstimateRequest, error)
}

// BidAcceptor handles winning bid selection
type BidAcceptor interface {
	AcceptResponse(ctx context.Context, requestID, responseID, actorID uuid.UUID) (*AcceptResult, error)
	DeclineResponse(ctx context.Context, requestID, responseID, actorID uuid.UUID) (*models.EstimateResponse, error)
}

// EscrowManager handles escrow funding and settlement
type EscrowManager interface {
	FundEscrow(ctx context.Context, input FundEscrowInput) (*models.EscrowPayment, error)
	ReleaseEscrow(ctx context.Context, escrowID, actorID uuid.UUID) (*models.EscrowPayment, error)
	RefundEscrow(ctx context.Context, escrowID, actorID uuid.UUID, reason string) (*models.EscrowPayment, error)
	GetEscrow(ctx context.Context, escrowID, actorID uuid.UUID) (*models.EscrowPayment, error)
	ListProjectEscrows(ctx context.Context, projectID, actorID uuid.UUID) ([]models.EscrowPayment, error)
}

// Ensure concrete types implement interfaces
var (
	_ EstimateRequester = (*EstimateRequestService)(nil)
	_ BidAcceptor       = (*BidAcceptanceService)(nil)
	_ EscrowManager     = (*EscrowService)(nil)
)
