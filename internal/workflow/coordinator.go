// Package workflow sequences the bid and escrow services into the award,
// fund and completion steps a homeowner walks through. Each step commits on
// its own; the coordinator holds no state between calls.
package workflow

import (
	"context"
	"log/slog"

	"github.com/benx421/homebid/internal/models"
	"github.com/benx421/homebid/internal/service"
	"github.com/google/uuid"
)

// AwardInput names the bid to accept and how the resulting escrow is funded
type AwardInput struct {
	MilestoneID       *uuid.UUID
	ReleaseConditions string
	PaymentMethod     string
	RequestID         uuid.UUID
	ResponseID        uuid.UUID
	HomeownerID       uuid.UUID
	ProjectID         uuid.UUID
}

// FundInput funds escrow for a request whose winning bid is already accepted
type FundInput struct {
	MilestoneID       *uuid.UUID
	ReleaseConditions string
	PaymentMethod     string
	RequestID         uuid.UUID
	HomeownerID       uuid.UUID
	ProjectID         uuid.UUID
}

// AwardResult reports both steps of an award. When FundingErr is set the
// acceptance still stands and funding can be retried with FundAwarded.
type AwardResult struct {
	Acceptance *service.AcceptResult
	Escrow     *models.EscrowPayment
	FundingErr error
}

// CompleteResult reports both steps of a completion. When CompletionErr is
// set the escrow is already released and only the request is left to close.
type CompleteResult struct {
	Escrow        *models.EscrowPayment
	Request       *models.EstimateRequest
	CompletionErr error
}

// Orchestrator runs the multi-step homeowner workflows
type Orchestrator interface {
	AwardBid(ctx context.Context, input AwardInput) (*AwardResult, error)
	FundAwarded(ctx context.Context, input FundInput) (*models.EscrowPayment, error)
	CompleteWork(ctx context.Context, escrowID, requestID, homeownerID uuid.UUID) (*CompleteResult, error)
}

var _ Orchestrator = (*Coordinator)(nil)

// Coordinator implements Orchestrator on top of the three services
type Coordinator struct {
	requests service.EstimateRequester
	bids     service.BidAcceptor
	escrows  service.EscrowManager
	logger   *slog.Logger
}

// NewCoordinator creates a new workflow coordinator
func NewCoordinator(
	requests service.EstimateRequester,
	bids service.BidAcceptor,
	escrows service.EscrowManager,
	logger *slog.Logger,
) *Coordinator {
	return &Coordinator{
		requests: requests,
		bids:     bids,
		escrows:  escrows,
		logger:   logger,
	}
}

// AwardBid accepts the response and then funds escrow for its price with the
// provider as recipient. A failed acceptance is returned as the error; a
// failed funding is reported in the result.
func (c *Coordinator) AwardBid(ctx context.Context, input AwardInput) (*AwardResult, error) {
	acceptance, err := c.bids.AcceptResponse(ctx, input.RequestID, input.ResponseID, input.HomeownerID)
	if err != nil {
		return nil, err
	}

	result := &AwardResult{Acceptance: acceptance}
	escrow, err := c.escrows.FundEscrow(ctx, fundFor(acceptance.Accepted, FundInput{
		MilestoneID:       input.MilestoneID,
		ReleaseConditions: input.ReleaseConditions,
		PaymentMethod:     input.PaymentMethod,
		RequestID:         input.RequestID,
		HomeownerID:       input.HomeownerID,
		ProjectID:         input.ProjectID,
	}))
	if err != nil {
		c.logger.WarnContext(ctx, "bid awarded but escrow funding failed",
			"request_id", input.RequestID,
			"response_id", input.ResponseID,
			"project_id", input.ProjectID,
			"error", err,
		)
		result.FundingErr = err
		return result, nil
	}
	result.Escrow = escrow

	c.logger.InfoContext(ctx, "bid awarded",
		"request_id", input.RequestID,
		"response_id", input.ResponseID,
		"escrow_id", escrow.ID,
		"amount_cents", escrow.AmountCents,
	)
	return result, nil
}

// FundAwarded funds escrow for the accepted response of an in-progress request
func (c *Coordinator) FundAwarded(ctx context.Context, input FundInput) (*models.EscrowPayment, error) {
	req, err := c.ownedRequest(ctx, input.RequestID, input.HomeownerID)
	if err != nil {
		return nil, err
	}

	responses, err := c.requests.ListResponses(ctx, req.ID, input.HomeownerID)
	if err != nil {
		return nil, err
	}

	winner := acceptedResponse(responses)
	if winner == nil {
		return nil, &service.ServiceError{
			Code:    service.ErrCodeNoAcceptedResponse,
			Message: "request has no accepted response",
		}
	}

	escrow, err := c.escrows.FundEscrow(ctx, fundFor(winner, input))
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "awarded bid funded",
		"request_id", req.ID,
		"response_id", winner.ID,
		"escrow_id", escrow.ID,
	)
	return escrow, nil
}

// CompleteWork releases the escrow and then completes the request. Nothing is
// released unless the caller owns the request and it is in progress; the
// escrow and the request are not otherwise linked.
func (c *Coordinator) CompleteWork(ctx context.Context, escrowID, requestID, homeownerID uuid.UUID) (*CompleteResult, error) {
	if _, err := c.ownedRequest(ctx, requestID, homeownerID); err != nil {
		return nil, err
	}

	escrow, err := c.escrows.ReleaseEscrow(ctx, escrowID, homeownerID)
	if err != nil {
		return nil, err
	}

	result := &CompleteResult{Escrow: escrow}
	req, err := c.requests.CompleteRequest(ctx, requestID, homeownerID)
	if err != nil {
		c.logger.WarnContext(ctx, "escrow released but request completion failed",
			"request_id", requestID,
			"escrow_id", escrowID,
			"error", err,
		)
		result.CompletionErr = err
		return result, nil
	}
	result.Request = req

	c.logger.InfoContext(ctx, "work completed",
		"request_id", requestID,
		"escrow_id", escrowID,
	)
	return result, nil
}

// ownedRequest loads a request the homeowner owns that is in progress
func (c *Coordinator) ownedRequest(ctx context.Context, requestID, homeownerID uuid.UUID) (*models.EstimateRequest, error) {
	req, err := c.requests.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.HomeownerID != homeownerID {
		return nil, &service.ServiceError{
			Code:    service.ErrCodeForbidden,
			Message: "only the homeowner can act on this request",
		}
	}
	if req.Status != models.RequestStatusInProgress {
		return nil, &service.ServiceError{
			Code:    service.ErrCodeRequestNotInProgress,
			Message: "request is not in progress",
		}
	}
	return req, nil
}

func acceptedResponse(responses []models.EstimateResponse) *models.EstimateResponse {
	for i := range responses {
		if responses[i].Status == models.ResponseStatusAccepted {
			return &responses[i]
		}
	}
	return nil
}

func fundFor(winner *models.EstimateResponse, input FundInput) service.FundEscrowInput {
	return service.FundEscrowInput{
		MilestoneID:       input.MilestoneID,
		ReleaseConditions: input.ReleaseConditions,
		PaymentMethod:     input.PaymentMethod,
		AmountCents:       winner.PriceCents,
		ProjectID:         input.ProjectID,
		PayerID:           input.HomeownerID,
		RecipientID:       winner.ProviderID,
	}
}
