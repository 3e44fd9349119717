package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/benx421/homebid/internal/db"
	"github.com/benx421/homebid/internal/models"
	"github.com/benx421/homebid/internal/notify"
	"github.com/benx421/homebid/internal/repository"
	"github.com/google/uuid"
)

// AcceptResult is the outcome of selecting a winning bid
type AcceptResult struct {
	Request  *models.EstimateRequest
	Accepted *models.EstimateResponse
	Declined []models.EstimateResponse
}

// BidAcceptanceService selects exactly one winning response per request
type BidAcceptanceService struct {
	db        *db.DB
	notifier  notify.Notifier
	logger    *slog.Logger
	isolation sql.IsolationLevel
}

// NewBidAcceptanceService creates a new bid acceptance service
func NewBidAcceptanceService(database *db.DB, isolation sql.IsolationLevel, notifier notify.Notifier, logger *slog.Logger) *BidAcceptanceService {
	return &BidAcceptanceService{
		db:        database,
		notifier:  notifier,
		logger:    logger,
		isolation: isolation,
	}
}

// AcceptResponse accepts one response, declines every other pending response
// and moves the request to in_progress, all in one transaction.
func (s *BidAcceptanceService) AcceptResponse(ctx context.Context, requestID, responseID, actorID uuid.UUID) (*AcceptResult, error) {
	var result *AcceptResult
	err := runInTx(ctx, s.db, s.isolation, func(tx *sql.Tx) error {
		var err error
		result, err = s.performAccept(ctx,
			repository.NewEstimateRequestRepository(tx),
			repository.NewEstimateResponseRepository(tx),
			requestID, responseID, actorID,
		)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "accept estimate response failed", err,
			"request_id", requestID,
			"response_id", responseID,
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "estimate response accepted",
		"request_id", requestID,
		"response_id", responseID,
		"declined_count", len(result.Declined),
	)

	accepted := result.Accepted
	publish(ctx, s.notifier, s.logger, []uuid.UUID{accepted.ProviderID}, notify.EventBidAccepted, notify.BidPayload{
		RequestID:  accepted.RequestID,
		ResponseID: accepted.ID,
		PriceCents: accepted.PriceCents,
	})
	for _, d := range result.Declined {
		publish(ctx, s.notifier, s.logger, []uuid.UUID{d.ProviderID}, notify.EventBidDeclined, notify.BidPayload{
			RequestID:  d.RequestID,
			ResponseID: d.ID,
			PriceCents: d.PriceCents,
		})
	}

	return result, nil
}

func (s *BidAcceptanceService) performAccept(
	ctx context.Context,
	requests repository.EstimateRequestRepository,
	responses repository.EstimateResponseRepository,
	requestID, responseID, actorID uuid.UUID,
) (*AcceptResult, error) {
	// The request row lock serializes every accept, decline and cancel on
	// the same request.
	req, err := requests.FindByIDForUpdate(ctx, requestID)
	if err != nil {
		return nil, lookupError(err, ErrCodeRequestNotFound, "estimate request not found")
	}
	if req.HomeownerID != actorID {
		return nil, forbidden("only the homeowner can accept a response")
	}

	target, err := responses.FindByIDForUpdate(ctx, responseID)
	if err != nil {
		return nil, lookupError(err, ErrCodeResponseNotFound, "estimate response not found")
	}
	if target.RequestID != req.ID {
		return nil, newError(ErrCodeResponseNotFound, "estimate response not found")
	}

	if req.Status != models.RequestStatusOpen {
		return nil, newError(ErrCodeRequestNotOpen, "estimate request is "+string(req.Status))
	}

	switch target.Status {
	case models.ResponseStatusPending:
		winner, err := responses.FindAccepted(ctx, req.ID)
		if err != nil {
			return nil, internalError("failed to check accepted response", err)
		}
		if winner != nil {
			return nil, newError(ErrCodeResponseAlreadyAccepted, "another response was already accepted")
		}
		if err := responses.UpdateStatus(ctx, target.ID, models.ResponseStatusPending, models.ResponseStatusAccepted); err != nil {
			return nil, guardError(err, ErrCodeResponseNotPending, "estimate response changed concurrently")
		}
		target.Status = models.ResponseStatusAccepted

	case models.ResponseStatusAccepted:
		// Accepted while the request is still open: an earlier attempt stopped
		// part way. Finish the remaining effects.
		s.logger.WarnContext(ctx, "resuming partially applied acceptance",
			"request_id", req.ID,
			"response_id", target.ID,
		)

	default:
		return nil, newError(ErrCodeResponseNotPending, "estimate response is "+string(target.Status))
	}

	declined, err := responses.DeclinePending(ctx, req.ID, target.ID)
	if err != nil {
		return nil, internalError("failed to decline competing responses", err)
	}

	if err := requests.UpdateStatus(ctx, req.ID, models.RequestStatusOpen, models.RequestStatusInProgress); err != nil {
		return nil, guardError(err, ErrCodeRequestNotOpen, "estimate request changed concurrently")
	}
	req.Status = models.RequestStatusInProgress

	return &AcceptResult{
		Request:  req,
		Accepted: target,
		Declined: declined,
	}, nil
}

// DeclineResponse declines a single pending response on an open request
func (s *BidAcceptanceService) DeclineResponse(ctx context.Context, requestID, responseID, actorID uuid.UUID) (*models.EstimateResponse, error) {
	var resp *models.EstimateResponse
	err := runInTx(ctx, s.db, s.isolation, func(tx *sql.Tx) error {
		var err error
		resp, err = s.performDecline(ctx,
			repository.NewEstimateRequestRepository(tx),
			repository.NewEstimateResponseRepository(tx),
			requestID, responseID, actorID,
		)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "decline estimate response failed", err,
			"request_id", requestID,
			"response_id", responseID,
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "estimate response declined",
		"request_id", requestID,
		"response_id", responseID,
	)
	publish(ctx, s.notifier, s.logger, []uuid.UUID{resp.ProviderID}, notify.EventBidDeclined, notify.BidPayload{
		RequestID:  resp.RequestID,
		ResponseID: resp.ID,
		PriceCents: resp.PriceCents,
	})

	return resp, nil
}

func (s *BidAcceptanceService) performDecline(
	ctx context.Context,
	requests repository.EstimateRequestRepository,
	responses repository.EstimateResponseRepository,
	requestID, responseID, actorID uuid.UUID,
) (*models.EstimateResponse, error) {
	req, err := requests.FindByIDForUpdate(ctx, requestID)
	if err != nil {
		return nil, lookupError(err, ErrCodeRequestNotFound, "estimate request not found")
	}
	if req.HomeownerID != actorID {
		return nil, forbidden("only the homeowner can decline a response")
	}

	resp, err := responses.FindByIDForUpdate(ctx, responseID)
	if err != nil {
		return nil, lookupError(err, ErrCodeResponseNotFound, "estimate response not found")
	}
	if resp.RequestID != req.ID {
		return nil, newError(ErrCodeResponseNotFound, "estimate response not found")
	}

	if req.Status != models.RequestStatusOpen {
		return nil, newError(ErrCodeRequestNotOpen, "estimate request is "+string(req.Status))
	}
	if resp.Status != models.ResponseStatusPending {
		return nil, newError(ErrCodeResponseNotPending, "estimate response is "+string(resp.Status))
	}

	if err := responses.UpdateStatus(ctx, resp.ID, models.ResponseStatusPending, models.ResponseStatusDeclined); err != nil {
		return nil, guardError(err, ErrCodeResponseNotPending, "estimate response changed concurrently")
	}
	resp.Status = models.ResponseStatusDeclined

	return resp, nil
}
