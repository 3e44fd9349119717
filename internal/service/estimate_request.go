package service

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/benx421/homebid/internal/db"
	"github.com/benx421/homebid/internal/models"
	"github.com/benx421/homebid/internal/notify"
	"github.com/benx421/homebid/internal/repository"
	"github.com/google/uuid"
)

// CreateRequestInput carries a homeowner's new estimate request
type CreateRequestInput struct {
	BudgetMaxCents *int64
	Timeline       string
	BudgetMinCents int64
	HomeownerID    uuid.UUID
	ServiceID      uuid.UUID
	PropertyID     uuid.UUID
}

// SubmitResponseInput carries a provider's bid
type SubmitResponseInput struct {
	Timeline   string
	PriceCents int64
	RequestID  uuid.UUID
	ProviderID uuid.UUID
}

// EstimateRequestService manages estimate requests and the bids posted against them
type EstimateRequestService struct {
	db        *db.DB
	notifier  notify.Notifier
	logger    *slog.Logger
	isolation sql.IsolationLevel
}

// NewEstimateRequestService creates a new estimate request service
func NewEstimateRequestService(database *db.DB, isolation sql.IsolationLevel, notifier notify.Notifier, logger *slog.Logger) *EstimateRequestService {
	return &EstimateRequestService{
		db:        database,
		notifier:  notifier,
		logger:    logger,
		isolation: isolation,
	}
}

// CreateRequest opens a new estimate request owned by the homeowner
func (s *EstimateRequestService) CreateRequest(ctx context.Context, input CreateRequestInput) (*models.EstimateRequest, error) {
	req, err := s.performCreate(ctx, repository.NewEstimateRequestRepository(s.db), input)
	if err != nil {
		logFailure(ctx, s.logger, "create estimate request failed", err, "homeowner_id", input.HomeownerID)
		return nil, err
	}

	s.logger.InfoContext(ctx, "estimate request created",
		"request_id", req.ID,
		"homeowner_id", req.HomeownerID,
	)
	return req, nil
}

func (s *EstimateRequestService) performCreate(
	ctx context.Context,
	requests repository.EstimateRequestRepository,
	input CreateRequestInput,
) (*models.EstimateRequest, error) {
	ids := []struct {
		field string
		id    uuid.UUID
	}{
		{"homeowner id", input.HomeownerID},
		{"service id", input.ServiceID},
		{"property id", input.PropertyID},
	}
	for _, f := range ids {
		if err := ValidateID(f.field, f.id); err != nil {
			return nil, &ServiceError{Code: ErrCodeInvalidInput, Message: "invalid estimate request", Err: err}
		}
	}
	if err := ValidateBudget(input.BudgetMinCents, input.BudgetMaxCents); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidBudget, Message: "invalid budget", Err: err}
	}
	if err := ValidateText("timeline", input.Timeline); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidInput, Message: "invalid estimate request", Err: err}
	}

	req := &models.EstimateRequest{
		BudgetMaxCents: input.BudgetMaxCents,
		Timeline:       strings.TrimSpace(input.Timeline),
		Status:         models.RequestStatusOpen,
		BudgetMinCents: input.BudgetMinCents,
		HomeownerID:    input.HomeownerID,
		ServiceID:      input.ServiceID,
		PropertyID:     input.PropertyID,
	}
	if err := requests.Create(ctx, req); err != nil {
		return nil, internalError("failed to create estimate request", err)
	}

	return req, nil
}

// GetRequest retrieves an estimate request by ID
func (s *EstimateRequestService) GetRequest(ctx context.Context, requestID uuid.UUID) (*models.EstimateRequest, error) {
	req, err := repository.NewEstimateRequestRepository(s.db).FindByID(ctx, requestID)
	if err != nil {
		return nil, lookupError(err, ErrCodeRequestNotFound, "estimate request not found")
	}
	return req, nil
}

// ListResponses returns the bids on a request. The owner sees every bid; any
// other actor sees only the bids they submitted.
func (s *EstimateRequestService) ListResponses(ctx context.Context, requestID, actorID uuid.UUID) ([]models.EstimateResponse, error) {
	return s.performListResponses(ctx,
		repository.NewEstimateRequestRepository(s.db),
		repository.NewEstimateResponseRepository(s.db),
		requestID, actorID,
	)
}

func (s *EstimateRequestService) performListResponses(
	ctx context.Context,
	requests repository.EstimateRequestRepository,
	responses repository.EstimateResponseRepository,
	requestID, actorID uuid.UUID,
) ([]models.EstimateResponse, error) {
	req, err := requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, lookupError(err, ErrCodeRequestNotFound, "estimate request not found")
	}

	all, err := responses.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, internalError("failed to list estimate responses", err)
	}
	if req.HomeownerID == actorID {
		return all, nil
	}

	own := make([]models.EstimateResponse, 0, 1)
	for _, r := range all {
		if r.ProviderID == actorID {
			own = append(own, r)
		}
	}
	return own, nil
}

// SubmitResponse records a provider's bid on an open request
func (s *EstimateRequestService) SubmitResponse(ctx context.Context, input SubmitResponseInput) (*models.EstimateResponse, error) {
	var resp *models.EstimateResponse
	err := runInTx(ctx, s.db, s.isolation, func(tx *sql.Tx) error {
		var err error
		resp, err = s.performSubmit(ctx,
			repository.NewEstimateRequestRepository(tx),
			repository.NewEstimateResponseRepository(tx),
			input,
		)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "submit estimate response failed", err,
			"request_id", input.RequestID,
			"provider_id", input.ProviderID,
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "estimate response submitted",
		"request_id", resp.RequestID,
		"response_id", resp.ID,
		"provider_id", resp.ProviderID,
		"price_cents", resp.PriceCents,
	)
	return resp, nil
}

func (s *EstimateRequestService) performSubmit(
	ctx context.Context,
	requests repository.EstimateRequestRepository,
	responses repository.EstimateResponseRepository,
	input SubmitResponseInput,
) (*models.EstimateResponse, error) {
	if err := ValidateID("provider id", input.ProviderID); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidInput, Message: "invalid estimate response", Err: err}
	}
	if err := ValidateAmount(input.PriceCents); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidAmount, Message: "invalid price", Err: err}
	}
	if err := ValidateText("timeline", input.Timeline); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidInput, Message: "invalid estimate response", Err: err}
	}

	req, err := requests.FindByIDForUpdate(ctx, input.RequestID)
	if err != nil {
		return nil, lookupError(err, ErrCodeRequestNotFound, "estimate request not found")
	}
	if req.HomeownerID == input.ProviderID {
		return nil, forbidden("homeowners cannot bid on their own request")
	}
	if req.Status != models.RequestStatusOpen {
		return nil, newError(ErrCodeRequestNotOpen, "estimate request is "+string(req.Status))
	}

	resp := &models.EstimateResponse{
		Timeline:   strings.TrimSpace(input.Timeline),
		Status:     models.ResponseStatusPending,
		PriceCents: input.PriceCents,
		RequestID:  req.ID,
		ProviderID: input.ProviderID,
	}
	if err := responses.Create(ctx, resp); err != nil {
		return nil, guardError(err, ErrCodeDuplicateResponse, "provider already responded to this request")
	}

	return resp, nil
}

// CompleteRequest marks an in-progress request as completed
func (s *EstimateRequestService) CompleteRequest(ctx context.Context, requestID, actorID uuid.UUID) (*models.EstimateRequest, error) {
	var req *models.EstimateRequest
	err := runInTx(ctx, s.db, s.isolation, func(tx *sql.Tx) error {
		var err error
		req, err = s.performComplete(ctx, repository.NewEstimateRequestRepository(tx), requestID, actorID)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "complete estimate request failed", err, "request_id", requestID)
		return nil, err
	}

	s.logger.InfoContext(ctx, "estimate request completed", "request_id", requestID)
	return req, nil
}

func (s *EstimateRequestService) performComplete(
	ctx context.Context,
	requests repository.EstimateRequestRepository,
	requestID, actorID uuid.UUID,
) (*models.EstimateRequest, error) {
	req, err := requests.FindByIDForUpdate(ctx, requestID)
	if err != nil {
		return nil, lookupError(err, ErrCodeRequestNotFound, "estimate request not found")
	}
	if req.HomeownerID != actorID {
		return nil, forbidden("only the homeowner can complete this request")
	}
	if req.Status != models.RequestStatusInProgress {
		return nil, newError(ErrCodeRequestNotInProgress, "estimate request is "+string(req.Status))
	}

	if err := requests.UpdateStatus(ctx, req.ID, models.RequestStatusInProgress, models.RequestStatusCompleted); err != nil {
		return nil, guardError(err, ErrCodeRequestNotInProgress, "estimate request changed concurrently")
	}
	req.Status = models.RequestStatusCompleted

	return req, nil
}

// CancelRequest withdraws an open request and declines every pending bid
func (s *EstimateRequestService) CancelRequest(ctx context.Context, requestID, actorID uuid.UUID) (*models.EstimateRequest, error) {
	var (
		req      *models.EstimateRequest
		declined []models.EstimateResponse
	)
	err := runInTx(ctx, s.db, s.isolation, func(tx *sql.Tx) error {
		var err error
		req, declined, err = s.performCancel(ctx,
			repository.NewEstimateRequestRepository(tx),
			repository.NewEstimateResponseRepository(tx),
			requestID, actorID,
		)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "cancel estimate request failed", err, "request_id", requestID)
		return nil, err
	}

	s.logger.InfoContext(ctx, "estimate request cancelled",
		"request_id", requestID,
		"declined_count", len(declined),
	)
	publish(ctx, s.notifier, s.logger, providerIDs(declined), notify.EventRequestCancelled, notify.BidPayload{RequestID: requestID})
	return req, nil
}

func (s *EstimateRequestService) performCancel(
	ctx context.Context,
	requests repository.EstimateRequestRepository,
	responses repository.EstimateResponseRepository,
	requestID, actorID uuid.UUID,
) (*models.EstimateRequest, []models.EstimateResponse, error) {
	req, err := requests.FindByIDForUpdate(ctx, requestID)
	if err != nil {
		return nil, nil, lookupError(err, ErrCodeRequestNotFound, "estimate request not found")
	}
	if req.HomeownerID != actorID {
		return nil, nil, forbidden("only the homeowner can cancel this request")
	}
	if req.Status != models.RequestStatusOpen {
		return nil, nil, newError(ErrCodeRequestNotOpen, "estimate request is "+string(req.Status))
	}

	accepted, err := responses.FindAccepted(ctx, req.ID)
	if err != nil {
		return nil, nil, internalError("failed to check accepted response", err)
	}
	if accepted != nil {
		return nil, nil, newError(ErrCodeResponseAlreadyAccepted, "a response was already accepted; finish the acceptance instead")
	}

	declined, err := responses.DeclinePending(ctx, req.ID, uuid.Nil)
	if err != nil {
		return nil, nil, internalError("failed to decline pending responses", err)
	}
	if err := requests.UpdateStatus(ctx, req.ID, models.RequestStatusOpen, models.RequestStatusCancelled); err != nil {
		return nil, nil, guardError(err, ErrCodeRequestNotOpen, "estimate request changed concurrently")
	}
	req.Status = models.RequestStatusCancelled

	return req, declined, nil
}
