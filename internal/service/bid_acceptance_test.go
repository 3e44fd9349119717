package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/benx421/homebid/internal/models"
	"github.com/benx421/homebid/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type acceptFixture struct {
	requests  *mocks.MockEstimateRequestRepository
	responses *mocks.MockEstimateResponseRepository
	service   *BidAcceptanceService
	request   *models.EstimateRequest
	r1        *models.EstimateResponse
	r2        *models.EstimateResponse
	ctx       context.Context
}

// newAcceptFixture builds request R (open) with r1 at 500.00 and r2 at 650.00, both pending.
func newAcceptFixture(t *testing.T) *acceptFixture {
	requestID := uuid.New()
	return &acceptFixture{
		requests:  mocks.NewMockEstimateRequestRepository(t),
		responses: mocks.NewMockEstimateResponseRepository(t),
		service:   NewBidAcceptanceService(nil, sql.LevelReadCommitted, nil, testLogger()),
		ctx:       context.Background(),
		request: &models.EstimateRequest{
			ID:          requestID,
			HomeownerID: uuid.New(),
			Status:      models.RequestStatusOpen,
		},
		r1: &models.EstimateResponse{
			ID:         uuid.New(),
			RequestID:  requestID,
			ProviderID: uuid.New(),
			PriceCents: 50000,
			Status:     models.ResponseStatusPending,
		},
		r2: &models.EstimateResponse{
			ID:         uuid.New(),
			RequestID:  requestID,
			ProviderID: uuid.New(),
			PriceCents: 65000,
			Status:     models.ResponseStatusPending,
		},
	}
}

func (f *acceptFixture) accept(responseID, actorID uuid.UUID) (*AcceptResult, error) {
	return f.service.performAccept(f.ctx, f.requests, f.responses, f.request.ID, responseID, actorID)
}

func TestBidAcceptanceService_PerformAccept(t *testing.T) {
	t.Run("accepts one response and declines the rest", func(t *testing.T) {
		f := newAcceptFixture(t)
		declinedR2 := *f.r2
		declinedR2.Status = models.ResponseStatusDeclined

		f.requests.On("FindByIDForUpdate", f.ctx, f.request.ID).Return(f.request, nil)
		f.responses.On("FindByIDForUpdate", f.ctx, f.r1.ID).Return(f.r1, nil)
		f.responses.On("FindAccepted", f.ctx, f.request.ID).Return(nil, nil)
		f.responses.On("UpdateStatus", f.ctx, f.r1.ID, models.ResponseStatusPending, models.ResponseStatusAccepted).Return(nil)
		f.responses.On("DeclinePending", f.ctx, f.request.ID, f.r1.ID).Return([]models.EstimateResponse{declinedR2}, nil)
		f.requests.On("UpdateStatus", f.ctx, f.request.ID, models.RequestStatusOpen, models.RequestStatusInProgress).Return(nil)

		result, err := f.accept(f.r1.ID, f.request.HomeownerID)

		require.NoError(t, err)
		assert.Equal(t, models.RequestStatusInProgress, result.Request.Status)
		assert.Equal(t, f.r1.ID, result.Accepted.ID)
		assert.Equal(t, models.ResponseStatusAccepted, result.Accepted.Status)
		require.Len(t, result.Declined, 1)
		assert.Equal(t, f.r2.ID, result.Declined[0].ID)
		assert.Equal(t, models.ResponseStatusDeclined, result.Declined[0].Status)
	})

	t.Run("second accept on the same request conflicts", func(t *testing.T) {
		f := newAcceptFixture(t)
		f.request.Status = models.RequestStatusInProgress
		f.r1.Status = models.ResponseStatusAccepted
		f.r2.Status = models.ResponseStatusDeclined

		f.requests.On("FindByIDForUpdate", f.ctx, f.request.ID).Return(f.request, nil)
		f.responses.On("FindByIDForUpdate", f.ctx, f.r2.ID).Return(f.r2, nil)

		result, err := f.accept(f.r2.ID, f.request.HomeownerID)

		assert.Nil(t, result)
		assertServiceError(t, err, ErrCodeRequestNotOpen, KindStateConflict)
		assert.Contains(t, err.Error(), "in_progress")
	})

	t.Run("resumes a partially applied acceptance", func(t *testing.T) {
		f := newAcceptFixture(t)
		f.r1.Status = models.ResponseStatusAccepted
		declinedR2 := *f.r2
		declinedR2.Status = models.ResponseStatusDeclined

		f.requests.On("FindByIDForUpdate", f.ctx, f.request.ID).Return(f.request, nil)
		f.responses.On("FindByIDForUpdate", f.ctx, f.r1.ID).Return(f.r1, nil)
		f.responses.On("DeclinePending", f.ctx, f.request.ID, f.r1.ID).Return([]models.EstimateResponse{declinedR2}, nil)
		f.requests.On("UpdateStatus", f.ctx, f.request.ID, models.RequestStatusOpen, models.RequestStatusInProgress).Return(nil)

		result, err := f.accept(f.r1.ID, f.request.HomeownerID)

		require.NoError(t, err)
		assert.Equal(t, models.RequestStatusInProgress, result.Request.Status)
		assert.Equal(t, models.ResponseStatusAccepted, result.Accepted.Status)
		f.responses.AssertNotCalled(t, "UpdateStatus", f.ctx, f.r1.ID, models.ResponseStatusPending, models.ResponseStatusAccepted)
	})

	t.Run("refuses a second winner while resuming", func(t *testing.T) {
		f := newAcceptFixture(t)
		accepted := *f.r1
		accepted.Status = models.ResponseStatusAccepted

		f.requests.On("FindByIDForUpdate", f.ctx, f.request.ID).Return(f.request, nil)
		f.responses.On("FindByIDForUpdate", f.ctx, f.r2.ID).Return(f.r2, nil)
		f.responses.On("FindAccepted", f.ctx, f.request.ID).Return(&accepted, nil)

		result, err := f.accept(f.r2.ID, f.request.HomeownerID)

		assert.Nil(t, result)
		assertServiceError(t, err, ErrCodeResponseAlreadyAccepted, KindStateConflict)
	})

	t.Run("actor is not the homeowner", func(t *testing.T) {
		f := newAcceptFixture(t)
		f.requests.On("FindByIDForUpdate", f.ctx, f.request.ID).Return(f.request, nil)

		result, err := f.accept(f.r1.ID, f.r1.ProviderID)

		assert.Nil(t, result)
		assertServiceError(t, err, ErrCodeForbidden, KindForbidden)
	})

	t.Run("request not found", func(t *testing.T) {
		f := newAcceptFixture(t)
		f.requests.On("FindByIDForUpdate", f.ctx, f.request.ID).Return(nil, models.ErrNotFound)

		result, err := f.accept(f.r1.ID, f.request.HomeownerID)

		assert.Nil(t, result)
		assertServiceError(t, err, ErrCodeRequestNotFound, KindNotFound)
	})

	t.Run("response under another request", func(t *testing.T) {
		f := newAcceptFixture(t)
		f.r1.RequestID = uuid.New()
		f.requests.On("FindByIDForUpdate", f.ctx, f.request.ID).Return(f.request, nil)
		f.responses.On("FindByIDForUpdate", f.ctx, f.r1.ID).Return(f.r1, nil)

		result, err := f.accept(f.r1.ID, f.request.HomeownerID)

		assert.Nil(t, result)
		assertServiceError(t, err, ErrCodeResponseNotFound, KindNotFound)
	})

	t.Run("declined response cannot be accepted", func(t *testing.T) {
		f := newAcceptFixture(t)
		f.r2.Status = models.ResponseStatusDeclined
		f.requests.On("FindByIDForUpdate", f.ctx, f.request.ID).Return(f.request, nil)
		f.responses.On("FindByIDForUpdate", f.ctx, f.r2.ID).Return(f.r2, nil)

		result, err := f.accept(f.r2.ID, f.request.HomeownerID)

		assert.Nil(t, result)
		assertServiceError(t, err, ErrCodeResponseNotPending, KindStateConflict)
	})

	t.Run("lost status race is a conflict", func(t *testing.T) {
		f := newAcceptFixture(t)
		f.requests.On("FindByIDForUpdate", f.ctx, f.request.ID).Return(f.request, nil)
		f.responses.On("FindByIDForUpdate", f.ctx, f.r1.ID).Return(f.r1, nil)
		f.responses.On("FindAccepted", f.ctx, f.request.ID).Return(nil, nil)
		f.responses.On("UpdateStatus", f.ctx, f.r1.ID, models.ResponseStatusPending, models.ResponseStatusAccepted).
			Return(models.ErrStatusConflict)

		result, err := f.accept(f.r1.ID, f.request.HomeownerID)

		assert.Nil(t, result)
		assertServiceError(t, err, ErrCodeResponseNotPending, KindStateConflict)
		assert.ErrorIs(t, err, models.ErrStatusConflict)
	})

	t.Run("store failure is a persistence error", func(t *testing.T) {
		f := newAcceptFixture(t)
		f.requests.On("FindByIDForUpdate", f.ctx, f.request.ID).Return(f.request, nil)
		f.responses.On("FindByIDForUpdate", f.ctx, f.r1.ID).Return(f.r1, nil)
		f.responses.On("FindAccepted", f.ctx, f.request.ID).Return(nil, nil)
		f.responses.On("UpdateStatus", f.ctx, f.r1.ID, models.ResponseStatusPending, models.ResponseStatusAccepted).Return(nil)
		f.responses.On("DeclinePending", f.ctx, f.request.ID, f.r1.ID).Return(nil, errors.New("connection reset"))

		result, err := f.accept(f.r1.ID, f.request.HomeownerID)

		assert.Nil(t, result)
		assertServiceError(t, err, ErrCodeInternalError, KindPersistence)
	})
}

func TestBidAcceptanceService_PerformDecline(t *testing.T) {
	t.Run("declines a pending response", func(t *testing.T) {
		f := newAcceptFixture(t)
		f.requests.On("FindByIDForUpdate", f.ctx, f.request.ID).Return(f.request, nil)
		f.responses.On("FindByIDForUpdate", f.ctx, f.r2.ID).Return(f.r2, nil)
		f.responses.On("UpdateStatus", f.ctx, f.r2.ID, models.ResponseStatusPending, models.ResponseStatusDeclined).Return(nil)

		resp, err := f.service.performDecline(f.ctx, f.requests, f.responses, f.request.ID, f.r2.ID, f.request.HomeownerID)

		require.NoError(t, err)
		assert.Equal(t, models.ResponseStatusDeclined, resp.Status)
	})

	t.Run("accepted response cannot be declined", func(t *testing.T) {
		f := newAcceptFixture(t)
		f.r1.Status = models.ResponseStatusAccepted
		f.requests.On("FindByIDForUpdate", f.ctx, f.request.ID).Return(f.request, nil)
		f.responses.On("FindByIDForUpdate", f.ctx, f.r1.ID).Return(f.r1, nil)

		resp, err := f.service.performDecline(f.ctx, f.requests, f.responses, f.request.ID, f.r1.ID, f.request.HomeownerID)

		assert.Nil(t, resp)
		assertServiceError(t, err, ErrCodeResponseNotPending, KindStateConflict)
	})

	t.Run("request no longer open", func(t *testing.T) {
		f := newAcceptFixture(t)
		f.request.Status = models.RequestStatusCancelled
		f.requests.On("FindByIDForUpdate", f.ctx, f.request.ID).Return(f.request, nil)
		f.responses.On("FindByIDForUpdate", f.ctx, f.r2.ID).Return(f.r2, nil)

		resp, err := f.service.performDecline(f.ctx, f.requests, f.responses, f.request.ID, f.r2.ID, f.request.HomeownerID)

		assert.Nil(t, resp)
		assertServiceError(t, err, ErrCodeRequestNotOpen, KindStateConflict)
	})

	t.Run("only the homeowner may decline", func(t *testing.T) {
		f := newAcceptFixture(t)
		f.requests.On("FindByIDForUpdate", f.ctx, f.request.ID).Return(f.request, nil)

		resp, err := f.service.performDecline(f.ctx, f.requests, f.responses, f.request.ID, f.r2.ID, uuid.New())

		assert.Nil(t, resp)
		assertServiceError(t, err, ErrCodeForbidden, KindForbidden)
	})

	t.Run("missing response", func(t *testing.T) {
		f := newAcceptFixture(t)
		missing := uuid.New()
		f.requests.On("FindByIDForUpdate", f.ctx, f.request.ID).Return(f.request, nil)
		f.responses.On("FindByIDForUpdate", f.ctx, missing).Return(nil, models.ErrNotFound)

		resp, err := f.service.performDecline(f.ctx, f.requests, f.responses, f.request.ID, missing, f.request.HomeownerID)

		assert.Nil(t, resp)
		assertServiceError(t, err, ErrCodeResponseNotFound, KindNotFound)
	})
}
