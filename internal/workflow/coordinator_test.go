package workflow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/benx421/homebid/internal/models"
	"github.com/benx421/homebid/internal/service"
	"github.com/benx421/homebid/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type coordinatorFixture struct {
	requests  *mocks.MockEstimateRequester
	bids      *mocks.MockBidAcceptor
	escrows   *mocks.MockEscrowManager
	coord     *Coordinator
	homeowner uuid.UUID
	provider  uuid.UUID
	request   *models.EstimateRequest
	winner    models.EstimateResponse
	projectID uuid.UUID
}

func newCoordinatorFixture(t *testing.T) *coordinatorFixture {
	f := &coordinatorFixture{
		requests:  mocks.NewMockEstimateRequester(t),
		bids:      mocks.NewMockBidAcceptor(t),
		escrows:   mocks.NewMockEscrowManager(t),
		homeowner: uuid.New(),
		provider:  uuid.New(),
		projectID: uuid.New(),
	}
	f.coord = NewCoordinator(f.requests, f.bids, f.escrows, slog.New(slog.NewTextHandler(io.Discard, nil)))
	f.request = &models.EstimateRequest{
		ID:          uuid.New(),
		HomeownerID: f.homeowner,
		Status:      models.RequestStatusInProgress,
	}
	f.winner = models.EstimateResponse{
		ID:         uuid.New(),
		RequestID:  f.request.ID,
		ProviderID: f.provider,
		PriceCents: 50000,
		Status:     models.ResponseStatusAccepted,
	}
	return f
}

func (f *coordinatorFixture) awardInput() AwardInput {
	return AwardInput{
		RequestID:         f.request.ID,
		ResponseID:        f.winner.ID,
		HomeownerID:       f.homeowner,
		ProjectID:         f.projectID,
		ReleaseConditions: "Drywall complete",
		PaymentMethod:     "credit_card",
	}
}

func (f *coordinatorFixture) expectedFunding() service.FundEscrowInput {
	return service.FundEscrowInput{
		ReleaseConditions: "Drywall complete",
		PaymentMethod:     "credit_card",
		AmountCents:       f.winner.PriceCents,
		ProjectID:         f.projectID,
		PayerID:           f.homeowner,
		RecipientID:       f.provider,
	}
}

func TestAwardBid_AcceptsThenFunds(t *testing.T) {
	f := newCoordinatorFixture(t)
	ctx := context.Background()

	acceptance := &service.AcceptResult{Request: f.request, Accepted: &f.winner}
	escrow := &models.EscrowPayment{ID: uuid.New(), AmountCents: f.winner.PriceCents, Status: models.EscrowStatusHeld}

	f.bids.On("AcceptResponse", ctx, f.request.ID, f.winner.ID, f.homeowner).Return(acceptance, nil)
	f.escrows.On("FundEscrow", ctx, f.expectedFunding()).Return(escrow, nil)

	result, err := f.coord.AwardBid(ctx, f.awardInput())

	require.NoError(t, err)
	assert.Same(t, acceptance, result.Acceptance)
	assert.Same(t, escrow, result.Escrow)
	assert.NoError(t, result.FundingErr)
}

func TestAwardBid_AcceptFailureStopsBeforeFunding(t *testing.T) {
	f := newCoordinatorFixture(t)
	ctx := context.Background()

	conflict := &service.ServiceError{Code: service.ErrCodeRequestNotOpen, Message: "request is not open"}
	f.bids.On("AcceptResponse", ctx, f.request.ID, f.winner.ID, f.homeowner).Return(nil, conflict)

	result, err := f.coord.AwardBid(ctx, f.awardInput())

	assert.Nil(t, result)
	assert.True(t, service.IsStateConflict(err))
	f.escrows.AssertNotCalled(t, "FundEscrow", mock.Anything, mock.Anything)
}

func TestAwardBid_FundingFailureKeepsAcceptance(t *testing.T) {
	f := newCoordinatorFixture(t)
	ctx := context.Background()

	acceptance := &service.AcceptResult{Request: f.request, Accepted: &f.winner}
	fundErr := &service.ServiceError{Code: service.ErrCodeMissingReleaseConditions, Message: "release conditions are required"}

	f.bids.On("AcceptResponse", ctx, f.request.ID, f.winner.ID, f.homeowner).Return(acceptance, nil)
	f.escrows.On("FundEscrow", ctx, mock.AnythingOfType("service.FundEscrowInput")).Return(nil, fundErr)

	result, err := f.coord.AwardBid(ctx, f.awardInput())

	require.NoError(t, err)
	assert.Same(t, acceptance, result.Acceptance)
	assert.Nil(t, result.Escrow)
	assert.ErrorIs(t, result.FundingErr, fundErr)
}

func TestFundAwarded_FundsAcceptedResponse(t *testing.T) {
	f := newCoordinatorFixture(t)
	ctx := context.Background()

	declined := models.EstimateResponse{ID: uuid.New(), ProviderID: uuid.New(), PriceCents: 1, Status: models.ResponseStatusDeclined}
	escrow := &models.EscrowPayment{ID: uuid.New()}

	f.requests.On("GetRequest", ctx, f.request.ID).Return(f.request, nil)
	f.requests.On("ListResponses", ctx, f.request.ID, f.homeowner).Return([]models.EstimateResponse{declined, f.winner}, nil)
	f.escrows.On("FundEscrow", ctx, f.expectedFunding()).Return(escrow, nil)

	got, err := f.coord.FundAwarded(ctx, FundInput{
		RequestID:         f.request.ID,
		HomeownerID:       f.homeowner,
		ProjectID:         f.projectID,
		ReleaseConditions: "Drywall complete",
		PaymentMethod:     "credit_card",
	})

	require.NoError(t, err)
	assert.Same(t, escrow, got)
}

func TestFundAwarded_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("not the owner", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		f.requests.On("GetRequest", ctx, f.request.ID).Return(f.request, nil)

		_, err := f.coord.FundAwarded(ctx, FundInput{RequestID: f.request.ID, HomeownerID: uuid.New(), ProjectID: f.projectID})

		assert.Equal(t, service.KindForbidden, service.KindOf(err))
	})

	t.Run("request still open", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		f.request.Status = models.RequestStatusOpen
		f.requests.On("GetRequest", ctx, f.request.ID).Return(f.request, nil)

		_, err := f.coord.FundAwarded(ctx, FundInput{RequestID: f.request.ID, HomeownerID: f.homeowner, ProjectID: f.projectID})

		var svcErr *service.ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, service.ErrCodeRequestNotInProgress, svcErr.Code)
	})

	t.Run("no accepted response", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		f.requests.On("GetRequest", ctx, f.request.ID).Return(f.request, nil)
		f.requests.On("ListResponses", ctx, f.request.ID, f.homeowner).Return([]models.EstimateResponse{
			{ID: uuid.New(), Status: models.ResponseStatusDeclined},
		}, nil)

		_, err := f.coord.FundAwarded(ctx, FundInput{RequestID: f.request.ID, HomeownerID: f.homeowner, ProjectID: f.projectID})

		var svcErr *service.ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, service.ErrCodeNoAcceptedResponse, svcErr.Code)
		assert.True(t, service.IsStateConflict(err))
	})

	t.Run("request lookup fails", func(t *testing.T) {
		f := newCoordinatorFixture(t)
		f.requests.On("GetRequest", ctx, f.request.ID).Return(nil, errors.New("connection reset"))

		_, err := f.coord.FundAwarded(ctx, FundInput{RequestID: f.request.ID, HomeownerID: f.homeowner})

		assert.Equal(t, service.KindPersistence, service.KindOf(err))
	})
}

func TestCompleteWork_ReleasesThenCompletes(t *testing.T) {
	f := newCoordinatorFixture(t)
	ctx := context.Background()
	escrowID := uuid.New()

	released := &models.EscrowPayment{ID: escrowID, Status: models.EscrowStatusReleased}
	completed := &models.EstimateRequest{ID: f.request.ID, Status: models.RequestStatusCompleted}

	f.requests.On("GetRequest", ctx, f.request.ID).Return(f.request, nil)
	f.escrows.On("ReleaseEscrow", ctx, escrowID, f.homeowner).Return(released, nil)
	f.requests.On("CompleteRequest", ctx, f.request.ID, f.homeowner).Return(completed, nil)

	result, err := f.coord.CompleteWork(ctx, escrowID, f.request.ID, f.homeowner)

	require.NoError(t, err)
	assert.Same(t, released, result.Escrow)
	assert.Same(t, completed, result.Request)
	assert.NoError(t, result.CompletionErr)
}

func TestCompleteWork_ReleaseConflictStops(t *testing.T) {
	f := newCoordinatorFixture(t)
	ctx := context.Background()
	escrowID := uuid.New()

	notHeld := &service.ServiceError{Code: service.ErrCodeEscrowNotHeld, Message: "escrow is not held"}
	f.requests.On("GetRequest", ctx, f.request.ID).Return(f.request, nil)
	f.escrows.On("ReleaseEscrow", ctx, escrowID, f.homeowner).Return(nil, notHeld)

	result, err := f.coord.CompleteWork(ctx, escrowID, f.request.ID, f.homeowner)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, notHeld)
	f.requests.AssertNotCalled(t, "CompleteRequest", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompleteWork_CompletionFailureReported(t *testing.T) {
	f := newCoordinatorFixture(t)
	ctx := context.Background()
	escrowID := uuid.New()

	released := &models.EscrowPayment{ID: escrowID, Status: models.EscrowStatusReleased}
	dbErr := errors.New("connection reset")

	f.requests.On("GetRequest", ctx, f.request.ID).Return(f.request, nil)
	f.escrows.On("ReleaseEscrow", ctx, escrowID, f.homeowner).Return(released, nil)
	f.requests.On("CompleteRequest", ctx, f.request.ID, f.homeowner).Return(nil, dbErr)

	result, err := f.coord.CompleteWork(ctx, escrowID, f.request.ID, f.homeowner)

	require.NoError(t, err)
	assert.Same(t, released, result.Escrow)
	assert.Nil(t, result.Request)
	assert.ErrorIs(t, result.CompletionErr, dbErr)
}

func TestCompleteWork_RequestNotInProgressReleasesNothing(t *testing.T) {
	f := newCoordinatorFixture(t)
	ctx := context.Background()
	f.request.Status = models.RequestStatusCompleted

	f.requests.On("GetRequest", ctx, f.request.ID).Return(f.request, nil)

	_, err := f.coord.CompleteWork(ctx, uuid.New(), f.request.ID, f.homeowner)

	assert.True(t, service.IsStateConflict(err))
	f.escrows.AssertNotCalled(t, "ReleaseEscrow", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompleteWork_OtherHomeownersRequestReleasesNothing(t *testing.T) {
	f := newCoordinatorFixture(t)
	ctx := context.Background()

	f.requests.On("GetRequest", ctx, f.request.ID).Return(f.request, nil)

	_, err := f.coord.CompleteWork(ctx, uuid.New(), f.request.ID, uuid.New())

	assert.Equal(t, service.KindForbidden, service.KindOf(err))
	f.escrows.AssertNotCalled(t, "ReleaseEscrow", mock.Anything, mock.Anything, mock.Anything)
}
