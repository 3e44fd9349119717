package service

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/benx421/homebid/internal/db"
	"github.com/benx421/homebid/internal/models"
	"github.com/benx421/homebid/internal/notify"
	"github.com/benx421/homebid/internal/repository"
	"github.com/google/uuid"
)

// FundEscrowInput carries a payer's request to hold funds against a project
type FundEscrowInput struct {
	MilestoneID       *uuid.UUID
	ReleaseConditions string
	PaymentMethod     string
	AmountCents       int64
	ProjectID         uuid.UUID
	PayerID           uuid.UUID
	RecipientID       uuid.UUID
}

// EscrowService moves money into escrow and out of it exactly once
type EscrowService struct {
	db        *db.DB
	notifier  notify.Notifier
	logger    *slog.Logger
	now       func() time.Time
	currency  string
	isolation sql.IsolationLevel
}

// NewEscrowService creates a new escrow payment service
func NewEscrowService(database *db.DB, isolation sql.IsolationLevel, currency string, notifier notify.Notifier, logger *slog.Logger) *EscrowService {
	return &EscrowService{
		db:        database,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
		currency:  currency,
		isolation: isolation,
	}
}

// FundEscrow records a completed ledger transaction and a held escrow payment
// for it in one transaction.
func (s *EscrowService) FundEscrow(ctx context.Context, input FundEscrowInput) (*models.EscrowPayment, error) {
	var escrow *models.EscrowPayment
	err := runInTx(ctx, s.db, s.isolation, func(tx *sql.Tx) error {
		var err error
		escrow, err = s.performFund(ctx,
			repository.NewProjectRepository(tx),
			repository.NewTransactionRepository(tx),
			repository.NewEscrowRepository(tx),
			input,
		)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "fund escrow failed", err,
			"project_id", input.ProjectID,
			"payer_id", input.PayerID,
			"amount_cents", input.AmountCents,
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "escrow funded",
		"escrow_id", escrow.ID,
		"transaction_id", escrow.TransactionID,
		"project_id", escrow.ProjectID,
		"amount_cents", escrow.AmountCents,
	)
	s.publishEscrow(ctx, escrow, notify.EventEscrowFunded)

	return escrow, nil
}

func (s *EscrowService) performFund(
	ctx context.Context,
	projects repository.ProjectRepository,
	txns repository.TransactionRepository,
	escrows repository.EscrowRepository,
	input FundEscrowInput,
) (*models.EscrowPayment, error) {
	if err := ValidateAmount(input.AmountCents); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidAmount, Message: "invalid escrow amount", Err: err}
	}
	if err := ValidateText("release conditions", input.ReleaseConditions); err != nil {
		return nil, &ServiceError{Code: ErrCodeMissingReleaseConditions, Message: "release conditions are required", Err: err}
	}
	if err := ValidatePaymentMethod(input.PaymentMethod); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidInput, Message: "invalid payment method", Err: err}
	}
	if err := ValidateID("recipient id", input.RecipientID); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidInput, Message: "invalid recipient", Err: err}
	}
	if input.RecipientID == input.PayerID {
		return nil, newError(ErrCodeInvalidInput, "payer and recipient must differ")
	}

	project, err := projects.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, lookupError(err, ErrCodeProjectNotFound, "project not found")
	}
	if project.HomeownerID != input.PayerID {
		return nil, forbidden("only the project owner can fund escrow")
	}
	if input.MilestoneID != nil {
		milestone, err := projects.FindMilestone(ctx, *input.MilestoneID)
		if err != nil {
			return nil, lookupError(err, ErrCodeMilestoneNotFound, "milestone not found")
		}
		if milestone.ProjectID != project.ID {
			return nil, newError(ErrCodeMilestoneNotFound, "milestone not found")
		}
	}

	txn := &models.Transaction{
		PaymentMethod: strings.TrimSpace(input.PaymentMethod),
		Currency:      s.currency,
		Type:          models.TransactionTypeEscrow,
		Status:        models.TransactionStatusPending,
		AmountCents:   input.AmountCents,
		PayerID:       input.PayerID,
		RecipientID:   input.RecipientID,
	}
	if err := txns.Create(ctx, txn); err != nil {
		return nil, internalError("failed to create transaction", err)
	}

	escrow := &models.EscrowPayment{
		MilestoneID:       input.MilestoneID,
		ReleaseConditions: strings.TrimSpace(input.ReleaseConditions),
		Status:            models.EscrowStatusHeld,
		AmountCents:       txn.AmountCents,
		TransactionID:     txn.ID,
		ProjectID:         project.ID,
	}
	if err := escrows.Create(ctx, escrow); err != nil {
		return nil, internalError("failed to create escrow payment", err)
	}

	// The ledger entry completes only once the escrow row exists, so a
	// completed escrow transaction always has its hold.
	if err := txns.UpdateStatus(ctx, txn.ID, models.TransactionStatusPending, models.TransactionStatusCompleted); err != nil {
		return nil, internalError("failed to complete transaction", err)
	}
	txn.Status = models.TransactionStatusCompleted
	escrow.Transaction = txn

	return escrow, nil
}

// ReleaseEscrow pays a held escrow out to the recipient
func (s *EscrowService) ReleaseEscrow(ctx context.Context, escrowID, actorID uuid.UUID) (*models.EscrowPayment, error) {
	var escrow *models.EscrowPayment
	err := runInTx(ctx, s.db, s.isolation, func(tx *sql.Tx) error {
		var err error
		escrow, err = s.performRelease(ctx,
			repository.NewTransactionRepository(tx),
			repository.NewEscrowRepository(tx),
			escrowID, actorID,
		)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "release escrow failed", err, "escrow_id", escrowID)
		return nil, err
	}

	s.logger.InfoContext(ctx, "escrow released",
		"escrow_id", escrow.ID,
		"amount_cents", escrow.AmountCents,
	)
	s.publishEscrow(ctx, escrow, notify.EventEscrowReleased)

	return escrow, nil
}

func (s *EscrowService) performRelease(
	ctx context.Context,
	txns repository.TransactionRepository,
	escrows repository.EscrowRepository,
	escrowID, actorID uuid.UUID,
) (*models.EscrowPayment, error) {
	escrow, err := s.lockHeldByPayer(ctx, txns, escrows, escrowID, actorID)
	if err != nil {
		return nil, err
	}

	releasedAt := s.now().UTC()
	if err := escrows.Release(ctx, escrow.ID, releasedAt); err != nil {
		return nil, guardError(err, ErrCodeEscrowNotHeld, "escrow payment changed concurrently")
	}
	escrow.Status = models.EscrowStatusReleased
	escrow.ReleaseDate = &releasedAt

	return escrow, nil
}

// RefundEscrow returns a held escrow to the payer. A claim reason is required.
func (s *EscrowService) RefundEscrow(ctx context.Context, escrowID, actorID uuid.UUID, reason string) (*models.EscrowPayment, error) {
	var escrow *models.EscrowPayment
	err := runInTx(ctx, s.db, s.isolation, func(tx *sql.Tx) error {
		var err error
		escrow, err = s.performRefund(ctx,
			repository.NewTransactionRepository(tx),
			repository.NewEscrowRepository(tx),
			escrowID, actorID, reason,
		)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "refund escrow failed", err, "escrow_id", escrowID)
		return nil, err
	}

	s.logger.InfoContext(ctx, "escrow refunded",
		"escrow_id", escrow.ID,
		"amount_cents", escrow.AmountCents,
	)
	s.publishEscrow(ctx, escrow, notify.EventEscrowRefunded)

	return escrow, nil
}

func (s *EscrowService) performRefund(
	ctx context.Context,
	txns repository.TransactionRepository,
	escrows repository.EscrowRepository,
	escrowID, actorID uuid.UUID,
	reason string,
) (*models.EscrowPayment, error) {
	if err := ValidateText("claim reason", reason); err != nil {
		return nil, &ServiceError{Code: ErrCodeMissingClaimReason, Message: "a claim reason is required to refund", Err: err}
	}
	reason = strings.TrimSpace(reason)

	escrow, err := s.lockHeldByPayer(ctx, txns, escrows, escrowID, actorID)
	if err != nil {
		return nil, err
	}

	if err := escrows.Refund(ctx, escrow.ID, reason); err != nil {
		return nil, guardError(err, ErrCodeEscrowNotHeld, "escrow payment changed concurrently")
	}
	escrow.Status = models.EscrowStatusRefunded
	escrow.RefundReason = &reason

	return escrow, nil
}

// lockHeldByPayer loads and locks an escrow with its transaction and checks
// that actorID paid it and that it is still held.
func (s *EscrowService) lockHeldByPayer(
	ctx context.Context,
	txns repository.TransactionRepository,
	escrows repository.EscrowRepository,
	escrowID, actorID uuid.UUID,
) (*models.EscrowPayment, error) {
	escrow, err := escrows.FindByIDForUpdate(ctx, escrowID)
	if err != nil {
		return nil, lookupError(err, ErrCodeEscrowNotFound, "escrow payment not found")
	}

	txn, err := txns.FindByID(ctx, escrow.TransactionID)
	if err != nil {
		return nil, internalError("failed to load escrow transaction", err)
	}
	escrow.Transaction = txn

	if txn.PayerID != actorID {
		return nil, forbidden("only the payer can settle this escrow")
	}
	if escrow.Status != models.EscrowStatusHeld {
		return nil, newError(ErrCodeEscrowNotHeld, "escrow payment is already "+string(escrow.Status))
	}

	return escrow, nil
}

// GetEscrow retrieves an escrow payment visible to its payer or recipient
func (s *EscrowService) GetEscrow(ctx context.Context, escrowID, actorID uuid.UUID) (*models.EscrowPayment, error) {
	return s.performGet(ctx,
		repository.NewTransactionRepository(s.db),
		repository.NewEscrowRepository(s.db),
		escrowID, actorID,
	)
}

func (s *EscrowService) performGet(
	ctx context.Context,
	txns repository.TransactionRepository,
	escrows repository.EscrowRepository,
	escrowID, actorID uuid.UUID,
) (*models.EscrowPayment, error) {
	escrow, err := escrows.FindByID(ctx, escrowID)
	if err != nil {
		return nil, lookupError(err, ErrCodeEscrowNotFound, "escrow payment not found")
	}

	txn, err := txns.FindByID(ctx, escrow.TransactionID)
	if err != nil {
		return nil, internalError("failed to load escrow transaction", err)
	}
	if txn.PayerID != actorID && txn.RecipientID != actorID {
		return nil, forbidden("escrow payment belongs to other parties")
	}
	escrow.Transaction = txn

	return escrow, nil
}

// ListProjectEscrows lists a project's escrow payments, newest first, for the project owner
func (s *EscrowService) ListProjectEscrows(ctx context.Context, projectID, actorID uuid.UUID) ([]models.EscrowPayment, error) {
	return s.performList(ctx,
		repository.NewProjectRepository(s.db),
		repository.NewEscrowRepository(s.db),
		projectID, actorID,
	)
}

func (s *EscrowService) performList(
	ctx context.Context,
	projects repository.ProjectRepository,
	escrows repository.EscrowRepository,
	projectID, actorID uuid.UUID,
) ([]models.EscrowPayment, error) {
	project, err := projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, lookupError(err, ErrCodeProjectNotFound, "project not found")
	}
	if project.HomeownerID != actorID {
		return nil, forbidden("only the project owner can list its escrows")
	}

	list, err := escrows.ListByProject(ctx, projectID)
	if err != nil {
		return nil, internalError("failed to list escrow payments", err)
	}
	return list, nil
}

func (s *EscrowService) publishEscrow(ctx context.Context, escrow *models.EscrowPayment, event notify.Event) {
	currency := s.currency
	if escrow.Transaction != nil {
		currency = escrow.Transaction.Currency
	}
	publish(ctx, s.notifier, s.logger, escrowAudience(event, escrow.Transaction), event, notify.EscrowPayload{
		MilestoneID: escrow.MilestoneID,
		Status:      string(escrow.Status),
		Currency:    currency,
		AmountCents: escrow.AmountCents,
		EscrowID:    escrow.ID,
		ProjectID:   escrow.ProjectID,
	})
}

// escrowAudience picks who hears about an escrow event: the payer once funds
// are held, the recipient once they are released or refunded.
func escrowAudience(event notify.Event, txn *models.Transaction) []uuid.UUID {
	if txn == nil {
		return nil
	}
	switch event {
	case notify.EventEscrowFunded:
		return []uuid.UUID{txn.PayerID}
	case notify.EventEscrowReleased, notify.EventEscrowRefunded:
		return []uuid.UUID{txn.RecipientID}
	default:
		return nil
	}
}
