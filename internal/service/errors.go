package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/benx421/homebid/internal/models"
)

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Error codes
const (
	ErrCodeInvalidInput             = "invalid_input"
	ErrCodeInvalidAmount            = "invalid_amount"
	ErrCodeInvalidBudget            = "invalid_budget"
	ErrCodeMissingReleaseConditions = "missing_release_conditions"
	ErrCodeMissingClaimReason       = "missing_claim_reason"
	ErrCodeForbidden                = "forbidden"
	ErrCodeRequestNotFound          = "request_not_found"
	ErrCodeResponseNotFound         = "response_not_found"
	ErrCodeEscrowNotFound           = "escrow_not_found"
	ErrCodeProjectNotFound          = "project_not_found"
	ErrCodeMilestoneNotFound        = "milestone_not_found"
	ErrCodeRequestNotOpen           = "request_not_open"
	ErrCodeRequestNotInProgress     = "request_not_in_progress"
	ErrCodeResponseNotPending       = "response_not_pending"
	ErrCodeResponseAlreadyAccepted  = "response_already_accepted"
	ErrCodeDuplicateResponse        = "duplicate_response"
	ErrCodeNoAcceptedResponse       = "no_accepted_response"
	ErrCodeEscrowNotHeld            = "escrow_not_held"
	ErrCodeInternalError            = "internal_error"
)

// ErrorKind groups error codes by how a caller is expected to react.
type ErrorKind int

const (
	// KindPersistence covers store failures and anything unclassified. The
	// operation may be retried as-is.
	KindPersistence ErrorKind = iota
	// KindValidation means the input was rejected before any write.
	KindValidation
	// KindForbidden means the actor does not own the entity.
	KindForbidden
	// KindNotFound means a referenced id does not exist under the expected parent.
	KindNotFound
	// KindStateConflict means a status precondition failed. Re-fetch before
	// choosing what to do; do not repeat the same call blindly.
	KindStateConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindStateConflict:
		return "state_conflict"
	default:
		return "persistence"
	}
}

var codeKinds = map[string]ErrorKind{
	ErrCodeInvalidInput:             KindValidation,
	ErrCodeInvalidAmount:            KindValidation,
	ErrCodeInvalidBudget:            KindValidation,
	ErrCodeMissingReleaseConditions: KindValidation,
	ErrCodeMissingClaimReason:       KindValidation,
	ErrCodeForbidden:                KindForbidden,
	ErrCodeRequestNotFound:          KindNotFound,
	ErrCodeResponseNotFound:         KindNotFound,
	ErrCodeEscrowNotFound:           KindNotFound,
	ErrCodeProjectNotFound:          KindNotFound,
	ErrCodeMilestoneNotFound:        KindNotFound,
	ErrCodeRequestNotOpen:           KindStateConflict,
	ErrCodeRequestNotInProgress:     KindStateConflict,
	ErrCodeResponseNotPending:       KindStateConflict,
	ErrCodeResponseAlreadyAccepted:  KindStateConflict,
	ErrCodeDuplicateResponse:        KindStateConflict,
	ErrCodeNoAcceptedResponse:       KindStateConflict,
	ErrCodeEscrowNotHeld:            KindStateConflict,
}

// KindOf classifies err. Errors that are not a *ServiceError are persistence errors.
func KindOf(err error) ErrorKind {
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		return KindPersistence
	}
	if kind, ok := codeKinds[svcErr.Code]; ok {
		return kind
	}
	return KindPersistence
}

// IsStateConflict reports whether err is a failed status precondition
func IsStateConflict(err error) bool {
	return err != nil && KindOf(err) == KindStateConflict
}

func newError(code, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}

func internalError(message string, err error) *ServiceError {
	return &ServiceError{Code: ErrCodeInternalError, Message: message, Err: err}
}

func forbidden(message string) *ServiceError {
	return newError(ErrCodeForbidden, message)
}

// lookupError maps a repository read failure: missing rows become code, anything
// else is a persistence error.
func lookupError(err error, code, message string) error {
	if errors.Is(err, models.ErrNotFound) {
		return newError(code, message)
	}
	return internalError(message, err)
}

// guardError maps a failed conditional write. A lost status race or a
// uniqueness violation is a state conflict; anything else is a persistence error.
func guardError(err error, code, message string) error {
	if errors.Is(err, models.ErrStatusConflict) || errors.Is(err, models.ErrDuplicate) {
		return &ServiceError{Code: code, Message: message, Err: err}
	}
	return internalError(message, err)
}

func logFailure(ctx context.Context, logger *slog.Logger, msg string, err error, attrs ...any) {
	attrs = append(attrs, "error", err, "kind", KindOf(err).String())
	switch KindOf(err) {
	case KindPersistence:
		logger.ErrorContext(ctx, msg, attrs...)
	case KindStateConflict:
		logger.WarnContext(ctx, msg, attrs...)
	default:
		logger.InfoContext(ctx, msg, attrs...)
	}
}
