package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the purpose of a movement of funds
type TransactionType string

const (
	TransactionTypeEscrow TransactionType = "escrow"
)

// Transaction represents the ledger entry for a movement of funds
type Transaction struct {
	TransactionDate time.Time         `db:"transaction_date"`
	UpdatedAt       time.Time         `db:"updated_at"`
	PaymentMethod   string            `db:"payment_method"`
	Currency        string            `db:"currency"`
	Type            TransactionType   `db:"transaction_type"`
	Status          TransactionStatus `db:"status"`
	AmountCents     int64             `db:"amount_cents"`
	ID              uuid.UUID         `db:"id"`
	PayerID         uuid.UUID         `db:"payer_id"`
	RecipientID     uuid.UUID         `db:"recipient_id"`
}

// EscrowPayment holds funds against a project or milestone until released or refunded.
// AmountCents always equals the AmountCents of the linked Transaction.
type EscrowPayment struct {
	CreatedAt         time.Time    `db:"created_at"`
	UpdatedAt         time.Time    `db:"updated_at"`
	Transaction       *Transaction `db:"-"`
	MilestoneID       *uuid.UUID   `db:"milestone_id"`
	ReleaseDate       *time.Time   `db:"release_date"`
	RefundReason      *string      `db:"refund_reason"`
	ReleaseConditions string       `db:"release_conditions"`
	Status            EscrowStatus `db:"status"`
	AmountCents       int64        `db:"amount_cents"`
	ID                uuid.UUID    `db:"id"`
	TransactionID     uuid.UUID    `db:"transaction_id"`
	ProjectID         uuid.UUID    `db:"project_id"`
}

// IdempotencyKey tracks processed requests to prevent duplicate side effects on retry
type IdempotencyKey struct {
	CreatedAt      time.Time `db:"created_at"`
	Key            string    `db:"key"`
	RequestPath    string    `db:"request_path"`
	ResponseBody   string    `db:"response_body"`
	ResponseStatus int       `db:"response_status"`
}

// InFlight reports whether the key is reserved by a request that has not
// finished yet. Reserved keys carry no response status.
func (k *IdempotencyKey) InFlight() bool {
	return k.ResponseStatus == 0
}
