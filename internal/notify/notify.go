// Package notify fans out marketplace events to the affected parties.
//
// Delivery happens after the originating database transaction commits and is
// best effort: a failed notification never undoes a committed state change.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event names a marketplace occurrence a party is told about
type Event string

const (
	EventBidAccepted      Event = "bid.accepted"
	EventBidDeclined      Event = "bid.declined"
	EventRequestCancelled Event = "request.cancelled"
	EventEscrowFunded     Event = "escrow.funded"
	EventEscrowReleased   Event = "escrow.released"
	EventEscrowRefunded   Event = "escrow.refunded"
)

// Envelope is one notification addressed to one recipient
type Envelope struct {
	OccurredAt  time.Time       `json:"occurred_at"`
	Event       Event           `json:"event"`
	Payload     json.RawMessage `json:"payload"`
	RecipientID uuid.UUID       `json:"recipient_id"`
}

// BidPayload describes a change to an estimate response
type BidPayload struct {
	RequestID  uuid.UUID `json:"request_id"`
	ResponseID uuid.UUID `json:"response_id"`
	PriceCents int64     `json:"price_cents"`
}

// EscrowPayload describes a change to an escrow payment
type EscrowPayload struct {
	MilestoneID *uuid.UUID `json:"milestone_id,omitempty"`
	Status      string     `json:"status"`
	Currency    string     `json:"currency"`
	AmountCents int64      `json:"amount_cents"`
	EscrowID    uuid.UUID  `json:"escrow_id"`
	ProjectID   uuid.UUID  `json:"project_id"`
}

// Notifier publishes an event to every recipient
type Notifier interface {
	Notify(ctx context.Context, recipients []uuid.UUID, event Event, payload any) error
}

// Sink delivers a single envelope to its recipient
type Sink interface {
	Deliver(ctx context.Context, env Envelope) error
}

func buildEnvelopes(recipients []uuid.UUID, event Event, payload any, now time.Time) ([]Envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", event, err)
	}

	envs := make([]Envelope, 0, len(recipients))
	for _, recipient := range recipients {
		if recipient == uuid.Nil {
			continue
		}
		envs = append(envs, Envelope{
			OccurredAt:  now,
			Event:       event,
			Payload:     body,
			RecipientID: recipient,
		})
	}
	return envs, nil
}
