package models

import "fmt"

// RequestStatus is the lifecycle state of an estimate request.
type RequestStatus string

const (
	RequestStatusOpen       RequestStatus = "open"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

// ResponseStatus is the decision state of a provider's bid.
type ResponseStatus string

const (
	ResponseStatusPending  ResponseStatus = "pending"
	ResponseStatusAccepted ResponseStatus = "accepted"
	ResponseStatusDeclined ResponseStatus = "declined"
)

// TransactionStatus is the state of a ledger entry.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// EscrowStatus is the state of funds held against a project or milestone.
type EscrowStatus string

const (
	EscrowStatusHeld     EscrowStatus = "held"
	EscrowStatusReleased EscrowStatus = "released"
	EscrowStatusRefunded EscrowStatus = "refunded"
)

// Legal edges per entity. A status missing from a table as a key is terminal.
var (
	requestTransitions = map[RequestStatus][]RequestStatus{
		RequestStatusOpen:       {RequestStatusInProgress, RequestStatusCancelled},
		RequestStatusInProgress: {RequestStatusCompleted},
	}

	responseTransitions = map[ResponseStatus][]ResponseStatus{
		ResponseStatusPending: {ResponseStatusAccepted, ResponseStatusDeclined},
	}

	transactionTransitions = map[TransactionStatus][]TransactionStatus{
		TransactionStatusPending: {TransactionStatusCompleted, TransactionStatusFailed},
	}

	escrowTransitions = map[EscrowStatus][]EscrowStatus{
		EscrowStatusHeld: {EscrowStatusReleased, EscrowStatusRefunded},
	}
)

// InvalidTransitionError reports an edge that is not part of an entity's state machine.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition: %s -> %s", e.Entity, e.From, e.To)
}

func canTransition[S ~string](table map[S][]S, from, to S) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

func checkTransition[S ~string](entity string, table map[S][]S, from, to S) error {
	if !canTransition(table, from, to) {
		return &InvalidTransitionError{Entity: entity, From: string(from), To: string(to)}
	}
	return nil
}

// Valid reports whether s is a known request status.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusOpen, RequestStatusInProgress, RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition can leave s.
func (s RequestStatus) IsTerminal() bool {
	return s.Valid() && len(requestTransitions[s]) == 0
}

// CheckTransition returns an *InvalidTransitionError unless s -> next is a legal edge.
func (s RequestStatus) CheckTransition(next RequestStatus) error {
	return checkTransition("estimate request", requestTransitions, s, next)
}

// Valid reports whether s is a known response status.
func (s ResponseStatus) Valid() bool {
	switch s {
	case ResponseStatusPending, ResponseStatusAccepted, ResponseStatusDeclined:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition can leave s.
func (s ResponseStatus) IsTerminal() bool {
	return s.Valid() && len(responseTransitions[s]) == 0
}

// CheckTransition returns an *InvalidTransitionError unless s -> next is a legal edge.
func (s ResponseStatus) CheckTransition(next ResponseStatus) error {
	return checkTransition("estimate response", responseTransitions, s, next)
}

// Valid reports whether s is a known transaction status.
func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed:
		return true
	}
	return false
}

// CheckTransition returns an *InvalidTransitionError unless s -> next is a legal edge.
func (s TransactionStatus) CheckTransition(next TransactionStatus) error {
	return checkTransition("transaction", transactionTransitions, s, next)
}

// Valid reports whether s is a known escrow status.
func (s EscrowStatus) Valid() bool {
	switch s {
	case EscrowStatusHeld, EscrowStatusReleased, EscrowStatusRefunded:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition can leave s.
func (s EscrowStatus) IsTerminal() bool {
	return s.Valid() && len(escrowTransitions[s]) == 0
}

// CheckTransition returns an *InvalidTransitionError unless s -> next is a legal edge.
func (s EscrowStatus) CheckTransition(next EscrowStatus) error {
	return checkTransition("escrow payment", escrowTransitions, s, next)
}
