package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	maxTextLength          = 2000
	maxPaymentMethodLength = 64
)

// ValidateAmount checks if amount is valid (positive)
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("invalid amount: must be greater than 0")
	}

	return nil
}

// ValidateBudget checks a budget range in minor units. An absent maximum means open-ended.
func ValidateBudget(minCents int64, maxCents *int64) error {
	if minCents < 0 {
		return fmt.Errorf("invalid budget: minimum cannot be negative")
	}
	if maxCents != nil && *maxCents < minCents {
		return fmt.Errorf("invalid budget: maximum (%d) is below minimum (%d)", *maxCents, minCents)
	}

	return nil
}

// ValidateText checks a required free-text field
func ValidateText(field, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fmt.Errorf("%s is required", field)
	}
	if len(trimmed) > maxTextLength {
		return fmt.Errorf("%s must be at most %d characters", field, maxTextLength)
	}

	return nil
}

// ValidatePaymentMethod checks the payment method label recorded on the ledger
func ValidatePaymentMethod(method string) error {
	method = strings.TrimSpace(method)
	if method == "" {
		return fmt.Errorf("payment method is required")
	}
	if len(method) > maxPaymentMethodLength {
		return fmt.Errorf("payment method must be at most %d characters", maxPaymentMethodLength)
	}

	return nil
}

// ValidateID checks that a required identifier is set
func ValidateID(field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%s is required", field)
	}

	return nil
}
