package service

import (
	"context"
	"log/slog"

	"github.com/benx421/homebid/internal/models"
	"github.com/benx421/homebid/internal/notify"
	"github.com/google/uuid"
)

// publish hands a committed change to the notifier. Failures are logged and
// dropped so that a notification outage cannot fail a committed operation.
func publish(ctx context.Context, notifier notify.Notifier, logger *slog.Logger, recipients []uuid.UUID, event notify.Event, payload any) {
	if notifier == nil || len(recipients) == 0 {
		return
	}
	if err := notifier.Notify(ctx, recipients, event, payload); err != nil {
		logger.WarnContext(ctx, "notification failed",
			"event", event,
			"recipients", len(recipients),
			"error", err,
		)
	}
}

func providerIDs(responses []models.EstimateResponse) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(responses))
	for _, r := range responses {
		ids = append(ids, r.ProviderID)
	}
	return ids
}
