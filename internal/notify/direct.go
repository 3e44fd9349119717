package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DirectNotifier delivers synchronously into a Sink. It is used when no queue
// is configured.
type DirectNotifier struct {
	sink Sink
	now  func() time.Time
}

// NewDirectNotifier creates a notifier that writes straight to sink
func NewDirectNotifier(sink Sink) *DirectNotifier {
	return &DirectNotifier{sink: sink, now: time.Now}
}

// Notify delivers to each recipient, continuing past individual failures
func (n *DirectNotifier) Notify(ctx context.Context, recipients []uuid.UUID, event Event, payload any) error {
	envs, err := buildEnvelopes(recipients, event, payload, n.now().UTC())
	if err != nil {
		return err
	}

	var errs []error
	for _, env := range envs {
		if err := n.sink.Deliver(ctx, env); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogSink records deliveries in the structured log. Outbound channels such as
// email or push plug in as other Sink implementations.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a sink writing to logger
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Deliver logs the envelope
func (s *LogSink) Deliver(ctx context.Context, env Envelope) error {
	s.logger.InfoContext(ctx, "notification delivered",
		"event", env.Event,
		"recipient_id", env.RecipientID,
		"occurred_at", env.OccurredAt,
		"payload", string(env.Payload),
	)
	return nil
}

var (
	_ Notifier = (*AsynqNotifier)(nil)
	_ Notifier = (*DirectNotifier)(nil)
	_ Sink     = (*LogSink)(nil)
)
