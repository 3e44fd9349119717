package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// TaskDeliver is the asynq task type carrying one Envelope
const TaskDeliver = "notification:deliver"

// Enqueuer is the subset of *asynq.Client the notifier needs
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqNotifier queues one delivery task per recipient on a Redis-backed asynq queue
type AsynqNotifier struct {
	client   Enqueuer
	now      func() time.Time
	queue    string
	maxRetry int
}

// NewAsynqNotifier creates a notifier that enqueues onto queue
func NewAsynqNotifier(client Enqueuer, queue string, maxRetry int) *AsynqNotifier {
	return &AsynqNotifier{
		client:   client,
		now:      time.Now,
		queue:    queue,
		maxRetry: maxRetry,
	}
}

// Notify enqueues every envelope and reports all enqueue failures together
func (n *AsynqNotifier) Notify(ctx context.Context, recipients []uuid.UUID, event Event, payload any) error {
	envs, err := buildEnvelopes(recipients, event, payload, n.now().UTC())
	if err != nil {
		return err
	}

	var errs []error
	for _, env := range envs {
		data, err := json.Marshal(env)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to encode %s envelope: %w", event, err))
			continue
		}

		task := asynq.NewTask(TaskDeliver, data)
		if _, err := n.client.EnqueueContext(ctx, task, asynq.Queue(n.queue), asynq.MaxRetry(n.maxRetry)); err != nil {
			errs = append(errs, fmt.Errorf("failed to enqueue %s for %s: %w", event, env.RecipientID, err))
		}
	}

	return errors.Join(errs...)
}

// Processor consumes delivery tasks and hands them to a Sink
type Processor struct {
	sink Sink
}

// NewProcessor creates a Processor delivering into sink
func NewProcessor(sink Sink) *Processor {
	return &Processor{sink: sink}
}

// Register binds the processor to its task type on mux
func (p *Processor) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TaskDeliver, p.HandleDeliver)
}

// HandleDeliver decodes the envelope and delivers it. Malformed payloads are
// not retried.
func (p *Processor) HandleDeliver(ctx context.Context, t *asynq.Task) error {
	var env Envelope
	if err := json.Unmarshal(t.Payload(), &env); err != nil {
		return fmt.Errorf("failed to decode notification: %v: %w", err, asynq.SkipRetry)
	}
	if env.RecipientID == uuid.Nil || env.Event == "" {
		return fmt.Errorf("notification missing recipient or event: %w", asynq.SkipRetry)
	}

	return p.sink.Deliver(ctx, env)
}
