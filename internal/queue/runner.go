package queue

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kylewhite0225/cloud-ml-license-reader/internal/metrics"
)

// ProcessFunc handles one message body. A non-empty result is published
// to the stage's output queue before the message is acknowledged.
type ProcessFunc func(ctx context.Context, body string) (string, error)

type terminalError struct {
	err error
}

func (e *terminalError) Error() string { return e.err.Error() }

func (e *terminalError) Unwrap() error { return e.err }

// Terminal marks an error as fatal for the message that produced it:
// the runner acknowledges the message instead of leaving it for
// redelivery, so a malformed message cannot recycle forever.
func Terminal(err error) error {
	return &terminalError{err: err}
}

func IsTerminal(err error) bool {
	var t *terminalError
	return errors.As(err, &t)
}

// StageRunner is the shared receive-process-acknowledge loop. Messages
// in a batch run sequentially in receive order; shutdown is observed
// between messages, never mid-message. The runner adds no retry of its
// own beyond what the queue's visibility timeout provides.
type StageRunner struct {
	stage     string
	consumer  Consumer
	publisher Publisher // nil for the final stage
	process   ProcessFunc
	interval  time.Duration
	batchSize int32
	log       zerolog.Logger
}

func NewStageRunner(
	stage string,
	consumer Consumer,
	publisher Publisher,
	process ProcessFunc,
	interval time.Duration,
	batchSize int32,
	log zerolog.Logger,
) *StageRunner {
	// SQS rejects batches outside 1..10.
	if batchSize <= 0 || batchSize > 10 {
		batchSize = 10
	}
	return &StageRunner{
		stage:     stage,
		consumer:  consumer,
		publisher: publisher,
		process:   process,
		interval:  interval,
		batchSize: batchSize,
		log:       log,
	}
}

// Run polls the input queue until ctx is cancelled.
func (r *StageRunner) Run(ctx context.Context) {
	r.log.Info().Str("stage", r.stage).Msg("stage runner started")
	for {
		select {
		case <-ctx.Done():
			r.log.Info().Str("stage", r.stage).Msg("stage runner stopped")
			return
		default:
		}

		messages, err := r.consumer.Receive(ctx, r.batchSize)
		if err != nil {
			// Includes failure to reach the queue at all; try again
			// on the next tick.
			r.log.Error().Err(err).Str("stage", r.stage).Msg("failed to receive messages")
			metrics.ReceiveFailures.WithLabelValues(r.stage).Inc()
			r.wait(ctx)
			continue
		}

		for _, msg := range messages {
			select {
			case <-ctx.Done():
				r.log.Info().Str("stage", r.stage).Msg("stage runner stopped")
				return
			default:
			}
			r.handle(ctx, msg)
		}

		if len(messages) == 0 {
			r.wait(ctx)
		}
	}
}

func (r *StageRunner) handle(ctx context.Context, msg Message) {
	processID := uuid.NewString()
	log := r.log.With().
		Str("stage", r.stage).
		Str("message_id", msg.ID).
		Str("process_id", processID).
		Logger()

	start := time.Now()
	out, err := r.process(ctx, msg.Body)
	metrics.ProcessingDuration.WithLabelValues(r.stage).Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		if out != "" && r.publisher != nil {
			if pubErr := r.publisher.Publish(ctx, out); pubErr != nil {
				// Leave the message leased; it comes back after the
				// visibility timeout and the stage reprocesses it.
				log.Error().Err(pubErr).Msg("failed to publish derived message")
				metrics.MessagesProcessed.WithLabelValues(r.stage, "retry").Inc()
				return
			}
		}
		if delErr := r.consumer.Delete(ctx, msg.ReceiptHandle); delErr != nil {
			log.Error().Err(delErr).Msg("failed to delete message")
			metrics.MessagesProcessed.WithLabelValues(r.stage, "retry").Inc()
			return
		}
		log.Info().Dur("took", time.Since(start)).Msg("message processed")
		metrics.MessagesProcessed.WithLabelValues(r.stage, "ok").Inc()

	case IsTerminal(err):
		log.Error().Err(err).Msg("message failed terminally, dropping")
		if delErr := r.consumer.Delete(ctx, msg.ReceiptHandle); delErr != nil {
			log.Error().Err(delErr).Msg("failed to delete poisoned message")
		}
		metrics.MessagesProcessed.WithLabelValues(r.stage, "terminal").Inc()

	default:
		log.Error().Err(err).Msg("message processing failed, leaving for redelivery")
		metrics.MessagesProcessed.WithLabelValues(r.stage, "retry").Inc()
	}
}

func (r *StageRunner) wait(ctx context.Context) {
	select {
	case <-time.After(r.interval):
	case <-ctx.Done():
	}
}
