// Package worker validates booking requests read from Kafka.
package worker

import (
	"context"
	"errors"

	"github.com/Domenick1991/bookingcheck/internal/kafka"
	"github.com/Domenick1991/bookingcheck/internal/logger"
	"github.com/Domenick1991/bookingcheck/internal/service/booking"
	kafkaGo "github.com/segmentio/kafka-go"
)

// NewRequestHandler returns a Consumer handler that runs every booking request
// through svc. Undecodable messages are logged and skipped so one bad payload
// does not stop the consumer; only context errors end the loop.
func NewRequestHandler(svc booking.ValidatorUseCase, log *logger.Logger) func(context.Context, kafkaGo.Message) error {
	return func(ctx context.Context, msg kafkaGo.Message) error {
		event, err := kafka.DecodeBookingRequest(msg)
		if err != nil {
			log.Error().Err(err).
				Str("topic", msg.Topic).
				Int64("offset", msg.Offset).
				Msg("skipping booking request")
			return nil
		}

		result, err := svc.Validate(ctx, booking.ValidateInput{ID: event.ID, Request: event.BookingRequest()})
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			log.Error().Err(err).Str("validation_id", event.ID).Msg("validate booking request")
			return nil
		}

		log.Debug().
			Str("validation_id", result.ID).
			Bool("accepted", result.Decision.IsAccepted()).
			Msg("booking request processed")
		return nil
	}
}

// RetryingPublisher publishes through Producer.PublishWithRetry.
type RetryingPublisher struct {
	Producer   *kafka.Producer
	MaxRetries int
}

func (p RetryingPublisher) Publish(ctx context.Context, topic, key string, value interface{}) error {
	return p.Producer.PublishWithRetry(ctx, topic, key, value, p.MaxRetries)
}

var _ booking.Producer = RetryingPublisher{}
