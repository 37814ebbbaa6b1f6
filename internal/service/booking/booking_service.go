package booking

import (
	"context"
	"time"

	"github.com/Domenick1991/bookingcheck/internal/domain"
	"github.com/Domenick1991/bookingcheck/internal/kafka"
	"github.com/Domenick1991/bookingcheck/internal/logger"
	"github.com/Domenick1991/bookingcheck/internal/validation"
	"github.com/google/uuid"
)

type ValidatorUseCase interface {
	Validate(ctx context.Context, input ValidateInput) (*Result, error)
}

type Validator interface {
	Today() validation.Date
	ValidateOn(req domain.BookingRequest, today validation.Date) domain.Decision
}

type Cache interface {
	GetDecision(ctx context.Context, req domain.BookingRequest, referenceDate string) (domain.Decision, bool, error)
	SetDecision(ctx context.Context, req domain.BookingRequest, referenceDate string, d domain.Decision) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type ValidateInput struct {
	// ID correlates the decision with the caller's request. Generated when empty.
	ID      string
	Request domain.BookingRequest
}

type Result struct {
	ID            string
	Decision      domain.Decision
	ReferenceDate validation.Date
	ValidatedAt   time.Time
	Cached        bool
}

type BookingService struct {
	validator      Validator
	cache          Cache
	producer       Producer
	decisionsTopic string
	logger         *logger.Logger
	now            func() time.Time
}

type BookingServiceOption func(*BookingService)

func WithCache(cache Cache) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
	}
}

// WithDecisionEvents publishes every decision to topic.
func WithDecisionEvents(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.decisionsTopic = topic
	}
}

func WithLogger(l *logger.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.logger = l
	}
}

func NewBookingService(validator Validator, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		validator: validator,
		logger:    logger.Nop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Validate runs the booking rules against input.Request. A rejected booking is
// a normal result; the error is only set when ctx is already done.
func (s *BookingService) Validate(ctx context.Context, input ValidateInput) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}
	log := s.logger.With().Str("validation_id", id).Logger()

	today := s.validator.Today()
	refKey := today.Time().Format(time.DateOnly)

	result := &Result{
		ID:            id,
		ReferenceDate: today,
		ValidatedAt:   s.now(),
	}

	if s.cache != nil {
		cached, ok, err := s.cache.GetDecision(ctx, input.Request, refKey)
		if err != nil {
			log.Warn().Err(err).Msg("decision cache lookup failed")
		} else if ok {
			result.Decision = cached
			result.Cached = true
		}
	}

	if !result.Cached {
		result.Decision = s.validator.ValidateOn(input.Request, today)
		if s.cache != nil {
			if err := s.cache.SetDecision(ctx, input.Request, refKey, result.Decision); err != nil {
				log.Warn().Err(err).Msg("decision cache store failed")
			}
		}
	}

	if result.Decision.IsAccepted() {
		log.Info().Bool("cached", result.Cached).Msg("Booking validated successfully")
	} else {
		log.Info().
			Bool("cached", result.Cached).
			Str("code", string(result.Decision.Code())).
			Str("reason", result.Decision.Reason()).
			Msg("booking rejected")
	}

	if err := s.publish(ctx, input.Request, result); err != nil {
		log.Warn().Err(err).Str("topic", s.decisionsTopic).Msg("failed to publish decision")
	}
	return result, nil
}

func (s *BookingService) publish(ctx context.Context, req domain.BookingRequest, result *Result) error {
	if s.producer == nil || s.decisionsTopic == "" {
		return nil
	}
	event := kafka.DecisionEvent{
		ID:            result.ID,
		Accepted:      result.Decision.IsAccepted(),
		Code:          string(result.Decision.Code()),
		Reason:        result.Decision.Reason(),
		ReferenceDate: result.ReferenceDate.String(),
		ValidatedAt:   result.ValidatedAt,
		Request:       kafka.NewBookingRequestEvent(result.ID, req),
	}
	return s.producer.Publish(ctx, s.decisionsTopic, result.ID, event)
}

var _ ValidatorUseCase = (*BookingService)(nil)
