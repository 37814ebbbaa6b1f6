package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/bookingcheck/config"
	"github.com/Domenick1991/bookingcheck/internal/cache"
	"github.com/Domenick1991/bookingcheck/internal/kafka"
	"github.com/Domenick1991/bookingcheck/internal/logger"
	"github.com/Domenick1991/bookingcheck/internal/service/booking"
	"github.com/Domenick1991/bookingcheck/internal/validation"
	"github.com/Domenick1991/bookingcheck/internal/worker"
)

const publishRetries = 3

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.NewLogger("worker", "info").Fatal().Err(err).Msg("load config")
	}
	log := logger.NewLogger("worker", cfg.Log.Level)

	if !cfg.Kafka.Enabled() {
		log.Fatal().Msg("kafka brokers are not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Validation.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("validation timezone")
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers, log)
	defer producer.Close()

	opts := []booking.BookingServiceOption{
		booking.WithLogger(log),
		booking.WithDecisionEvents(worker.RetryingPublisher{Producer: producer, MaxRetries: publishRetries}, cfg.Kafka.DecisionsTopic),
	}
	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Validation.CacheTTL())
		defer redisCache.Close()
		opts = append(opts, booking.WithCache(redisCache))
	}
	bookingService := booking.NewBookingService(validation.New(validation.WithLocation(loc)), opts...)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.RequestsTopic)
	defer consumer.Close()

	log.Info().
		Str("requests_topic", cfg.Kafka.RequestsTopic).
		Str("decisions_topic", cfg.Kafka.DecisionsTopic).
		Msg("worker started")

	err = consumer.Consume(ctx, worker.NewRequestHandler(bookingService, log))
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("consumer stopped")
		return
	}
	log.Info().Msg("worker stopped")
}
