package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/bookingcheck/config"
	"github.com/Domenick1991/bookingcheck/internal/bootstrap"
	"github.com/Domenick1991/bookingcheck/internal/cache"
	"github.com/Domenick1991/bookingcheck/internal/kafka"
	"github.com/Domenick1991/bookingcheck/internal/logger"
	"github.com/Domenick1991/bookingcheck/internal/service/booking"
	"github.com/Domenick1991/bookingcheck/internal/validation"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.NewLogger("app", "info").Fatal().Err(err).Msg("load config")
	}
	log := logger.NewLogger("app", cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Validation.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("validation timezone")
	}
	validator := validation.New(validation.WithLocation(loc))

	opts := []booking.BookingServiceOption{booking.WithLogger(log)}

	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Validation.CacheTTL())
		defer redisCache.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, decisions will not be cached until it recovers")
		}
		cancel()
		opts = append(opts, booking.WithCache(redisCache))
	}

	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, log)
		defer producer.Close()

		checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := producer.CheckConnection(checkCtx); err != nil {
			log.Warn().Err(err).Msg("kafka unavailable")
		}
		cancel()
		opts = append(opts, booking.WithDecisionEvents(producer, cfg.Kafka.DecisionsTopic))
	}

	bookingService := booking.NewBookingService(validator, opts...)

	if err := bootstrap.Run(ctx, cfg, bookingService, log); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
