package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/loanscope/loanscope/internal/application/usecase"
	"github.com/loanscope/loanscope/internal/infrastructure/adapter"
	"github.com/loanscope/loanscope/internal/infrastructure/config"
	"github.com/loanscope/loanscope/internal/infrastructure/messaging"
	pgRepo "github.com/loanscope/loanscope/internal/infrastructure/persistence/postgres"
	"github.com/loanscope/loanscope/pkg/kafka"
	"github.com/loanscope/loanscope/pkg/observability"
	"github.com/loanscope/loanscope/pkg/postgres"
)

// ratetrackerd polls rate quotes for the whole catalog on a cron schedule
// and appends them to the rate history.
func main() {
	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	logger.Info("starting rate tracker", "schedule", cfg.Tracker.Schedule)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, postgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	catalog := pgRepo.NewProductRepo(pool)
	rates := pgRepo.NewRateRepo(pool)

	producer := kafka.NewProducer(kafka.Config{Brokers: cfg.Kafka.Brokers})
	defer producer.Close()
	publisher := messaging.NewKafkaEventPublisher(producer, cfg.Kafka.Topic, logger)

	feed := adapter.NewMockRateFeed(adapter.MockRateFeedConfig{Seed: cfg.Tracker.FeedSeed})
	refreshUC := usecase.NewRefreshRatesUseCase(catalog, feed, rates, publisher, logger)

	refresh := func() {
		runCtx, runCancel := context.WithTimeout(ctx, 5*time.Minute)
		defer runCancel()

		recorded, err := refreshUC.Execute(runCtx)
		if err != nil {
			logger.Error("rate refresh failed", "error", err)
			return
		}
		logger.Info("rate refresh completed", "observations", recorded)
	}

	// Run once at startup so a fresh deployment has rate history.
	refresh()

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Tracker.Schedule, refresh); err != nil {
		logger.Error("invalid tracker schedule", "schedule", cfg.Tracker.Schedule, "error", err)
		os.Exit(1)
	}
	scheduler.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig.String())

	stopCtx := scheduler.Stop()
	<-stopCtx.Done()
	logger.Info("rate tracker stopped")
}
