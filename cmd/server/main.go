package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/loanscope/loanscope/internal/application/usecase"
	"github.com/loanscope/loanscope/internal/domain/port"
	"github.com/loanscope/loanscope/internal/domain/service"
	"github.com/loanscope/loanscope/internal/infrastructure/adapter"
	"github.com/loanscope/loanscope/internal/infrastructure/cache"
	"github.com/loanscope/loanscope/internal/infrastructure/config"
	"github.com/loanscope/loanscope/internal/infrastructure/messaging"
	pgRepo "github.com/loanscope/loanscope/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/loanscope/loanscope/internal/presentation/grpc"
	"github.com/loanscope/loanscope/internal/presentation/rest"
	"github.com/loanscope/loanscope/pkg/kafka"
	"github.com/loanscope/loanscope/pkg/observability"
	"github.com/loanscope/loanscope/pkg/postgres"
)

func main() {
	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	logger.Info("starting loanscope server",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
	)

	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}

	// --- Database -----------------------------------------------------------
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgCfg := postgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := postgres.NewPool(ctx, pgCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.RunMigrations(pgCfg.DSN(), "migrations"); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// --- Infrastructure adapters -------------------------------------------
	institutionRepo := pgRepo.NewInstitutionRepo(pool)
	catalog := pgRepo.NewProductRepo(pool)

	var rates port.RateHistoryRepository = pgRepo.NewRateRepo(pool)
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		ttl := time.Duration(cfg.Redis.TTLSeconds) * time.Second
		rates = cache.NewRateCache(rates, client, ttl, logger)
		logger.Info("rate cache enabled", "addr", cfg.Redis.Addr, "ttl", ttl)
	}

	producer := kafka.NewProducer(kafka.Config{Brokers: cfg.Kafka.Brokers})
	defer producer.Close()
	publisher := messaging.NewKafkaEventPublisher(producer, cfg.Kafka.Topic, logger)

	ratingSource := adapter.NewInstitutionRatingSource(institutionRepo)

	// --- Domain services ----------------------------------------------------
	metricCalc := service.NewMetricCalculator(ratingSource)
	ranker := service.NewRankingEngine()
	insights := service.NewInsightGenerator()

	// --- Use cases ----------------------------------------------------------
	analyzeUC := usecase.NewAnalyzeLoanOptionsUseCase(catalog, rates, metricCalc, ranker, insights, publisher, logger)
	getProductUC := usecase.NewGetProductUseCase(catalog, rates)
	listProductsUC := usecase.NewListProductsUseCase(catalog)
	recordRateUC := usecase.NewRecordRateObservationUseCase(catalog, rates, publisher)

	// --- gRPC server --------------------------------------------------------
	handler := grpcPresentation.NewAnalysisHandler(analyzeUC, getProductUC, listProductsUC, recordRateUC)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			logger.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- HTTP health and metrics server -------------------------------------
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, map[string]rest.ReadinessCheck{
		"database": func(ctx context.Context) error {
			return postgres.HealthCheck(ctx, pool)
		},
	})
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: mux,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown --------------------------------------------------
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig.String())

	grpcServer.GracefulStop()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("loanscope server stopped")
}
