package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lendstack/loan-servicing/internal/application/usecase"
	"github.com/lendstack/loan-servicing/internal/infrastructure/config"
	"github.com/lendstack/loan-servicing/internal/infrastructure/kafka"
	pgRepo "github.com/lendstack/loan-servicing/internal/infrastructure/postgres"
	grpcPresentation "github.com/lendstack/loan-servicing/internal/presentation/grpc"
	"github.com/lendstack/loan-servicing/internal/presentation/rest"
	pkgkafka "github.com/lendstack/loan-servicing/pkg/kafka"
	"github.com/lendstack/loan-servicing/pkg/observability"
	pkgpostgres "github.com/lendstack/loan-servicing/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.ServiceName,
	})

	logger.Info("starting loan-servicing",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Prometheus metrics.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(dbCfg.DSN(), "file://internal/infrastructure/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	loanRepo := pgRepo.NewLoanRepo(pool)
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := kafka.NewKafkaEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	// Wire use cases.
	createLoanUC := usecase.NewCreateLoanUseCase(loanRepo, publisher)
	getLoanUC := usecase.NewGetLoanUseCase(loanRepo)
	listLoansUC := usecase.NewListLoansUseCase(loanRepo)
	updateLoanUC := usecase.NewUpdateLoanUseCase(loanRepo)
	deleteLoanUC := usecase.NewDeleteLoanUseCase(loanRepo)
	closeLoanUC := usecase.NewCloseLoanUseCase(loanRepo, publisher)
	updateRateUC := usecase.NewUpdateInterestRateUseCase(loanRepo, publisher)
	effectiveRateUC := usecase.NewGetEffectiveRateUseCase(loanRepo)
	makePaymentUC := usecase.NewMakePaymentUseCase(loanRepo, publisher)
	reversePaymentUC := usecase.NewReversePaymentUseCase(loanRepo, publisher)

	// gRPC server.
	handler := grpcPresentation.NewLoanHandler(
		createLoanUC, getLoanUC, listLoansUC, updateLoanUC, deleteLoanUC,
		closeLoanUC, updateRateUC, effectiveRateUC, makePaymentUC, reversePaymentUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, map[string]rest.ReadyCheck{
		"postgres": func(ctx context.Context) error {
			return pkgpostgres.HealthCheck(ctx, pool)
		},
	})
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("loan-servicing stopped")
}
