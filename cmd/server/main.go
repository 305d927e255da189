package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	grpclib "google.golang.org/grpc"

	grpcadapter "github.com/simaogato/kirimuang-backend/internal/adapter/grpc"
	"github.com/simaogato/kirimuang-backend/internal/adapter/http/handler"
	"github.com/simaogato/kirimuang-backend/internal/app"
	"github.com/simaogato/kirimuang-backend/internal/config"
	"github.com/simaogato/kirimuang-backend/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// 1. Load configuration and set up logging
	cfg, err := config.Load()
	if err != nil {
		l := logging.New("info", true)
		l.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger := logging.New(cfg.LogLevel, cfg.LogPretty)

	// 2. Build stores, channels and services
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize application")
	}
	defer application.Close()

	// 3. Start the exchange rate refresher
	go func() {
		if err := application.Rates.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("exchange rate refresher stopped")
		}
	}()

	// 4. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logger),
			grpcadapter.AuthInterceptor(cfg.APIToken),
			grpcadapter.NotificationScope(application.Center),
		),
	)

	grpcAdapter := grpcadapter.NewServer(
		application.Wizards,
		application.Rates,
		application.History,
		application.Dashboard,
		application.Preferences,
		application.Profile,
	)
	grpcadapter.RegisterRemittanceServiceServer(grpcServer, grpcAdapter)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.GRPCAddr).Msg("failed to listen")
	}

	go func() {
		logger.Info().Str("addr", cfg.GRPCAddr).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatal().Err(err).Msg("failed to serve gRPC server")
		}
	}()

	// 5. Start HTTP server (health, metrics, rates, receipts)
	httpServer := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: handler.NewRouter(
			handler.NewRateHandler(application.Rates, application.Dashboard, logger),
			handler.NewHistoryHandler(application.History, application.Preferences, logger),
			logger,
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to serve HTTP server")
		}
	}()

	// Graceful shutdown
	waitForShutdown(logger, grpcServer, httpServer)
	stop()
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the servers
func waitForShutdown(logger zerolog.Logger, grpcServer *grpclib.Server, httpServer *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info().Str("signal", sig.String()).Msg("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	grpcServer.GracefulStop()
	logger.Info().Msg("servers stopped")
}
