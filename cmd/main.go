package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swifttrack-dashboard/internal/apiclient"
	"swifttrack-dashboard/internal/app"
	"swifttrack-dashboard/internal/config"
	"swifttrack-dashboard/internal/domain/record"
	"swifttrack-dashboard/internal/infrastructure/database"
	"swifttrack-dashboard/internal/logger"
	"swifttrack-dashboard/internal/middleware"
	"swifttrack-dashboard/internal/routes"
	"swifttrack-dashboard/internal/session"
	"swifttrack-dashboard/internal/usecase/auth"
	"swifttrack-dashboard/internal/usecase/dashboard"
	"swifttrack-dashboard/internal/view"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	env := cfg.Server.Environment
	if env == "" {
		env = "development"
	}
	if err := logger.Init(env); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("environment", env),
		zap.String("api_base_url", cfg.API.BaseURL),
		zap.String("session_backend", cfg.Session.Backend),
	)

	storage, err := database.OpenSessionBackend(cfg)
	if err != nil {
		logger.Fatal("Failed to open session storage", zap.Error(err))
	}
	defer func() {
		if err := storage.Close(); err != nil {
			logger.Error("Failed to close session storage", zap.Error(err))
		}
	}()

	client := apiclient.New(cfg.API.BaseURL)
	store := session.NewStore(storage)
	shell := app.NewShell(store, auth.NewService(client), func(identity *record.Identity) (*view.View, error) {
		return dashboard.New(identity, client)
	})

	if err := shell.Start(context.Background()); err != nil {
		logger.Error("Failed to restore session", zap.Error(err))
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst)
	defer limiter.Stop()

	router := routes.SetupRoutes(cfg, routes.Dependencies{
		Shell:       shell,
		Store:       store,
		Records:     client,
		Storage:     storage,
		RateLimiter: limiter,

		UpstreamMetrics: client.Metrics,
	})

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("address", addr),
			zap.String("view", shell.ViewName()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", zap.Error(err))
	}

	log.Println("Server exited properly")
}
