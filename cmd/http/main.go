package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"addressregistry/config"
	httpserver "addressregistry/internal/adapters/http/server"
	loggeradapter "addressregistry/internal/adapters/logger"
	"addressregistry/internal/adapters/registry"
	"addressregistry/internal/application/ratelimiter"
	registryservice "addressregistry/internal/application/registry"
)

func main() {
	// .env is optional, real environment variables win
	_ = godotenv.Load()

	cfg := config.Load()

	if err := validateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	logger, err := loggeradapter.NewLogger(cfg.IsDevelopment())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("Starting application",
		zap.String("environment", cfg.App.Environment),
		zap.String("version", "1.0.0"),
	)

	reg, err := registry.NewMainnet()
	if err != nil {
		logger.Fatal("Failed to build address registry", zap.Error(err))
	}
	logger.Info("Address registry loaded", zap.Int("entries", reg.Count()))

	registryService := registryservice.NewService(reg, logger.Named("registry"))
	registryService.CheckIntegrity(context.Background())

	apiRateLimiter := ratelimiter.NewRateLimiter(cfg.Server.RateLimitRPS, time.Second, nil)

	handlerAdapter := httpserver.NewHandlerAdapter(registryService, logger.Named("http"))

	serverConfig := httpserver.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	server := httpserver.NewServer(serverConfig, handlerAdapter, apiRateLimiter, logger.Named("http"))

	logger.Info("Server configured",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
		zap.Int("rate_limit_rps", cfg.Server.RateLimitRPS),
	)

	if err := server.StartWithGracefulShutdown(context.Background()); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}

	logger.Info("Application stopped gracefully")
}

// validateConfig validates the configuration
func validateConfig(cfg *config.Config) error {
	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if cfg.Server.RateLimitRPS <= 0 {
		return fmt.Errorf("invalid rate limit: %d (must be positive)", cfg.Server.RateLimitRPS)
	}

	return nil
}
