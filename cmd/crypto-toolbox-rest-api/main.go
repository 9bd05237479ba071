// cmd/crypto-toolbox-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/crypto-toolbox/internal/api/rest/v1"
	"github.com/MGTheTrain/crypto-toolbox/internal/app"
	"github.com/MGTheTrain/crypto-toolbox/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/config"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/metrics"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/ratelimit"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}
	defer func() {
		_ = logger.Close(log)
	}()

	// Initialize application dependencies
	services, err := initializeApplicationServices(log)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, services, log)
}

// appServices holds all initialized application services
type appServices struct {
	aes    app.AESService
	base64 app.Base64Service
	md5    app.MD5Service
}

// initializeApplicationServices sets up the processors and the services built on them
func initializeApplicationServices(log logger.Logger) (*appServices, error) {
	aesProcessor, err := cryptography.NewAESProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	base64Processor, err := cryptography.NewBase64Processor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create Base64 processor: %w", err)
	}

	md5Processor, err := cryptography.NewMD5Processor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create MD5 processor: %w", err)
	}
	log.Info("Cryptographic processors initialized successfully")

	aesService, err := app.NewAESService(aesProcessor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES service: %w", err)
	}

	base64Service, err := app.NewBase64Service(base64Processor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create Base64 service: %w", err)
	}

	md5Service, err := app.NewMD5Service(md5Processor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create MD5 service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		aes:    aesService,
		base64: base64Service,
		md5:    md5Service,
	}, nil
}

// newRouter assembles middleware, the metrics endpoint and the v1 routes
func newRouter(cfg *config.RestConfig, services *appServices, limiter *ratelimit.Limiter, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(v1.RequestID(), v1.AccessLog(log), gin.Recovery())

	// Configure CORS
	allowOrigins := cfg.CORS.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:  allowOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", v1.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Type", v1.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	if cfg.Metrics.Enabled {
		metrics.Enable()
		r.Use(metrics.GinMiddleware())
		r.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	} else {
		metrics.Disable()
	}

	r.Use(ratelimit.GinMiddleware(limiter, func(*gin.Context) {
		metrics.RecordRateLimited()
	}))

	v1.SetupRoutes(r, services.aes, services.base64, services.md5, cfg.MaxUploadBytes)
	return r
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	gin.SetMode(gin.ReleaseMode)

	limiter := ratelimit.New(&ratelimit.Config{
		Enabled:           cfg.RateLimit.Enabled,
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		Burst:             cfg.RateLimit.Burst,
	})
	defer limiter.Stop()

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, services, limiter, log),
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
