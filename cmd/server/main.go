// Package main is the entry point for the tenant notification relay.
// It loads configuration, wires the relay services, sets up the HTTP server
// and starts it.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"relay/internal/config"
	"relay/internal/repositories"
	"relay/internal/repositories/cache"
	"relay/internal/routes"
	"relay/internal/services/notification"
	"relay/internal/services/payment"
	qr "relay/internal/services/qr_code"
	"relay/internal/services/webhook"
)

func main() {
	// Load environment variables
	config.LoadEnv()
	cfg := config.Load()

	if cfg.IsDevelopment() {
		log.Printf("Running in development mode, error details are returned to clients")
	}

	deps := routes.Dependencies{AccessLog: true}

	opts := notification.Options{Mode: cfg.Mode}
	if cfg.Mode.Forwards() {
		client := webhook.NewClient(cfg.WebhookURL, cfg.WebhookTimeout)
		opts.Forwarder = client
		log.Printf("Forwarding notifications to %s", client.URL())
	}
	if cfg.Mode == config.ModeEnriched {
		qrRepo, err := repositories.NewQRCodeRepository(cfg.QRDir, cfg.QRMaxFiles)
		if err != nil {
			log.Fatalf("Failed to open QR code store: %v", err)
		}
		opts.Payments = payment.NewService()
		opts.QR = qr.NewService(qrRepo, cfg.QRPublicPath, qr.DefaultImageOptions)
		deps.QRDir = qrRepo.Dir()
		log.Printf("QR codes stored in %s (max %d files)", qrRepo.Dir(), cfg.QRMaxFiles)
	}

	svc, err := notification.NewService(opts)
	if err != nil {
		log.Fatalf("Failed to create notification service: %v", err)
	}
	deps.Notifications = svc

	var storage *cache.RedisStorage
	if cfg.RateLimitMax > 0 && cfg.Redis.Enabled() {
		storage = cache.NewRedisStorage(cache.NewRedisClient(cfg.Redis), cache.DefaultKeyPrefix)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := storage.HealthCheck(ctx); err != nil {
			log.Printf("⚠️ Redis unavailable, rate limiting in memory: %v", err)
			storage.Close()
			storage = nil
		} else {
			deps.LimiterStorage = storage
			log.Println("✅ Rate limiter backed by Redis")
		}
		cancel()
	}

	app := routes.NewApp(cfg, deps)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("⚠️ Shutdown error: %v", err)
		}
	}()

	log.Printf("Server running on port %s (mode %s)", cfg.Port, cfg.Mode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}

	if storage != nil {
		if err := storage.Close(); err != nil {
			log.Printf("⚠️ Failed to close Redis connection: %v", err)
		}
	}
}
