package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"github.com/courtside/club-backend/internal/app"
	"github.com/courtside/club-backend/internal/config"
	"github.com/courtside/club-backend/internal/db"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	locale, err := config.LoadLocale(cfg.LocalePath)
	if err != nil {
		log.Fatalf("failed to load locale: %v", err)
	}

	// Connect DB
	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer pool.Close()

	// Redis is optional; without it report caching is disabled.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("redis unavailable, continuing without cache: %v", err)
			redisClient = nil
		}
	}

	container, err := app.NewContainer(app.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		DBPool:       pool,
		RedisClient:  redisClient,
		Locale:       locale,
		JWTSecret:    cfg.JWTSecret,
		JWTTTL:       cfg.JWTAccessTokenTTL,
		BcryptCost:   cfg.BcryptCost,
		MediaDir:     cfg.MediaDir,
		PendingTTL:   cfg.PendingTTL,
	})
	if err != nil {
		log.Fatalf("failed to init application: %v", err)
	}

	// Background job: cancel pending reservations that outlived their hold.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.ExpiryCronSpec, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		n, err := container.ReservationService.ExpirePending(jobCtx)
		if err != nil {
			log.Printf("pending reservation expiry failed: %v", err)
			return
		}
		if n > 0 {
			log.Printf("expired %d pending reservations", n)
		}
	}); err != nil {
		log.Fatalf("failed to schedule expiry job: %v", err)
	}
	scheduler.Start()

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	// Run server in separate goroutine
	go func() {
		log.Printf("server running on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	log.Println("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Stop cron first so no new expiry runs start mid-shutdown.
	<-scheduler.Stop().Done()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}

	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Println("server exited gracefully")
}
