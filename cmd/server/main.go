package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"tripplanner/config"
	_ "tripplanner/docs"
	"tripplanner/internal/adapters/auth"
	"tripplanner/internal/adapters/email"
	"tripplanner/internal/adapters/tripcode"
	delivery "tripplanner/internal/delivery/http"
	"tripplanner/internal/delivery/http/controllers"
	"tripplanner/internal/delivery/http/middleware"
	"tripplanner/internal/domain"
	"tripplanner/internal/repository/postgres"
	"tripplanner/internal/repository/rediscache"
	"tripplanner/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title Trip Planner API
// @version 1.0
// @description Trip planning service: itinerary parsing, checklists, countdowns, and shareable trip codes.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}
	if err := postgres.Migrate(context.Background(), db); err != nil {
		logger.Error("failed to run migrations", "err", err)
		os.Exit(1)
	}

	// Redis is optional. Without it every read goes straight to Postgres.
	var cache domain.TripCache
	if cfg.RedisAddr != "" {
		client, err := rediscache.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Warn("redis unavailable, continuing without cache", "err", err)
		} else {
			defer client.Close()
			cache = rediscache.NewTripCache(client, cfg.CacheTTL)
		}
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mailer.Provider,
		FromAddress: cfg.Mailer.FromAddress,
		FromName:    cfg.Mailer.FromName,
		SES: email.SESConfig{
			Region:             cfg.Mailer.SESRegion,
			AccessKeyID:        cfg.Mailer.SESAccessKeyID,
			SecretAccessKey:    cfg.Mailer.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Mailer.InsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	tokens := auth.NewJWTTokens(cfg.JWTSecret)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	tripRepo := postgres.NewTripRepository(db)
	tripService := services.NewTripService(tripRepo, cache, tripcode.NewGenerator(), tokens, emailService, logger, cfg.TokenExpiry, serviceTimeout)
	checklistService := services.NewChecklistService(tripRepo, cache, serviceTimeout)

	tripController := controllers.NewTripController(logger, tripService)
	authController := controllers.NewAuthController(logger, tripService)
	itineraryController := controllers.NewItineraryController(logger, tripService)
	checklistController := controllers.NewChecklistController(logger, checklistService)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	mux := delivery.NewRouter(logger, tokens, limiter, tripController, authController, itineraryController, checklistController)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
