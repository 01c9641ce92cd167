package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"nexthire/internal/app"
	"nexthire/internal/config"
	"nexthire/internal/database"
	apphttp "nexthire/internal/http"
	"nexthire/internal/http/handlers"
	"nexthire/internal/http/metrics"
	httpmw "nexthire/internal/http/middleware"
	"nexthire/internal/http/response"
	"nexthire/internal/observability"
	"nexthire/internal/repository/postgres"
	"nexthire/internal/security"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := observability.NewLogger()
	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	redisClient := database.NewRedis(cfg.RedisURL)
	if redisClient != nil {
		defer redisClient.Close()
	}

	userRepo := postgres.NewUserRepository(db)
	refreshRepo := postgres.NewRefreshTokenRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	savedJobRepo := postgres.NewSavedJobRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)

	jwtProvider := security.NewJWTProvider(cfg.JWTSecret)

	authService := app.NewAuthService(userRepo, refreshRepo, jwtProvider, logger, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	userService := app.NewUserService(userRepo)
	jobService := app.NewJobService(jobRepo, logger)
	applicationService := app.NewApplicationService(applicationRepo, jobRepo, notificationRepo, logger)
	savedJobService := app.NewSavedJobService(savedJobRepo, jobRepo)
	notificationService := app.NewNotificationService(notificationRepo)

	rateLimiter := httpmw.NewLimiter(redisClient)
	authHandler := handlers.NewAuthHandler(authService, rateLimiter)
	userHandler := handlers.NewUserHandler(userService)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, rateLimiter)
	savedJobHandler := handlers.NewSavedJobHandler(savedJobService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	middleware := httpmw.NewAuthMiddleware(jwtProvider, userRepo)

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:         authHandler,
		UserHandler:         userHandler,
		JobHandler:          jobHandler,
		ApplicationHandler:  applicationHandler,
		SavedJobHandler:     savedJobHandler,
		NotificationHandler: notificationHandler,
		MetricsHandler:      handlers.NewMetricsHandler(collector),
		AuthMiddleware:      middleware,
		Metrics:             collector,
		RequestTimeout:      cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
