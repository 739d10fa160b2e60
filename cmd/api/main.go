package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-gladiator-backend/config"
	_ "go-gladiator-backend/docs" // Important for Swagger
	v1 "go-gladiator-backend/internal/delivery/http/v1"
	"go-gladiator-backend/internal/repository/postgres"
	"go-gladiator-backend/internal/usecase"
	"go-gladiator-backend/pkg/auth"
	"go-gladiator-backend/pkg/database"
	"go-gladiator-backend/pkg/email"
	"go-gladiator-backend/pkg/logger"
	"go-gladiator-backend/pkg/redis"
	"go-gladiator-backend/pkg/storage"
	"go-gladiator-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Gladiator Jobs API
// @version         1.0
// @description     Backend for the Gladiator Jobs freelance marketplace.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting gladiator backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting). Optional: the limiter falls back to an
	// in-memory store when Redis is absent.
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
		}
	}

	// 5. Setup Blob Storage (avatars + portfolio images)
	uploader, err := storage.NewS3Storage(context.Background(), storage.ClientConfig{
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		Endpoint:        cfg.S3Endpoint,
		PublicBaseURL:   cfg.S3PublicBaseURL,
	})
	if err != nil {
		logger.Log.Error("Failed to initialize blob storage", "error", err)
		os.Exit(1)
	}
	if err := uploader.TestConnection(context.Background()); err != nil {
		logger.Log.Warn("Blob storage connectivity check failed - uploads may not work", "error", err)
	}

	// 6. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	professionalRepo := postgres.NewProfessionalRepository(dbPool)
	portfolioRepo := postgres.NewPortfolioRepository(dbPool)
	reviewRepo := postgres.NewReviewRepository(dbPool)
	ratingRepo := postgres.NewRatingRepository(dbPool)
	messageRepo := postgres.NewMessageRepository(dbPool)
	transactionRepo := postgres.NewTransactionRepository(dbPool)
	feedbackRepo := postgres.NewFeedbackRepository(dbPool)

	// 7. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - feedback notifications disabled")
	}

	// 8. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	directoryUC := usecase.NewDirectoryUsecase(professionalRepo, portfolioRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo, uploader, validate)
	portfolioUC := usecase.NewPortfolioUsecase(portfolioRepo, uploader, validate)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, ratingRepo)
	paymentUC := usecase.NewPaymentUsecase(transactionRepo, professionalRepo)
	messageUC := usecase.NewMessageUsecase(messageRepo, profileRepo)
	feedbackUC := usecase.NewFeedbackUsecase(feedbackRepo, emailService)

	// 9. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		DirectoryUC:  directoryUC,
		ProfileUC:    profileUC,
		PortfolioUC:  portfolioUC,
		ReviewUC:     reviewUC,
		PaymentUC:    paymentUC,
		MessageUC:    messageUC,
		FeedbackUC:   feedbackUC,
		ProfileRepo:  profileRepo,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
