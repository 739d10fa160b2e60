package v1

import (
	"net/http"
	"time"

	"go-gladiator-backend/config"
	"go-gladiator-backend/internal/delivery/http/middleware"
	"go-gladiator-backend/internal/delivery/http/response"
	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	DirectoryUC  domain.DirectoryUsecase
	ProfileUC    domain.ProfileUsecase
	PortfolioUC  domain.PortfolioUsecase
	ReviewUC     domain.ReviewUsecase
	PaymentUC    domain.PaymentUsecase
	MessageUC    domain.MessageUsecase
	FeedbackUC   domain.FeedbackUsecase
	ProfileRepo  domain.ProfileRepository
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Usecases read identity through context.Context; without the fallback gin
	// never consults the request context for the typed keys set at auth time.
	r.ContextWithFallback = true

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitGlobalThreshold,
		Window:    window,
		KeyPrefix: "rl:global:",
	}))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes: the directory is browsable without an account
	NewProfessionalHandler(v1, deps.DirectoryUC, deps.ReviewUC, deps.PortfolioUC)

	// Feedback accepts anonymous submissions but attaches identity when present
	feedback := v1.Group("")
	feedback.Use(middleware.OptionalAuth(deps.JWKSProvider, deps.Config, deps.ProfileRepo))
	NewFeedbackHandler(feedback, deps.FeedbackUC)

	// Protected routes carry a tighter per-IP budget than the public directory
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.ProfileRepo))
	protected.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitWriteThreshold,
		Window:    window,
		KeyPrefix: "rl:write:",
	}))
	{
		NewProfileHandler(protected, deps.ProfileUC)
		NewPortfolioHandler(protected, deps.PortfolioUC)
		NewReviewHandler(protected, deps.ReviewUC)
		NewPaymentHandler(protected, deps.PaymentUC)
		NewMessageHandler(protected, deps.MessageUC)
	}

	return r
}
