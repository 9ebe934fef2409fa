package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/investment_club/cmd/docs"
	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/middleware"
	"github.com/SscSPs/investment_club/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// timeNow is the clock used for time-relative reads such as goal progress.
var timeNow = func() time.Time { return time.Now().UTC() }

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("login rate limit: %w", err)
	}
	apiLimiter, err := middleware.NewMemoryLimiter(cfg.APIRateLimit)
	if err != nil {
		return fmt.Errorf("api rate limit: %w", err)
	}

	// Register public authentication routes
	registerAuthRoutes(r, services.Auth, middleware.RateLimit(loginLimiter))

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret), middleware.RateLimit(apiLimiter))
	RegisterAPIRoutes(v1, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// RegisterAPIRoutes delegates route registration to the per-entity handlers.
// The caller is responsible for authenticating the group.
func RegisterAPIRoutes(v1 *gin.RouterGroup, services *portssvc.ServiceContainer) {
	registerMemberRoutes(v1, services.Member)
	registerLedgerRoutes(v1, services.Ledger)
	registerInvestmentRoutes(v1, services.Investment)
	registerProposalRoutes(v1, services.Voting)
	registerRequestRoutes(v1, services.Request, services.Voting)
	registerMarketplaceRoutes(v1, services.Approval)
	registerCommentRoutes(v1, services.Comment)
	registerNotificationRoutes(v1, services.Notification)
	registerDistributionRoutes(v1, services.Distribution)
	registerReportingRoutes(v1, services.Reporting)
	registerInsightRoutes(v1, services.Insight)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
