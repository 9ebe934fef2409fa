package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/investment_club/internal/adapters/insight"
	"github.com/SscSPs/investment_club/internal/core/domain"
	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/core/services"
	"github.com/SscSPs/investment_club/internal/dto"
	"github.com/SscSPs/investment_club/internal/handlers"
	"github.com/SscSPs/investment_club/internal/middleware"
	"github.com/SscSPs/investment_club/internal/platform/config"
	"github.com/SscSPs/investment_club/internal/platform/metrics"
	"github.com/SscSPs/investment_club/internal/repositories/memory"
	"github.com/SscSPs/investment_club/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @title Investment Club API
// @version 1.0
// @description Ledger, governance and profit distribution for a member-owned investment club.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := dto.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// --- Club state ---
	initial := &domain.ClubState{Goal: cfg.Goal}
	if cfg.SeedFixtures {
		initial, err = memory.FixtureState(memory.SeedOptions{Goal: cfg.Goal, Now: time.Now().UTC()})
		if err != nil {
			logger.Error("Failed to build fixture state", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Seeded demo club", slog.Int("members", len(initial.Members)), slog.Int("transactions", len(initial.Transactions)))
	}
	store := memory.NewClubStore(initial)

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	clubMetrics := metrics.NewClubMetrics(registry)

	// --- External collaborators ---
	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	var generator portssvc.TextGenerator
	if cfg.GeminiAPIKey != "" {
		gemini, err := insight.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("Failed to initialize Gemini client, insights disabled", slog.String("error", err.Error()))
		} else {
			generator = gemini
		}
	} else {
		logger.Info("GEMINI_API_KEY not set, insights disabled")
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Global middleware (logging, recovery, analytics)
	r.Use(middleware.StructuredLoggingMiddleware(logger, clubMetrics), gin.Recovery())
	r.Use(middleware.PosthogMiddleware(posthogClient))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	container := services.NewServiceContainer(cfg, store, generator, clubMetrics)
	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("distribution_policy", string(cfg.DistributionPolicy)))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
