package config

import (
	"fmt"
	"log"
	"time"

	"github.com/SscSPs/investment_club/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	FrontendBaseURL   string

	// Rate limits in ulule/limiter format, e.g. "10-M".
	LoginRateLimit string
	APIRateLimit   string

	PosthogAPIKey string
	GeminiAPIKey  string
	GeminiModel   string

	DistributionPolicy domain.DistributionPolicy
	Goal               domain.ContributionGoal
	ContributionWindow time.Duration
	SeedFixtures       bool
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "investment-club")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	v.SetDefault("API_RATE_LIMIT", "300-M")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("DISTRIBUTION_POLICY", string(domain.PolicyEqual))
	v.SetDefault("CONTRIBUTION_GOAL_TARGET", "5000")
	v.SetDefault("CONTRIBUTION_GOAL_DEADLINE", "2024-12-31")
	v.SetDefault("CONTRIBUTION_WINDOW", "2160h") // 90 days
	v.SetDefault("SEED_FIXTURES", true)
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		FrontendBaseURL: v.GetString("FRONTEND_BASE_URL"),
		LoginRateLimit:  v.GetString("LOGIN_RATE_LIMIT"),
		APIRateLimit:    v.GetString("API_RATE_LIMIT"),
		PosthogAPIKey:   v.GetString("POSTHOG_API_KEY"),
		GeminiAPIKey:    v.GetString("GEMINI_API_KEY"),
		GeminiModel:     v.GetString("GEMINI_MODEL"),
		SeedFixtures:    v.GetBool("SEED_FIXTURES"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret
	}
	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiry <= 0 {
		jwtExpiry = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry

	cfg.DistributionPolicy, err = domain.ParseDistributionPolicy(v.GetString("DISTRIBUTION_POLICY"))
	if err != nil {
		return nil, fmt.Errorf("invalid DISTRIBUTION_POLICY: %w", err)
	}

	target, err := decimal.NewFromString(v.GetString("CONTRIBUTION_GOAL_TARGET"))
	if err != nil || target.IsNegative() {
		return nil, fmt.Errorf("invalid CONTRIBUTION_GOAL_TARGET %q", v.GetString("CONTRIBUTION_GOAL_TARGET"))
	}
	deadline, err := time.Parse(time.DateOnly, v.GetString("CONTRIBUTION_GOAL_DEADLINE"))
	if err != nil {
		return nil, fmt.Errorf("invalid CONTRIBUTION_GOAL_DEADLINE: %w", err)
	}
	// The deadline day counts in full.
	cfg.Goal = domain.ContributionGoal{TargetAmount: target, Deadline: deadline.Add(24*time.Hour - time.Nanosecond)}

	cfg.ContributionWindow, err = time.ParseDuration(v.GetString("CONTRIBUTION_WINDOW"))
	if err != nil || cfg.ContributionWindow <= 0 {
		return nil, fmt.Errorf("invalid CONTRIBUTION_WINDOW %q", v.GetString("CONTRIBUTION_WINDOW"))
	}

	return cfg, nil
}
