package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	JWTSecret     string
	JWTExpiry     string
	JWTIssuer     string
	CORSOrigins   []string
	LoginRateSpec string // ulule/limiter formatted rate, e.g. "10-M"

	// Shared treasurer account. The original deployment runs on a single
	// board-managed login rather than per-member accounts.
	TreasurerUsername     string
	TreasurerPasswordHash string

	JWTExpiryDuration time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "investia-backend")
	viper.SetDefault("CORS_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	viper.SetDefault("TREASURER_USERNAME", "treasurer")
	viper.SetDefault("TREASURER_PASSWORD_HASH", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiry = jwtExpiryStr
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.CORSOrigins = viper.GetStringSlice("CORS_ORIGINS")
	cfg.LoginRateSpec = viper.GetString("LOGIN_RATE_LIMIT")

	cfg.TreasurerUsername = viper.GetString("TREASURER_USERNAME")
	cfg.TreasurerPasswordHash = viper.GetString("TREASURER_PASSWORD_HASH")
	if cfg.TreasurerPasswordHash == "" {
		log.Println("Warning: TREASURER_PASSWORD_HASH not set. Login will reject all credentials.")
	}

	return cfg, nil
}
