package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Remote list store
	StoreBaseURL      string
	StoreTokenURL     string
	StoreClientID     string
	StoreClientSecret string
	StoreTimeout      time.Duration

	// Read cache in front of the store
	CacheBackend  string // "memory", "redis" or "none"
	CacheTTL      time.Duration
	RedisAddr     string
	RedisPassword string

	// Invoice lifecycle
	AllowDirectFinalize bool

	// Rate limiting, in ulule/limiter notation (e.g. "300-H")
	RateLimitSpec string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORE_BASE_URL", "")
	viper.SetDefault("STORE_TOKEN_URL", "")
	viper.SetDefault("STORE_CLIENT_ID", "")
	viper.SetDefault("STORE_CLIENT_SECRET", "")
	viper.SetDefault("STORE_TIMEOUT", "15s")
	viper.SetDefault("CACHE_BACKEND", "memory")
	viper.SetDefault("CACHE_TTL", "5m")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("ALLOW_DIRECT_FINALIZE", true)
	viper.SetDefault("RATE_LIMIT", "300-H")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.StoreBaseURL = viper.GetString("STORE_BASE_URL")
	if cfg.StoreBaseURL == "" {
		log.Println("Warning: STORE_BASE_URL environment variable not set.")
	}
	cfg.StoreTokenURL = viper.GetString("STORE_TOKEN_URL")
	cfg.StoreClientID = viper.GetString("STORE_CLIENT_ID")
	cfg.StoreClientSecret = viper.GetString("STORE_CLIENT_SECRET")

	storeTimeout, err := time.ParseDuration(viper.GetString("STORE_TIMEOUT"))
	if err != nil {
		log.Printf("Warning: Invalid STORE_TIMEOUT (%q). Defaulting to 15s.\n", viper.GetString("STORE_TIMEOUT"))
		storeTimeout = 15 * time.Second
	}
	cfg.StoreTimeout = storeTimeout

	cfg.CacheBackend = viper.GetString("CACHE_BACKEND")
	switch cfg.CacheBackend {
	case "memory", "redis", "none":
	default:
		log.Printf("Warning: Unknown CACHE_BACKEND (%q). Defaulting to memory.\n", cfg.CacheBackend)
		cfg.CacheBackend = "memory"
	}

	cacheTTL, err := time.ParseDuration(viper.GetString("CACHE_TTL"))
	if err != nil {
		log.Printf("Warning: Invalid CACHE_TTL (%q). Defaulting to 5m.\n", viper.GetString("CACHE_TTL"))
		cacheTTL = 5 * time.Minute
	}
	cfg.CacheTTL = cacheTTL

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")

	cfg.AllowDirectFinalize = viper.GetBool("ALLOW_DIRECT_FINALIZE")
	cfg.RateLimitSpec = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
