package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	_ "github.com/partstrack/parts_inventory_app/cmd/docs"
	"github.com/partstrack/parts_inventory_app/internal/adapters/listrepo"
	"github.com/partstrack/parts_inventory_app/internal/core/services"
	"github.com/partstrack/parts_inventory_app/internal/handlers"
	"github.com/partstrack/parts_inventory_app/internal/middleware"
	"github.com/partstrack/parts_inventory_app/internal/platform/config"
	"github.com/partstrack/parts_inventory_app/pkg/cache"
	"github.com/partstrack/parts_inventory_app/pkg/liststore"
)

// @title PartsTrack Inventory API
// @version 1.0
// @description Auto parts inventory, invoicing and stock movement ledger over a remote tabular store.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := buildStore(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize list store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := listrepo.NewRepositoryProvider(store)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimitSpec)
	if err != nil {
		logger.Error("Invalid rate limit spec", slog.String("spec", cfg.RateLimitSpec), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildStore assembles the backing store plus the configured read cache.
// Without a STORE_BASE_URL the process runs against an in-memory store,
// which only makes sense for local development.
func buildStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (liststore.Store, error) {
	var store liststore.Store
	if cfg.StoreBaseURL == "" {
		logger.Warn("STORE_BASE_URL not set, using in-memory store; data will not survive restarts")
		store = liststore.NewMemoryStore()
	} else {
		httpStore, err := liststore.NewHTTPStore(ctx, liststore.HTTPStoreConfig{
			BaseURL:      cfg.StoreBaseURL,
			TokenURL:     cfg.StoreTokenURL,
			ClientID:     cfg.StoreClientID,
			ClientSecret: cfg.StoreClientSecret,
			Timeout:      cfg.StoreTimeout,
		})
		if err != nil {
			return nil, err
		}
		store = httpStore
		logger.Info("Remote list store client initialized", slog.String("base_url", cfg.StoreBaseURL))
	}

	var c cache.Cache
	switch cfg.CacheBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Error("Failed to connect to redis", slog.String("addr", cfg.RedisAddr), slog.String("error", err.Error()))
			return nil, err
		}
		c = cache.NewRedis(client)
		logger.Info("Redis read cache enabled", slog.String("addr", cfg.RedisAddr))
	case "memory":
		c = cache.NewMemory()
		logger.Info("In-memory read cache enabled")
	default:
		c = cache.Noop{}
	}

	return liststore.NewCachedStore(store, c, cfg.CacheTTL), nil
}
