package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"watchhub/database"
	"watchhub/internal/config"
	"watchhub/internal/http-api/handler"
	"watchhub/internal/http-api/middleware"
	"watchhub/internal/http-api/repository"
	"watchhub/internal/http-api/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("could not load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}
	logger = newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	platformRepo := repository.NewPlatformRepository(db)
	watchlistRepo := repository.NewWatchlistRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Token denylist: Redis when configured, in-process otherwise
	denylist := newDenylist(cfg, logger)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, denylist, cfg)
	catalogService := service.NewCatalogService(platformRepo, watchlistRepo)
	reviewService := service.NewReviewService(reviewRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, cfg.AccessTokenTTL)
	platformHandler := handler.NewPlatformHandler(catalogService)
	watchlistHandler := handler.NewWatchlistHandler(catalogService, authService)
	reviewHandler := handler.NewReviewHandler(reviewService, authService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst))

	r.GET("/check-conn", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		authHandler.RegisterRoutes(auth)

		// credentials are decoded when present; the policy gates below decide
		// whether an actor is required
		watch := api.Group("/watch", middleware.OptionalAuth(authService))
		platformHandler.RegisterRoutes(watch)
		watchlistHandler.RegisterRoutes(watch)
		reviewHandler.RegisterRoutes(watch)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func newDenylist(cfg *config.Config, logger *slog.Logger) service.TokenDenylist {
	if cfg.RedisURL == "" {
		logger.Info("no Redis configured, using in-memory token denylist")
		return service.NewMemoryDenylist()
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Warn("invalid REDIS_URL, falling back to in-memory token denylist", "error", err)
		return service.NewMemoryDenylist()
	}
	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}
	return service.NewRedisDenylist(redis.NewClient(opts))
}
