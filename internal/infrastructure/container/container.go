package container

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/squadup-app/squadup-backend/internal/config"
	"github.com/squadup-app/squadup-backend/internal/delivery/http"
	"github.com/squadup-app/squadup-backend/internal/delivery/http/handler"
	"github.com/squadup-app/squadup-backend/internal/delivery/http/middleware"
	"github.com/squadup-app/squadup-backend/internal/infrastructure/database"
	"github.com/squadup-app/squadup-backend/internal/infrastructure/icebreaker"
	"github.com/squadup-app/squadup-backend/internal/infrastructure/realtime"
	"github.com/squadup-app/squadup-backend/internal/infrastructure/server"
	"github.com/squadup-app/squadup-backend/internal/repository/postgres"
	"github.com/squadup-app/squadup-backend/internal/usecase/auth"
	"github.com/squadup-app/squadup-backend/internal/usecase/chat"
	"github.com/squadup-app/squadup-backend/internal/usecase/discovery"
	"github.com/squadup-app/squadup-backend/internal/usecase/profile"
	"github.com/squadup-app/squadup-backend/internal/usecase/rating"
	"github.com/squadup-app/squadup-backend/internal/usecase/swipe"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	DB         *sqlx.DB
	Redis      *redis.Client
	Server     *server.Server
	Icebreaker *icebreaker.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize icebreaker client. Optional: without an API key the
	// match flow still works, just without opener suggestions.
	var icebreakerClient *icebreaker.Client
	var generator swipe.IcebreakerGenerator
	if cfg.GeminiAPIKey != "" {
		icebreakerClient, err = icebreaker.NewClient(cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn("icebreaker client unavailable", "error", err)
		} else {
			generator = icebreakerClient
		}
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	swipeRepo := postgres.NewSwipeRepository(db)
	ratingRepo := postgres.NewRatingRepository(db)
	gameRepo := postgres.NewFavoriteGameRepository(db)
	messageRepo := postgres.NewMessageRepository(db)

	// Initialize realtime broker
	broker := realtime.NewRedisBroker(redisClient)

	// Initialize use cases
	authUseCase := auth.NewUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	profileUseCase := profile.NewUseCase(profileRepo, gameRepo, ratingRepo)
	discoveryUseCase := discovery.NewUseCase(profileRepo, swipeRepo, ratingRepo, gameRepo)
	swipeUseCase := swipe.NewUseCase(swipeRepo, profileRepo, gameRepo, generator, logger)
	ratingUseCase := rating.NewUseCase(ratingRepo)
	chatUseCase := chat.NewUseCase(messageRepo, swipeRepo, broker, logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	discoveryHandler := handler.NewDiscoveryHandler(discoveryUseCase)
	swipeHandler := handler.NewSwipeHandler(swipeUseCase)
	ratingHandler := handler.NewRatingHandler(ratingUseCase)
	chatHandler := handler.NewChatHandler(chatUseCase, broker)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		discoveryHandler,
		swipeHandler,
		ratingHandler,
		chatHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config:     cfg,
		DB:         db,
		Redis:      redisClient,
		Server:     srv,
		Icebreaker: icebreakerClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Icebreaker != nil {
		c.Icebreaker.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			slog.Error("failed to close redis", "error", err)
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
