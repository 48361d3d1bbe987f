package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/rovyapp/rovy-backend/internal/config"
	"github.com/rovyapp/rovy-backend/internal/delivery/http"
	"github.com/rovyapp/rovy-backend/internal/delivery/http/handler"
	"github.com/rovyapp/rovy-backend/internal/delivery/http/middleware"
	"github.com/rovyapp/rovy-backend/internal/infrastructure/database"
	"github.com/rovyapp/rovy-backend/internal/infrastructure/server"
	"github.com/rovyapp/rovy-backend/internal/infrastructure/supabase"
	"github.com/rovyapp/rovy-backend/internal/repository/postgres"
	"github.com/rovyapp/rovy-backend/internal/usecase/build"
	"github.com/rovyapp/rovy-backend/internal/usecase/copilot"
	"github.com/rovyapp/rovy-backend/internal/usecase/event"
	"github.com/rovyapp/rovy-backend/internal/usecase/feed"
	"github.com/rovyapp/rovy-backend/internal/usecase/garage"
	"github.com/rovyapp/rovy-backend/internal/usecase/nearby"
	"github.com/rovyapp/rovy-backend/internal/usecase/profile"
	"github.com/rovyapp/rovy-backend/internal/usecase/search"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Logger zerolog.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, logger zerolog.Logger) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis. The token cache degrades gracefully without it.
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, auth token caching disabled")
		redisClient = nil
	}

	// Initialize identity verifier
	verifier := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey, cfg.Supabase.JWTSecret)

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	copilotRepo := postgres.NewCoPilotRepository(db)
	swipeRepo := postgres.NewSwipeRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	pinRepo := postgres.NewPinRepository(db)
	garageRepo := postgres.NewGarageProRepository(db)
	newsRepo := postgres.NewRoadNewsRepository(db)
	buildRepo := postgres.NewBuildRepository(db)

	// Initialize use cases
	copilotUseCase := copilot.NewCoPilotUseCase(
		copilotRepo,
		swipeRepo,
		messageRepo,
		userRepo,
	)

	nearbyUseCase := nearby.NewNearbyUseCase(
		eventRepo,
		userRepo,
		garageRepo,
		newsRepo,
	)

	eventUseCase := event.NewEventUseCase(eventRepo)

	garageUseCase := garage.NewGarageUseCase(garageRepo)

	feedUseCase := feed.NewFeedUseCase(
		userRepo,
		eventRepo,
		newsRepo,
		pinRepo,
	)

	profileUseCase := profile.NewProfileUseCase(
		userRepo,
		copilotRepo,
	)

	buildUseCase := build.NewBuildUseCase(buildRepo)

	searchUseCase := search.NewSearchUseCase(
		userRepo,
		buildRepo,
		garageRepo,
	)

	// Initialize handlers
	copilotHandler := handler.NewCoPilotHandler(copilotUseCase)
	eventHandler := handler.NewEventHandler(eventUseCase, nearbyUseCase)
	mapHandler := handler.NewMapHandler(nearbyUseCase, profileUseCase)
	feedHandler := handler.NewFeedHandler(feedUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	garageHandler := handler.NewGarageHandler(garageUseCase)
	buildHandler := handler.NewBuildHandler(buildUseCase)
	searchHandler := handler.NewSearchHandler(searchUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(verifier, redisClient, logger)

	// Initialize router
	router := http.NewRouter(
		copilotHandler,
		eventHandler,
		mapHandler,
		feedHandler,
		profileHandler,
		garageHandler,
		buildHandler,
		searchHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, logger)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Logger: logger,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Error().Err(err).Msg("error closing redis")
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
