package container

import (
	"context"
	"fmt"
	"time"

	"book-catalog-backend/internal/config"
	infraCache "book-catalog-backend/internal/infrastructure/cache"
	"book-catalog-backend/internal/infrastructure/database"
	"book-catalog-backend/pkg/cache"
	"book-catalog-backend/pkg/jwt"
	"book-catalog-backend/pkg/logger"

	catalogHandler "book-catalog-backend/internal/domains/catalog/handler"
	catalogRepo "book-catalog-backend/internal/domains/catalog/repository"
	catalogService "book-catalog-backend/internal/domains/catalog/service"
	commentHandler "book-catalog-backend/internal/domains/comment/handler"
	commentRepo "book-catalog-backend/internal/domains/comment/repository"
	commentService "book-catalog-backend/internal/domains/comment/service"
	userHandler "book-catalog-backend/internal/domains/user/handler"
	userRepo "book-catalog-backend/internal/domains/user/repository"
	userService "book-catalog-backend/internal/domains/user/service"
)

// Container is the application's composition root: every dependency is
// constructed here, explicitly, in dependency order.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	CatalogService catalogService.ServiceInterface
	CommentService commentService.ServiceInterface
	UserService    userService.ServiceInterface

	BookHandler    *catalogHandler.BookHandler
	CommentHandler *commentHandler.CommentHandler
	UserHandler    *userHandler.UserHandler

	redis *infraCache.RedisCache
}

// NewContainer builds the full dependency graph:
// config -> infrastructure -> repositories -> services -> handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.DB = database.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	c.redis = infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.redis.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}
	c.Cache = c.redis

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	catalogRepository := catalogRepo.NewPostgresCatalogRepository(c.DB.Pool)
	commentRepository := commentRepo.NewPostgresCommentRepository(c.DB.Pool)
	userRepository := userRepo.NewPostgresUserRepository(c.DB.Pool)

	c.CatalogService = catalogService.NewCatalogService(catalogRepository, c.Cache)
	c.CommentService = commentService.NewCommentService(commentRepository, cfg.Comments)
	c.UserService = userService.NewUserService(userRepository)

	c.BookHandler = catalogHandler.NewBookHandler(c.CatalogService, c.CommentService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService, c.CommentService, c.JWTManager)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Warn("redis close failed", map[string]interface{}{"error": err.Error()})
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
