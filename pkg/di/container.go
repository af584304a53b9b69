package di

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"blog-api/application/serviceimpl"
	"blog-api/domain/ports"
	"blog-api/domain/repositories"
	"blog-api/domain/services"
	natspkg "blog-api/infrastructure/nats"
	"blog-api/infrastructure/postgres"
	redispkg "blog-api/infrastructure/redis"
	"blog-api/infrastructure/storage"
	"blog-api/interfaces/api/handlers"
	"blog-api/pkg/config"
	"blog-api/pkg/logger"
	"blog-api/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client
	TokenStore     *redispkg.TokenStore
	NATSClient     *natspkg.Client
	EventPublisher ports.EventPublisherPort
	Storage        ports.StoragePort
	EventScheduler scheduler.EventScheduler

	// Repositories
	UserRepository         repositories.UserRepository
	CategoryRepository     repositories.CategoryRepository
	ArticleRepository      repositories.ArticleRepository
	CommentRepository      repositories.CommentRepository
	LikeRepository         repositories.LikeRepository
	NotificationRepository repositories.NotificationRepository

	// Services
	UserService         services.UserService
	CategoryService     services.CategoryService
	ArticleService      services.ArticleService
	CommentService      services.CommentService
	EngagementService   services.EngagementService
	NotificationService services.NotificationService
	MediaService        services.MediaService

	// Event consumers
	NotificationConsumer *natspkg.NotificationConsumer
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	if err := c.initScheduler(); err != nil {
		return err
	}

	if err := c.initConsumers(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Database
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis (revoked-token store) - graceful degradation
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (token revocation disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			c.TokenStore = redispkg.NewTokenStore(redisClient)
		}
	}

	// NATS JetStream (notification event bus) - graceful degradation
	natsConfig := natspkg.ClientConfig{
		URL: c.Config.NATS.URL,
	}
	natsClient, err := natspkg.NewClient(natsConfig)
	if err != nil {
		logger.Warn("NATS client initialization failed (notifications disabled)", "error", err)
	} else {
		c.NATSClient = natsClient
		c.EventPublisher = natspkg.NewPublisher(natsClient)
	}

	return c.initStorage()
}

// initStorage สร้าง storage adapter ตาม config
func (c *Container) initStorage() error {
	switch c.Config.Storage.Type {
	case "s3":
		s3Config := storage.S3StorageConfig{
			Endpoint:  c.Config.Storage.S3.Endpoint,
			AccessKey: c.Config.Storage.S3.AccessKey,
			SecretKey: c.Config.Storage.S3.SecretKey,
			Bucket:    c.Config.Storage.S3.Bucket,
			UseSSL:    c.Config.Storage.S3.UseSSL,
			Region:    c.Config.Storage.S3.Region,
			PublicURL: c.Config.Storage.S3.PublicURL,
		}
		s3Storage, err := storage.NewS3Storage(s3Config)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		c.Storage = s3Storage

	default:
		localConfig := storage.LocalStorageConfig{
			BasePath: c.Config.Storage.BasePath,
			BaseURL:  c.Config.Storage.BaseURL,
		}
		localStorage, err := storage.NewLocalStorage(localConfig)
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
		c.Storage = localStorage
		logger.Info("Local Storage initialized", "path", c.Config.Storage.BasePath)
	}

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.CategoryRepository = postgres.NewCategoryRepository(c.DB)
	c.ArticleRepository = postgres.NewArticleRepository(c.DB)
	c.CommentRepository = postgres.NewCommentRepository(c.DB)
	c.LikeRepository = postgres.NewLikeRepository(c.DB)
	c.NotificationRepository = postgres.NewNotificationRepository(c.DB)
	logger.Info("Repositories initialized")
}

func (c *Container) initServices() {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.TokenStore, c.Config.JWT.Secret)
	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository)
	c.CommentService = serviceimpl.NewCommentService(
		c.CommentRepository,
		c.ArticleRepository,
		c.LikeRepository,
		c.EventPublisher,
		c.Config.Blog,
	)
	c.ArticleService = serviceimpl.NewArticleService(
		c.ArticleRepository,
		c.CategoryRepository,
		c.UserRepository,
		c.LikeRepository,
		c.CommentService,
		c.Config.Blog,
	)
	c.EngagementService = serviceimpl.NewEngagementService(
		c.LikeRepository,
		c.ArticleRepository,
		c.CommentRepository,
		c.EventPublisher,
	)
	c.NotificationService = serviceimpl.NewNotificationService(c.NotificationRepository, c.Config.Blog)
	c.MediaService = serviceimpl.NewMediaService(c.Storage, c.Config.Storage)
	logger.Info("Services initialized")
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()

	// ลบ notification ที่อ่านแล้วและเก่ากว่า retention ทุกวันตี 3
	err := c.EventScheduler.AddJob("notification-purge", "0 3 * * *", func() {
		if _, err := c.NotificationService.PurgeOld(context.Background()); err != nil {
			logger.Error("Notification purge job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	c.EventScheduler.Start()
	logger.Info("Scheduler started", "jobs", "notification-purge")
	return nil
}

func (c *Container) initConsumers() error {
	if c.NATSClient == nil {
		logger.Warn("Skipping notification consumer (NATS not available)")
		return nil
	}

	c.NotificationConsumer = natspkg.NewNotificationConsumer(c.NATSClient, c.NotificationService)
	return c.NotificationConsumer.Start(context.Background())
}

// GetConfig returns the loaded configuration
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetHandlerServices รวม services สำหรับสร้าง handlers
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:         c.UserService,
		CategoryService:     c.CategoryService,
		ArticleService:      c.ArticleService,
		CommentService:      c.CommentService,
		EngagementService:   c.EngagementService,
		NotificationService: c.NotificationService,
		MediaService:        c.MediaService,
	}
}

// Cleanup ปิด resources ตอน shutdown
func (c *Container) Cleanup() {
	if c.NotificationConsumer != nil {
		c.NotificationConsumer.Stop()
	}

	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
	}

	if c.NATSClient != nil {
		c.NATSClient.Close()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis client", "error", err)
		}
	}

	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	logger.Info("Container cleaned up")
}
