package app

import (
	"errors"
	"fmt"
	"time"

	"sahyogjeevan/database"
	"sahyogjeevan/internal/auth"
	"sahyogjeevan/internal/config"
	"sahyogjeevan/internal/email"
	"sahyogjeevan/internal/handlers"
	"sahyogjeevan/internal/logger"
	"sahyogjeevan/internal/middleware"
	"sahyogjeevan/internal/models"
	"sahyogjeevan/internal/repositories"
	"sahyogjeevan/internal/routes"
	"sahyogjeevan/internal/services"
	"sahyogjeevan/internal/session"
	"sahyogjeevan/internal/sms"
	"sahyogjeevan/internal/storage"
	"sahyogjeevan/internal/validator"
	"sahyogjeevan/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(cfg.Server.Env == "development")

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	sessionStore := newSessionStore(cfg)
	ginRouter := SetupRouter(cfg, gormDB, sessionStore)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles the full gin engine. Tests call it with an
// in-memory database and session store.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sessionStore session.Store) *gin.Engine {
	storageInstance, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	serviceContainer := initializeServices(cfg, gormDB, sessionStore)
	appHandlers := initializeHandlers(cfg, serviceContainer, storageInstance)

	ginRouter := initializeGinRouter(cfg, gormDB, sessionStore)
	routes.RegisterRoutes(ginRouter, appHandlers, storageInstance.BasePath())

	return ginRouter
}

func newSessionStore(cfg *config.Config) session.Store {
	if cfg.Session.Store == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Session.RedisAddr,
			Password: cfg.Session.RedisPassword,
			DB:       cfg.Session.RedisDB,
		})
		logger.Info("Session store initialized", "store", "redis", "addr", cfg.Session.RedisAddr)
		return session.NewRedisStore(client)
	}
	logger.Info("Session store initialized", "store", "memory")
	return session.NewMemoryStore(10 * time.Minute)
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, sessionStore session.Store) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)

	smsProvider := sms.NewLogProvider()

	var emailSender email.Sender
	if cfg.SMTP.Host != "" {
		emailSender = email.NewSMTPSender(cfg)
	} else {
		logger.Warn("SMTP is not configured, email notifications are disabled")
		emailSender = email.NoopSender{}
	}

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(gormDB, userRepo, smsProvider, sessionStore, sessionTTL),
		ProfileService:     services.NewProfileService(profileRepo),
		JobService:         services.NewJobService(jobRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, jobRepo, userRepo, emailSender),
	}
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	cookieMaxAge := cfg.Session.TTLHours * 3600

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, container.AuthService, cookieMaxAge),
		ProfileHandler:     handlers.NewProfileHandler(baseHandler, container.ProfileService),
		JobHandler:         handlers.NewJobHandler(baseHandler, container.JobService, storageInstance, cfg.Upload.MaxSize),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, container.ApplicationService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB, sessionStore session.Store) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	router.Use(middleware.SessionMiddleware(sessionStore))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	username := cfg.FirstAdmin.Username
	password := cfg.FirstAdmin.Password

	if username == "" || password == "" {
		logger.Warn("FIRST_ADMIN_USERNAME or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var admin models.User
	err := db.Where("username = ?", username).First(&admin).Error
	if err == nil {
		logger.Info("Admin user already exists. Skipping creation.", "username", username)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		newAdmin := &models.User{
			Username:     &username,
			PasswordHash: &hash,
			Role:         models.UserRoleAdmin,
		}
		if err := tx.Create(newAdmin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		settings := &models.UserSettings{UserID: newAdmin.ID, PreferredLanguage: "en"}
		if err := tx.Create(settings).Error; err != nil {
			return fmt.Errorf("failed to create admin settings: %w", err)
		}
		logger.Info("Created first admin user", "username", username)
		return nil
	})
}
