package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobboard_backend/database"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/validator"
	"jobboard_backend/internal/workers"
	"jobboard_backend/ws"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ginRouter := SetupRouter(ctx, cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full engine: storage, repositories, services,
// handlers, websocket hub, background workers, routes. ctx bounds the
// hub and worker goroutines.
func SetupRouter(ctx context.Context, cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store, err := storage.NewStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	emailProvider := email.NewProvider(cfg.Email)

	wsManager := ws.NewManager()
	go wsManager.Run(ctx)
	wsHandler := ws.NewWebSocketHandler(wsManager)

	// Repositories
	userRepo := repositories.NewUserRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	skillRepo := repositories.NewSkillRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	verificationRepo := repositories.NewVerificationRepository(gormDB)

	// Services
	authService := services.NewAuthService(userRepo, verificationRepo, emailProvider)
	userService := services.NewUserService(userRepo)
	jobService := services.NewJobService(jobRepo, store)
	notificationService := services.NewNotificationService(notificationRepo, wsManager)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo, userRepo, notificationService, store)
	skillService := services.NewSkillService(skillRepo)

	// Handlers
	baseHandler := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, authService),
		UserHandler:         handlers.NewUserHandler(baseHandler, userService),
		JobHandler:          handlers.NewJobHandler(baseHandler, jobService),
		ApplicationHandler:  handlers.NewApplicationHandler(baseHandler, applicationService, store),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, notificationService),
		SkillHandler:        handlers.NewSkillHandler(baseHandler, skillService),
		FileHandler:         handlers.NewFileHandler(baseHandler, store),
	}

	retentionWorker := workers.NewRetentionWorker(verificationRepo, applicationRepo, userRepo)
	retentionWorker.Start(ctx)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	return ginRouter
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin creates the bootstrap admin account when the
// configured one does not exist yet. Without it the admin endpoints
// would be unreachable on a fresh database.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdmin.Email
	adminUsername := cfg.FirstAdmin.Username
	adminPassword := cfg.FirstAdmin.Password

	if adminEmail == "" || adminUsername == "" || adminPassword == "" {
		logger.Warn("First admin credentials are not configured, skipping admin seeding")
		return nil
	}

	var admin models.User
	result := db.Where("email = ?", adminEmail).First(&admin)
	if result.Error == nil {
		logger.Info("Admin user already exists, skipping creation", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		Username:     adminUsername,
		PasswordHash: hash,
		Fullname:     "Administrator",
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
