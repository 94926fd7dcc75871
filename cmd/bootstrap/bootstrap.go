package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ime-admin-service/config"
	deliveryHttp "ime-admin-service/internal/delivery/http"
	"ime-admin-service/internal/delivery/http/handler"
	"ime-admin-service/internal/delivery/http/middleware"
	"ime-admin-service/internal/infrastructure/cache"
	"ime-admin-service/internal/infrastructure/database"
	"ime-admin-service/internal/infrastructure/storage"
	"ime-admin-service/internal/repository"
	"ime-admin-service/internal/service"
	"ime-admin-service/internal/usecase"
	"ime-admin-service/pkg/jwt"
	"ime-admin-service/pkg/validator"

	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	MinioClient *minio.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize object storage
	minioClient, err := storage.NewMinioClient(cfg.Minio)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	app.MinioClient = minioClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient, minioClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, minioClient *minio.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	profileRepo := repository.NewExaminerProfileRepository()
	weeklyRepo := repository.NewWeeklyHoursRepository()
	overrideRepo := repository.NewOverrideHoursRepository()
	roleRepo := repository.NewOrganizationRoleRepository()
	managerRepo := repository.NewOrganizationManagerRepository()
	grantRepo := repository.NewUserRoleGrantRepository()
	locationRepo := repository.NewLocationRepository()
	examinationRepo := repository.NewExaminationRepository()
	linkRepo := repository.NewSecureLinkRepository()
	documentRepo := repository.NewDocumentRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditRepo)
	mailService := service.NewSMTPMailService(cfg.SMTP, log)
	storageService := service.NewMinioStorageService(minioClient, cfg.Minio)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, managerRepo, profileRepo, jwtService, redisClient)
	profileUsecase := usecase.NewExaminerProfileUsecase(db, log, userRepo, profileRepo, auditService)
	lifecycleUsecase := usecase.NewExaminerLifecycleUsecase(db, log, cfg.Links, profileRepo, userRepo, jwtService, mailService, auditService)
	onboardingUsecase := usecase.NewOnboardingUsecase(db, log, profileRepo, auditService)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, profileRepo, weeklyRepo, overrideRepo, auditService)
	roleUsecase := usecase.NewRoleAssignmentUsecase(db, log, cfg.Links, managerRepo, roleRepo, grantRepo, locationRepo, jwtService, mailService, auditService)
	linkUsecase := usecase.NewSecureLinkUsecase(db, log, cfg.Links, examinationRepo, linkRepo, jwtService, mailService, auditService)
	documentUsecase := usecase.NewDocumentUsecase(db, log, documentRepo, profileRepo, storageService, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	examinerHandler := handler.NewExaminerHandler(profileUsecase, lifecycleUsecase, customValidator)
	onboardingHandler := handler.NewOnboardingHandler(onboardingUsecase, customValidator)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase, customValidator)
	roleHandler := handler.NewRoleHandler(roleUsecase, customValidator)
	secureLinkHandler := handler.NewSecureLinkHandler(linkUsecase, customValidator)
	documentHandler := handler.NewDocumentHandler(documentUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		examinerHandler,
		onboardingHandler,
		availabilityHandler,
		roleHandler,
		secureLinkHandler,
		documentHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
