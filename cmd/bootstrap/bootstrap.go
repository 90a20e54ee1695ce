package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akhileshroy86/healthcare-backend/config"
	deliveryHttp "github.com/akhileshroy86/healthcare-backend/internal/delivery/http"
	"github.com/akhileshroy86/healthcare-backend/internal/delivery/http/handler"
	"github.com/akhileshroy86/healthcare-backend/internal/delivery/http/middleware"
	"github.com/akhileshroy86/healthcare-backend/internal/infrastructure/cache"
	"github.com/akhileshroy86/healthcare-backend/internal/infrastructure/database"
	"github.com/akhileshroy86/healthcare-backend/internal/repository"
	"github.com/akhileshroy86/healthcare-backend/internal/service"
	"github.com/akhileshroy86/healthcare-backend/internal/usecase"
	"github.com/akhileshroy86/healthcare-backend/pkg/jwt"
	"github.com/akhileshroy86/healthcare-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
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

	// Apply database migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
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
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	scheduleConfigRepo := repository.NewScheduleConfigRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	paymentRepo := repository.NewPaymentRepository()
	reviewRepo := repository.NewReviewRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	queueNotifier := service.NewQueueNotifier(redisClient, log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, doctorProfileRepo, patientProfileRepo, auditService, jwtService, redisClient)
	doctorProfileUsecase := usecase.NewDoctorProfileUsecase(db, log, userRepo, doctorProfileRepo, reviewRepo, auditService)
	patientProfileUsecase := usecase.NewPatientProfileUsecase(db, log, patientProfileRepo, auditService)
	scheduleConfigUsecase := usecase.NewScheduleConfigUsecase(db, log, scheduleConfigRepo, doctorProfileRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, scheduleConfigRepo, doctorProfileRepo, auditService, queueNotifier)
	queueUsecase := usecase.NewQueueUsecase(db, log, appointmentRepo, scheduleConfigRepo, doctorProfileRepo, queueNotifier)
	paymentUsecase := usecase.NewPaymentUsecase(db, log, paymentRepo, appointmentRepo, auditService)
	reviewUsecase := usecase.NewReviewUsecase(db, log, reviewRepo, appointmentRepo, doctorProfileRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	doctorHandler := handler.NewDoctorHandler(doctorProfileUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientProfileUsecase, customValidator)
	scheduleConfigHandler := handler.NewScheduleConfigHandler(scheduleConfigUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	queueHandler := handler.NewQueueHandler(queueUsecase)
	paymentHandler := handler.NewPaymentHandler(paymentUsecase, customValidator)
	reviewHandler := handler.NewReviewHandler(reviewUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		doctorHandler,
		patientHandler,
		scheduleConfigHandler,
		appointmentHandler,
		queueHandler,
		paymentHandler,
		reviewHandler,
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
