package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-management-api/config"
	deliveryHttp "hospital-management-api/internal/delivery/http"
	"hospital-management-api/internal/delivery/http/handler"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/filedb"
	"hospital-management-api/internal/infrastructure/cache"
	"hospital-management-api/internal/infrastructure/database"
	"hospital-management-api/internal/repository/postgres"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/jwt"
	"hospital-management-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Server      *http.Server
}

// repositories bundles the five collection repositories behind their
// interfaces so the rest of the wiring is backend agnostic.
type repositories struct {
	users        repository.UserRepository
	patients     repository.PatientRepository
	doctors      repository.DoctorRepository
	appointments repository.AppointmentRepository
	bills        repository.BillRepository
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	repos, err := newRepositories(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	app.Server = initializeServer(cfg, repos, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// newRepositories builds the persistence layer selected by STORE_DRIVER.
func newRepositories(cfg *config.Config) (*repositories, error) {
	switch cfg.Store.Driver {
	case "file", "":
		store := filedb.NewStore(cfg.Store.FilePath)
		// Touch the store once so the seed data is written up front.
		if _, err := store.Read(); err != nil {
			return nil, fmt.Errorf("failed to open store file: %w", err)
		}
		logrus.Infof("Using file store at %s", cfg.Store.FilePath)
		return &repositories{
			users:        filedb.NewUserRepository(store),
			patients:     filedb.NewPatientRepository(store),
			doctors:      filedb.NewDoctorRepository(store),
			appointments: filedb.NewAppointmentRepository(store),
			bills:        filedb.NewBillRepository(store),
		}, nil

	case "postgres":
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return &repositories{
			users:        postgres.NewUserRepository(db),
			patients:     postgres.NewPatientRepository(db),
			doctors:      postgres.NewDoctorRepository(db),
			appointments: postgres.NewAppointmentRepository(db),
			bills:        postgres.NewBillRepository(db),
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, repos *repositories, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	authUsecase := usecase.NewAuthUsecase(log, repos.users, jwtService, redisClient)
	userUsecase := usecase.NewUserUsecase(log, repos.users)
	patientUsecase := usecase.NewPatientUsecase(log, repos.patients)
	doctorUsecase := usecase.NewDoctorUsecase(log, repos.doctors)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, repos.appointments)
	billingUsecase := usecase.NewBillingUsecase(log, repos.bills)
	statsUsecase := usecase.NewStatsUsecase(log, repos.patients, repos.doctors, repos.appointments, repos.bills)

	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	billingHandler := handler.NewBillingHandler(billingUsecase, customValidator)
	statsHandler := handler.NewStatsHandler(statsUsecase)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	metricsMiddleware := middleware.NewMetricsMiddleware()

	router := deliveryHttp.NewRouter(
		authHandler,
		userHandler,
		patientHandler,
		doctorHandler,
		appointmentHandler,
		billingHandler,
		statsHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
		metricsMiddleware,
	)
	httpRouter := router.Setup()

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close releases external connections
func (app *App) Close() {
	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			logrus.Errorf("Failed to close Redis connection: %v", err)
		}
	}
}
