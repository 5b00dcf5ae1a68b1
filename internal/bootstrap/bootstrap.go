// Package bootstrap wires configuration, storage, repositories, services and
// controllers together for the HTTP server.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/adjei/scholarhub/internal/app/controllers"
	appMigrations "github.com/adjei/scholarhub/internal/app/migrations"
	appRepos "github.com/adjei/scholarhub/internal/app/repositories"
	appRoutes "github.com/adjei/scholarhub/internal/app/routes"
	appServices "github.com/adjei/scholarhub/internal/app/services"
	"github.com/adjei/scholarhub/internal/config"
	"github.com/adjei/scholarhub/internal/db"
	"github.com/adjei/scholarhub/internal/metrics"
	appMiddleware "github.com/adjei/scholarhub/internal/middleware"
	pkgAuth "github.com/adjei/scholarhub/internal/pkg/auth"
	"github.com/adjei/scholarhub/internal/pkg/filestorage"
	"github.com/adjei/scholarhub/internal/pkg/helpers"
	"github.com/adjei/scholarhub/internal/pkg/logger"
	"github.com/adjei/scholarhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                  *appRepos.Repositories
	Services               *appServices.Services
	AuthController         *appControllers.AuthController
	UserController         *appControllers.UserController
	SchemeController       *appControllers.SchemeController
	ApplicationController  *appControllers.ApplicationController
	DocumentController     *appControllers.DocumentController
	BankDetailController   *appControllers.BankDetailController
	NotificationController *appControllers.NotificationController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	JWTService             *pkgAuth.JWTService
	FileStorage            filestorage.FileStorage
	Metrics                *metrics.Metrics
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection established")

	migrator := appMigrations.NewMigrator(dbPool)
	migrationsDir := filepath.Join("internal", "app", "migrations", "sql")
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding errors are not fatal, the schema is in place.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway")
	}

	return dbPool, nil
}

// setupFileStorage picks the storage backend from configuration.
func setupFileStorage(cfg *config.Config, lgr zerolog.Logger) (filestorage.FileStorage, error) {
	switch strings.ToLower(cfg.Storage.Driver) {
	case "minio":
		storage, err := filestorage.NewMinIOStorage(filestorage.MinIOConfig{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize MinIO storage: %w", err)
		}
		lgr.Info().Str("endpoint", cfg.Storage.Endpoint).Str("bucket", cfg.Storage.Bucket).Msg("MinIO storage configured")
		return storage, nil
	default:
		baseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
		storage, err := filestorage.NewLocalStorage(cfg.Storage.LocalPath, baseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		lgr.Info().Str("path", cfg.Storage.LocalPath).Msg("Local storage configured")
		return storage, nil
	}
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = setupFileStorage(cfg, lgr)
	if err != nil {
		return nil, err
	}

	deps.Metrics, err = metrics.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.FileStorage, deps.Metrics, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.Services.UserService, lgr)
	deps.SchemeController = appControllers.NewSchemeController(deps.Services.SchemeService, lgr)
	deps.ApplicationController = appControllers.NewApplicationController(deps.Services.ApplicationService, lgr)
	deps.DocumentController = appControllers.NewDocumentController(deps.Services.DocumentService, lgr)
	deps.BankDetailController = appControllers.NewBankDetailController(deps.Services.BankDetailService, lgr)
	deps.NotificationController = appControllers.NewNotificationController(deps.Services.NotificationService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(deps.Metrics.RequestCounter())

	router.GET("/metrics", deps.Metrics.Handler())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.SchemeController,
		deps.ApplicationController,
		deps.DocumentController,
		deps.BankDetailController,
		deps.NotificationController,
		deps.AuthMiddleware,
	)

	return router
}
