package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/campuslink/internal/app/controllers"
	appMigrations "github.com/yigit/campuslink/internal/app/migrations"
	appRepos "github.com/yigit/campuslink/internal/app/repositories"
	appRoutes "github.com/yigit/campuslink/internal/app/routes"
	appServices "github.com/yigit/campuslink/internal/app/services"
	"github.com/yigit/campuslink/internal/config"
	"github.com/yigit/campuslink/internal/db"
	appMiddleware "github.com/yigit/campuslink/internal/middleware"
	pkgAuth "github.com/yigit/campuslink/internal/pkg/auth"
	"github.com/yigit/campuslink/internal/pkg/logger"
	"github.com/yigit/campuslink/migrations"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	RegistrationService appServices.RegistrationService
	AccountService      appServices.AccountService
	AuthController      *appControllers.AuthController
	UserController      *appControllers.UserController
	Repos               *appRepos.Repositories
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: logger.ParseFormat(cfg.Logging.Format),
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	if !cfg.Database.MigrationsEnabled {
		lgr.Info().Msg("Database migrations disabled, skipping")
		return dbPool, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, lgr)
	if err := migrator.Migrate(ctx, migrations.FS); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, pool db.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(pool)

	hasher, err := pkgAuth.NewBcryptHasher(cfg.Security.BcryptCost)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize password hasher")
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}

	studentDefaults := appServices.StudentDefaults{
		EntryYear: cfg.Registration.StudentEntryYear,
		Grade:     cfg.Registration.StudentGrade,
	}

	deps.RegistrationService = appServices.NewRegistrationService(deps.Repos.RegistrationStore, hasher, studentDefaults, lgr)
	deps.AccountService = appServices.NewAccountService(deps.Repos.AccountRepository, lgr)

	deps.AuthController = appControllers.NewAuthController(deps.RegistrationService, lgr)
	deps.UserController = appControllers.NewUserController(deps.AccountService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.AuthController, deps.UserController)

	return router
}
