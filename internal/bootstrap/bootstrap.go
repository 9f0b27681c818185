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
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/deniz/uniscope/docs" // Import generated swagger docs
	appControllers "github.com/deniz/uniscope/internal/app/controllers"
	appMigrations "github.com/deniz/uniscope/internal/app/migrations"
	appRepos "github.com/deniz/uniscope/internal/app/repositories"
	appRoutes "github.com/deniz/uniscope/internal/app/routes"
	appServices "github.com/deniz/uniscope/internal/app/services"
	"github.com/deniz/uniscope/internal/config"
	"github.com/deniz/uniscope/internal/db"
	"github.com/deniz/uniscope/internal/ingest"
	appMiddleware "github.com/deniz/uniscope/internal/middleware"
	"github.com/deniz/uniscope/internal/pkg/logger"
	"github.com/deniz/uniscope/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	UniversityService        appServices.UniversityService     // Interface type
	RecommendationService    appServices.RecommendationService // Interface type
	StatsService             appServices.StatsService          // Interface type
	UniversityController     *appControllers.UniversityController
	RecommendationController *appControllers.RecommendationController
	StatsController          *appControllers.StatsController
	HealthController         *appControllers.HealthController
	Repos                    *appRepos.Repositories // Include the main repo container
	Scheduler                *ingest.Scheduler      // nil unless dataset refresh is enabled
	Logger                   zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// Load .env first so its variables take part in config overrides. A
	// missing file is fine, deployments usually set real env vars instead.
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment variables from .env")
	}

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err // Return zero logger and the error
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
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

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Create Default Data (after migrations)
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't necessarily fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Initialize services
	deps.UniversityService = appServices.NewUniversityService(deps.Repos.UniversityRepository)
	deps.RecommendationService = appServices.NewRecommendationService(deps.Repos.UniversityRepository)
	deps.StatsService = appServices.NewStatsService(deps.Repos.UniversityRepository)

	// Initialize controllers
	deps.UniversityController = appControllers.NewUniversityController(deps.UniversityService)
	deps.RecommendationController = appControllers.NewRecommendationController(deps.RecommendationService)
	deps.StatsController = appControllers.NewStatsController(deps.StatsService)
	deps.HealthController = appControllers.NewHealthController(dbPool, deps.Repos.UniversityRepository)

	// Scheduled dataset refresh re-imports the CSV export in the background
	if cfg.Dataset.RefreshEnabled {
		importer := ingest.NewImporter(deps.Repos.UniversityRepository)
		deps.Scheduler = ingest.NewScheduler(importer, cfg.Dataset.Path, cfg.Dataset.RefreshSchedule)
		lgr.Info().Str("schedule", cfg.Dataset.RefreshSchedule).Msg("Dataset refresh enabled")
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		appMiddleware.Metrics(),
	)

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Prometheus exposition
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.UniversityController,
		deps.RecommendationController,
		deps.StatsController,
		deps.HealthController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
