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

	appControllers "github.com/doruk/courseatlas/internal/app/controllers"
	appMigrations "github.com/doruk/courseatlas/internal/app/migrations"
	appRepos "github.com/doruk/courseatlas/internal/app/repositories"
	appRoutes "github.com/doruk/courseatlas/internal/app/routes"
	appServices "github.com/doruk/courseatlas/internal/app/services"
	"github.com/doruk/courseatlas/internal/config"
	"github.com/doruk/courseatlas/internal/db"
	appMiddleware "github.com/doruk/courseatlas/internal/middleware"
	"github.com/doruk/courseatlas/internal/pkg/cache"
	"github.com/doruk/courseatlas/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService    appServices.CourseService // Interface type
	TagService       appServices.TagService    // Interface type
	CourseController *appControllers.CourseController
	TagController    *appControllers.TagController
	Repos            *appRepos.Repositories
	Cache            *cache.Cache // nil when disabled or unreachable
	Logger           zerolog.Logger
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

	return dbPool, nil
}

// SetupCache connects to the result cache. The cache is optional: a missing
// or unreachable cache downgrades to direct store reads with a warning,
// it never fails startup.
func SetupCache(cfg *config.Config, lgr zerolog.Logger) *cache.Cache {
	if !cfg.Cache.Enabled {
		lgr.Info().Msg("Result cache disabled")
		return nil
	}

	c, err := cache.New(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
	if err != nil {
		lgr.Warn().Err(err).Str("addr", cfg.Cache.Addr).Msg("Result cache unreachable, proceeding without caching")
		return nil
	}
	lgr.Info().Str("addr", cfg.Cache.Addr).Msg("Result cache connected")
	return c
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, resultCache *cache.Cache, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Cache: resultCache}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.CourseService = appServices.NewCourseService(deps.Repos.Course, resultCache, cfg.CacheTTL())
	deps.TagService = appServices.NewTagService(deps.Repos.Tag)

	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.TagController = appControllers.NewTagController(deps.TagService)

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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS())

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.TagController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
