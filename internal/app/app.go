package app

import (
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"modelboard_backend/database"
	"modelboard_backend/internal/config"
	"modelboard_backend/internal/handlers"
	"modelboard_backend/internal/logger"
	"modelboard_backend/internal/middleware"
	"modelboard_backend/internal/repositories"
	"modelboard_backend/internal/routes"
	"modelboard_backend/internal/services"
	"modelboard_backend/internal/validator"
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

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, sqlDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles middleware, services, handlers and routes. Split
// out of Run so tests can build the full engine against their own DB.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer, sqlDB)
	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	profileRepo := repositories.NewProfileRepository(gormDB)
	reviewRepo := repositories.NewReviewRepository(gormDB)

	return &services.ServiceContainer{
		RegistrationService: services.NewRegistrationService(profileRepo),
		SearchService:       services.NewSearchService(profileRepo, cfg.Search.DefaultCity, nil),
		ReviewService:       services.NewReviewService(reviewRepo, profileRepo),
	}
}

func initializeHandlers(sc *services.ServiceContainer, sqlDB *sql.DB) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		RegistrationHandler: handlers.NewRegistrationHandler(base, sc.RegistrationService),
		SearchHandler:       handlers.NewSearchHandler(base, sc.SearchService),
		ReviewHandler:       handlers.NewReviewHandler(base, sc.ReviewService),
		HealthHandler:       handlers.NewHealthHandler(sqlDB),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())

	// Wrong-method requests get the fixed 405 JSON body instead of gin's
	// default 404.
	ginRouter.HandleMethodNotAllowed = true
	ginRouter.NoMethod(middleware.MethodNotAllowedHandler())

	return ginRouter
}
