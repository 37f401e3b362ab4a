package main

import (
	"github.com/gin-gonic/gin"

	"github.com/jfeliu/contentkit/internal/api"
	"github.com/jfeliu/contentkit/internal/config"
	"github.com/jfeliu/contentkit/internal/textgen"
	"github.com/jfeliu/contentkit/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.NewLogger("error").Fatal("Failed to load configuration:", err)
	}
	if err := cfg.Validate(); err != nil {
		utils.NewLogger("error").Fatal("Invalid configuration:", err)
	}

	logger := utils.NewLogger(cfg.App.LogLevel)
	logger.Info("Starting Content Toolkit Service")
	logger.Info("Environment: %s", cfg.App.Env)
	logger.Info("Log level: %s", cfg.App.LogLevel)
	logger.Info("Text generation provider: %s", cfg.TextGen.Provider)

	generator, err := textgen.NewFromConfig(cfg, logger)
	if err != nil {
		logger.Error("Failed to create text generation client: %v", err)
		logger.Fatal("Missing required configuration")
	}

	cache := utils.NewGenCache()
	handler := api.NewHandler(logger, generator, cache, cfg)

	if cfg.App.Env == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), api.RequestID())
	api.RegisterRoutes(router, handler)

	logger.Info("Starting server on port %s", cfg.App.ServerPort)
	logger.Info("Endpoints:")
	logger.Info("  GET  /health")
	logger.Info("  POST /api/title-case")
	logger.Info("  POST /api/keyword-density")
	logger.Info("  POST /api/blog-outline")
	logger.Info("  POST /api/meta-description")
	logger.Fatal(router.Run("0.0.0.0:" + cfg.App.ServerPort))
}
