package main

import (
	"log"

	"garage-dashboard/cmd"
	"garage-dashboard/internal/data/repository"
	"garage-dashboard/internal/wire"
	"garage-dashboard/pkg/cache"
	"garage-dashboard/pkg/database"
	"garage-dashboard/pkg/realtime"
	"garage-dashboard/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Availability cache is optional; it stays nil without a redis
	// address and lookups fall through to the database.
	availCache, err := cache.New(config.Redis, logger)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	if availCache != nil {
		defer availCache.Close()
		logger.Info("Redis cache connected", zap.String("addr", config.Redis.Addr))
	}

	// Realtime hub pushes dashboard events over websockets.
	hub := realtime.NewHub(logger)
	go hub.Run()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, availCache, hub, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
