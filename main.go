package main

import (
	"context"
	"log"

	"github.com/mosqueradvd/cinema-monorepo/cmd"
	"github.com/mosqueradvd/cinema-monorepo/internal/data/memory"
	"github.com/mosqueradvd/cinema-monorepo/internal/data/repository"
	"github.com/mosqueradvd/cinema-monorepo/internal/wire"
	"github.com/mosqueradvd/cinema-monorepo/pkg/database"
	"github.com/mosqueradvd/cinema-monorepo/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("db_driver", config.Database.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	var repos *repository.Repository

	switch config.Database.Driver {
	case "memory":
		repos = memory.NewRepository(logger)
		logger.Info("Using in-memory store")
	default:
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := database.Migrate(context.Background(), db); err != nil {
			logger.Fatal("Failed to apply schema", zap.Error(err))
		}

		logger.Info("Database connected successfully")
		repos = repository.NewRepository(db, logger)
	}

	app := wire.Wiring(repos, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
