package main

import (
	"flag"
	"log"

	"github.com/piresc/roundup/internal/pkg/config"
	"github.com/piresc/roundup/internal/pkg/database"
	"github.com/piresc/roundup/internal/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config/roundup.env", "env file loaded when APP_ENV=local")
	direction := flag.String("direction", "up", "up applies pending migrations, down rolls back")
	steps := flag.Int("steps", 1, "number of migrations to roll back with -direction=down")
	flag.Parse()

	configs := config.InitConfig(*configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nil)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	db := postgresClient.GetDB().DB
	path := configs.Database.MigrationsPath

	switch *direction {
	case "up":
		err = database.RunMigrations(db, path, configs.Database.Database)
	case "down":
		err = database.RollbackMigrations(db, path, configs.Database.Database, *steps)
	default:
		zapLogger.Fatal("Unknown direction", zap.String("direction", *direction))
	}
	if err != nil {
		zapLogger.Fatal("Migration failed", zap.String("direction", *direction), zap.Error(err))
	}
	zapLogger.Info("Migration finished", zap.String("direction", *direction))
}
