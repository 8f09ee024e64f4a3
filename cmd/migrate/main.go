package main

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-jobboard/db/migrations"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	dir := os.Getenv("MIGRATIONS_DIR")
	if dir == "" {
		dir = "db/migrations/sql"
	}

	if err := migrations.Run(dir); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	logger.Info("migrations applied")
}
