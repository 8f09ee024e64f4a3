package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"go-jobboard/internal/shared/connection"
)

// BuildApp connects the infrastructure and registers every module's routes
// on the router. Redis is optional: without REDIS_ADDR the overview endpoint
// simply skips its cache.
func BuildApp(router *gin.Engine) error {
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	var redisClient *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisClient, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
	} else {
		zap.L().Warn("REDIS_ADDR not set, overview cache disabled")
	}

	return registerModules(router, db, redisClient, zap.L())
}
