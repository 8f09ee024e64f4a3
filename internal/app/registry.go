package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-jobboard/internal/admin"
	"go-jobboard/internal/advertisement"
	"go-jobboard/internal/application"
	"go-jobboard/internal/auth"
	"go-jobboard/internal/candidate"
	"go-jobboard/internal/company"
	"go-jobboard/internal/messaging/kafka"
	"go-jobboard/internal/middleware"
	"go-jobboard/internal/person"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	personRepo := person.NewRepository(db)
	authRepo := auth.NewRepository(db)
	companyRepo := company.NewRepository(db)
	adRepo := advertisement.NewRepository(db)
	applicationRepo := application.NewRepository(db)
	candidateRepo := candidate.NewRepository(db)
	adminRepo := admin.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	personService := person.NewService(personRepo)
	authService := auth.NewService(authRepo)
	companyService := company.NewService(db, companyRepo, personRepo)
	adService := advertisement.NewService(adRepo, companyRepo)
	applicationService := application.NewService(db, applicationRepo, personRepo, adRepo, outboxRepo)
	candidateService := candidate.NewService(db, candidateRepo, personRepo)
	adminService := admin.NewService(adminRepo, rdb)

	// --- Handlers ---
	personHandler := person.NewHandler(personService, logger)
	authHandler := auth.NewHandler(authService, logger)
	companyHandler := company.NewHandler(companyService, logger)
	adHandler := advertisement.NewHandler(adService, logger)
	applicationHandler := application.NewHandler(applicationService, logger)
	candidateHandler := candidate.NewHandler(candidateService, logger)
	adminHandler := admin.NewHandler(adminService, logger)

	// Every /admin route re-verifies the caller against the store.
	adminGuard := middleware.AdminGuard(personService)

	// --- Routes Registration ---
	api := router.Group("")
	{
		auth.RegisterRoutes(api, authHandler, logger)
		person.RegisterRoutes(api, personHandler, adminGuard, logger)
		company.RegisterRoutes(api, companyHandler, adminGuard, logger)
		advertisement.RegisterRoutes(api, adHandler, adminGuard, logger)
		application.RegisterRoutes(api, applicationHandler, adminGuard, logger)
		candidate.RegisterRoutes(api, candidateHandler, logger)
		admin.RegisterRoutes(api, adminHandler, adminGuard, logger)
	}

	return nil
}
