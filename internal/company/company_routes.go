package company

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-jobboard/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	adminGuard gin.HandlerFunc,
	logger *zap.Logger,
) {
	companies := r.Group("/companies")
	companies.Use(middleware.ContextLogger(logger))
	{
		companies.GET("", handler.List)
		companies.GET("/:id", handler.GetByID)
		companies.POST("", handler.Signup)
		companies.PUT("/:id", handler.Update)
	}

	admin := r.Group("/admin/companies")
	admin.Use(middleware.ContextLogger(logger))
	admin.Use(adminGuard)
	{
		admin.POST("", handler.Create)
		admin.PUT("/:id", handler.Update)
		admin.DELETE("/:id", handler.Delete)
	}
}
