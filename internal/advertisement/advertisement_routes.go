package advertisement

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
	ads := r.Group("/advertisements")
	ads.Use(middleware.ContextLogger(logger))
	{
		ads.GET("", handler.List)
		ads.GET("/:id", handler.GetByID)
		ads.POST("", handler.Create)
		ads.PUT("/:id", handler.Update)
		ads.DELETE("/:id", handler.Delete)
	}

	r.GET("/companies/:id/advertisements", middleware.ContextLogger(logger), handler.ListByCompany)

	admin := r.Group("/admin/advertisements")
	admin.Use(middleware.ContextLogger(logger))
	admin.Use(adminGuard)
	{
		admin.POST("", handler.AdminCreate)
		admin.PUT("/:id", handler.AdminUpdate)
		admin.DELETE("/:id", handler.Delete)
	}
}
