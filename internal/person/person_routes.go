package person

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
	users := r.Group("/admin/users")
	users.Use(middleware.ContextLogger(logger))
	users.Use(adminGuard)
	{
		users.GET("", handler.List)
		users.POST("", handler.Create)
		users.PUT("/:id", handler.Update)
		users.DELETE("/:id", handler.Delete)
	}

	admins := r.Group("/admin/admins")
	admins.Use(middleware.ContextLogger(logger))
	admins.Use(adminGuard)
	{
		admins.POST("", handler.CreateAdmin)
	}
}
