package admin

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
	overview := r.Group("/admin/overview")
	overview.Use(middleware.ContextLogger(logger))
	overview.Use(adminGuard)
	{
		overview.GET("", handler.Overview)
	}
}
