package candidate

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-jobboard/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	candidates := r.Group("/candidates")
	candidates.Use(middleware.ContextLogger(logger))
	{
		candidates.POST("", handler.Create)
		candidates.GET("/:id", handler.Get)
		candidates.PUT("/:id", handler.Update)
	}
}
