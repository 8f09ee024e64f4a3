package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-jobboard/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	group := r.Group("")
	group.Use(middleware.ContextLogger(logger))
	{
		group.POST("/register", handler.Register)
		group.POST("/login", handler.Login)
	}
}
