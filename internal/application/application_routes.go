package application

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
	apps := r.Group("/applications")
	apps.Use(middleware.ContextLogger(logger))
	{
		apps.POST("", handler.Submit)
		apps.GET("/applicant/:id", handler.ListByApplicant)
		apps.DELETE("/:id", handler.Delete)
	}

	r.GET("/advertisements/:id/candidates", middleware.ContextLogger(logger), handler.ListCandidatesByAd)

	admin := r.Group("/admin/applications")
	admin.Use(middleware.ContextLogger(logger))
	admin.Use(adminGuard)
	{
		admin.GET("", handler.ListDetailed)
		admin.PATCH("/:id", handler.UpdateStatus)
		admin.DELETE("/:id", handler.AdminDelete)
	}
}
