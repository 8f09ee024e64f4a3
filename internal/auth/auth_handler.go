package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-jobboard/internal/shared/apperror"
	"go-jobboard/internal/shared/response"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	if err := h.svc.Register(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Account created successfully", nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	user, err := h.svc.Login(c.Request.Context(), *req.Email, *req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Login successful", gin.H{"user": user})
}
