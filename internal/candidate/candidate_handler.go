package candidate

import (
	"net/http"
	"strconv"

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
	l := zap.L().Named("candidate.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("candidate.handler")
	}
	return &Handler{svc: service, logger: l}
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, apperror.InvalidField(name)
	}
	return uint(id), nil
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	id, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Candidate created successfully", gin.H{"person_id": id})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Profile updated successfully", nil)
}
