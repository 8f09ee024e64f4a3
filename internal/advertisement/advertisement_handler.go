package advertisement

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
	l := zap.L().Named("advertisement.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("advertisement.handler")
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

func (h *Handler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListByCompany(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	resp, err := h.svc.ListByCompany(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	id, err := h.svc.Create(c.Request.Context(), req, false)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Advertisement created", gin.H{"ad_id": id})
}

func (h *Handler) AdminCreate(c *gin.Context) {
	var req CreateAdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	id, err := h.svc.Create(c.Request.Context(), req, true)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Advertisement created successfully", gin.H{"ad_id": id})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req UpdateAdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	// Company reassignment is an admin-surface capability.
	req.CompanyID = nil

	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Advertisement updated successfully", nil)
}

func (h *Handler) AdminUpdate(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req UpdateAdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Advertisement updated successfully", nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Advertisement deleted successfully", nil)
}
