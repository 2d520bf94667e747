package vehicle

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"societyhub/internal/middleware"
	"societyhub/internal/pkg/response"
	"societyhub/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	resident := rg.Group("", middleware.RequireRole("resident"))
	resident.POST("", h.Create)
	resident.GET("", h.List)
	resident.PUT("/:id", h.Update)
	resident.DELETE("/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", errs)
		return
	}

	v, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to register vehicle")
		return
	}
	response.Success(c, http.StatusCreated, v)
}

func (h *Handler) List(c *gin.Context) {
	vehicles, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list vehicles")
		return
	}
	response.Success(c, http.StatusOK, vehicles)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid vehicle id")
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", errs)
		return
	}

	v, err := h.service.Update(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err, "failed to update vehicle")
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid vehicle id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		h.writeError(c, err, "failed to delete vehicle")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrVehicleNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", fallback)
	}
}
