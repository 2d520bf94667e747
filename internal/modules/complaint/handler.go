package complaint

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"societyhub/internal/domain"
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
	rg.POST("", middleware.RequireRole("resident"), h.Create)
	rg.GET("", h.List)
	rg.PUT("/:id", middleware.RequireRole("resident"), h.Update)
	rg.PUT("/:id/resolve", middleware.AdminOnly(), h.Resolve)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", errs)
		return
	}

	created, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to create complaint")
		return
	}
	response.Success(c, http.StatusCreated, created)
}

func (h *Handler) List(c *gin.Context) {
	role := domain.UserRole(c.GetString("role"))
	rows, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"), role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list complaints")
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid complaint id")
		return
	}

	var req UpdateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", errs)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrComplaintNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
		case errors.Is(err, ErrAlreadyResolved):
			response.Error(c, http.StatusConflict, "ALREADY_RESOLVED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to update complaint")
		}
		return
	}
	response.Success(c, http.StatusOK, updated)
}

func (h *Handler) Resolve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid complaint id")
		return
	}

	var req ResolveComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", errs)
		return
	}

	resolved, err := h.service.Resolve(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrComplaintNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrAlreadyResolved):
			response.Error(c, http.StatusConflict, "ALREADY_RESOLVED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to resolve complaint")
		}
		return
	}
	response.Success(c, http.StatusOK, resolved)
}
