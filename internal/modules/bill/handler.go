package bill

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
	rg.GET("", h.List)
	rg.POST("", middleware.AdminOnly(), h.Create)
	rg.PUT("/:id", middleware.AdminOnly(), h.Update)
	rg.DELETE("/:id", middleware.AdminOnly(), h.Delete)
	rg.POST("/:id/pay", middleware.RequireRole("resident"), h.Pay)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", errs)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to create bill")
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) List(c *gin.Context) {
	role := domain.UserRole(c.GetString("role"))
	bills, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"), role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list bills")
		return
	}
	response.Success(c, http.StatusOK, bills)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid bill id")
		return
	}

	var req UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", errs)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to update bill")
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid bill id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to delete bill")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Pay(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid bill id")
		return
	}

	resp, err := h.service.Pay(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrBillNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
		case errors.Is(err, ErrAlreadyPaid):
			response.Error(c, http.StatusConflict, "ALREADY_PAID", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to pay bill")
		}
		return
	}
	response.Success(c, http.StatusOK, resp)
}
