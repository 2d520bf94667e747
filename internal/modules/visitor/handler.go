package visitor

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
	rg.POST("/checkin", middleware.RequireRole("resident"), h.Checkin)
	rg.POST("/verify-pin/:id", middleware.RequireAnyRole("security", "admin"), h.VerifyPIN)
	rg.POST("/checkout/:id", middleware.RequireAnyRole("security", "admin"), h.Checkout)
	rg.GET("/current", middleware.RequireAnyRole("security", "admin"), h.Current)
	rg.GET("/history", h.History)
}

func (h *Handler) Checkin(c *gin.Context) {
	var req CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", errs)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to register visitor")
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) VerifyPIN(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid visitor id")
		return
	}

	var req VerifyPINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", errs)
		return
	}

	resp, err := h.service.VerifyPIN(c.Request.Context(), id, req.PIN)
	if err != nil {
		switch {
		case errors.Is(err, ErrVisitorNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrWrongPIN):
			response.Error(c, http.StatusUnauthorized, "WRONG_PIN", err.Error())
		case errors.Is(err, ErrAlreadyCheckedIn):
			response.Error(c, http.StatusConflict, "ALREADY_CHECKED_IN", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to verify pin")
		}
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Checkout(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid visitor id")
		return
	}

	resp, err := h.service.Checkout(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrVisitorNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrNotCheckedIn):
			response.Error(c, http.StatusConflict, "NOT_CHECKED_IN", err.Error())
		case errors.Is(err, ErrAlreadyCheckedOut):
			response.Error(c, http.StatusConflict, "ALREADY_CHECKED_OUT", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to check out visitor")
		}
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Current(c *gin.Context) {
	rows, err := h.service.GetCurrent(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list current visitors")
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) History(c *gin.Context) {
	role := domain.UserRole(c.GetString("role"))
	rows, err := h.service.GetHistory(c.Request.Context(), c.GetInt64("user_id"), role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list visitor history")
		return
	}
	response.Success(c, http.StatusOK, rows)
}
