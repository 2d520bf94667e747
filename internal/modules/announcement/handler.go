package announcement

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
	rg.GET("", h.List)
	rg.POST("", middleware.AdminOnly(), h.Create)
	rg.PUT("/:id", middleware.AdminOnly(), h.Update)
	rg.DELETE("/:id", middleware.AdminOnly(), h.Delete)
	rg.POST("/:id/vote", middleware.RequireRole("resident"), h.Vote)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", errs)
		return
	}

	detail, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to create announcement")
		return
	}
	response.Success(c, http.StatusCreated, detail)
}

func (h *Handler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list announcements")
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid announcement id")
		return
	}

	var req UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", errs)
		return
	}

	detail, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrAnnouncementNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to update announcement")
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid announcement id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrAnnouncementNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to delete announcement")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Vote(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid announcement id")
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", errs)
		return
	}

	result, err := h.service.Vote(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoPoll), errors.Is(err, ErrOptionNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to record vote")
		}
		return
	}
	response.Success(c, http.StatusOK, result)
}
