package booking

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

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	amenities := api.Group("/amenities")
	{
		amenities.GET("", h.ListAmenities)
		amenities.GET("/:id/availability", h.GetAvailability)
		amenities.POST("/:id/book", middleware.RequireRole("resident"), h.Book)
	}

	bookings := api.Group("/bookings")
	{
		bookings.GET("/history", h.History)

		staff := bookings.Group("", middleware.RequireAnyRole("security", "admin"))
		staff.GET("/pending", h.Pending)
		staff.GET("/all-history", h.AllHistory)
		staff.PUT("/status/:id", h.UpdateStatus)
	}
}

func (h *Handler) ListAmenities(c *gin.Context) {
	amenities, err := h.service.ListAmenities(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list amenities")
		return
	}
	response.Success(c, http.StatusOK, amenities)
}

func (h *Handler) GetAvailability(c *gin.Context) {
	amenityID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid amenity id")
		return
	}
	date := c.Query("date")
	if date == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date query parameter is required")
		return
	}

	avail, err := h.service.GetAvailability(c.Request.Context(), amenityID, date)
	if err != nil {
		switch {
		case errors.Is(err, ErrAmenityNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrInvalidDate):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to get availability")
		}
		return
	}
	response.Success(c, http.StatusOK, avail)
}

func (h *Handler) Book(c *gin.Context) {
	amenityID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid amenity id")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", errs)
		return
	}

	userID := c.GetInt64("user_id")
	resp, err := h.service.Book(c.Request.Context(), userID, amenityID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrAmenityNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrSlotTaken):
			response.Error(c, http.StatusConflict, "SLOT_TAKEN", err.Error())
		case errors.Is(err, ErrInvalidSlot), errors.Is(err, ErrPastSlot):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to create booking")
		}
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid booking id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", errs)
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), bookingID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
		case errors.Is(err, ErrSlotTaken):
			response.Error(c, http.StatusConflict, "SLOT_TAKEN", err.Error())
		case errors.Is(err, ErrReasonRequired):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to update booking")
		}
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Pending(c *gin.Context) {
	rows, err := h.service.GetPending(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list pending bookings")
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) History(c *gin.Context) {
	rows, err := h.service.GetHistory(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list booking history")
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) AllHistory(c *gin.Context) {
	rows, err := h.service.GetAllHistory(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list booking history")
		return
	}
	response.Success(c, http.StatusOK, rows)
}
