package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"societyhub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
}

func (h *Handler) List(c *gin.Context) {
	notifs, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list notifications")
		return
	}
	response.Success(c, http.StatusOK, notifs)
}
