package events

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"societyhub/internal/pkg/jwt"
)

// WSHandler upgrades authenticated clients onto the hub.
type WSHandler struct {
	hub        *Hub
	jwtService *jwt.Service
}

func NewWSHandler(hub *Hub, jwtService *jwt.Service) *WSHandler {
	return &WSHandler{hub: hub, jwtService: jwtService}
}

// HandleWebSocket serves GET /ws?token=JWT. The token travels in the
// query string because browser WebSocket clients cannot set headers.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   gin.H{"code": "UNAUTHORIZED", "message": "Token is required. Use ?token=YOUR_JWT_TOKEN"},
		})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   gin.H{"code": "UNAUTHORIZED", "message": "Invalid or expired token"},
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	log.Printf("User %d connected via WebSocket", claims.UserID)
	h.hub.ServeWS(conn, claims.UserID)
	log.Printf("User %d disconnected from WebSocket", claims.UserID)
}
