package notification

import (
	"log"
	"net/http"

	"andaman/internal/domain"
	jwtsvc "andaman/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins in dev; tighten via a reverse proxy in production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler upgrades vendor notification connections.
type WSHandler struct {
	hub *Hub
	jwt *jwtsvc.Service
}

func NewWSHandler(hub *Hub, jwt *jwtsvc.Service) *WSHandler {
	return &WSHandler{hub: hub, jwt: jwt}
}

// HandleWebSocket serves GET /ws/vendor?token=JWT. Token travels as a query
// parameter because browsers cannot set headers on WebSocket upgrades.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Token is required. Use ?token=YOUR_JWT_TOKEN",
		})
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	if claims.RoleID != domain.RoleVendor {
		c.JSON(http.StatusForbidden, gin.H{"error": "Vendor account required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed user_id=%d err=%v", claims.UserID, err)
		return
	}

	h.hub.ServeWS(conn, claims.UserID)
}
