package livefeed

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"fleetrental/internal/logger"
	"fleetrental/internal/pkg/jwt"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	hub        *Hub
	jwtService *jwt.Service
}

func NewHandler(hub *Hub, jwtService *jwt.Service) *Handler {
	return &Handler{hub: hub, jwtService: jwtService}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/ws/livefeed", h.HandleWebSocket)
}

// HandleWebSocket upgrades the connection and streams fleet events.
// Browsers cannot set headers on WebSocket upgrades, so the token comes
// through a query parameter.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required. Use ?token=YOUR_JWT_TOKEN"})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Error("websocket upgrade failed", "error", err)
		return
	}

	logger.Info("livefeed client connected", "user_id", claims.UserID)
	h.hub.ServeWS(conn, claims.UserID)
	logger.Info("livefeed client disconnected", "user_id", claims.UserID)
}
