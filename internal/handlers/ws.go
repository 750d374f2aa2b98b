package handlers

import (
	"log"
	"net/http"

	"typing-race-backend/internal/services"
	"typing-race-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub            *ws.Hub
	sessionService *services.SessionService
}

func NewWSHandler(hub *ws.Hub, sessionService *services.SessionService) *WSHandler {
	return &WSHandler{hub: hub, sessionService: sessionService}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      Subscribe to session change events
// @Description  Delivery is at-least-once and events carry no complete payload: treat every message as a cue to re-fetch session state.
// @Tags         websocket
// @Param        id path string true "Session ID"
// @Router       /ws/sessions/{id} [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	sessionID := c.Param("id")

	// Stale sessions are reclassified before a new observer attaches.
	if _, err := h.sessionService.GetSession(sessionID); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(sessionID, conn)
	defer h.hub.RemoveConnection(sessionID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
