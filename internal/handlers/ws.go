package handlers

import (
	"log"
	"net/http"

	"github.com/pelinsarix/themind/internal/services"
	"github.com/pelinsarix/themind/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	gameService *services.GameService
	hub         *ws.Hub
}

func NewWSHandler(gameService *services.GameService, hub *ws.Hub) *WSHandler {
	return &WSHandler{gameService: gameService, hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      Subscribe to real-time game state pushes
// @Description  Every state-changing operation pushes the full game state to all subscribers.
// @Tags         websocket
// @Param        game_id path string true "Game ID"
// @Param        player query string false "Player ID for targeted delivery"
// @Router       /ws/{game_id} [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	gameID := c.Param("game_id")
	if !h.gameService.GameExists(gameID) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "game not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	client := ws.NewClient(h.hub, conn, gameID, c.Query("player"))
	h.hub.Register(client)

	go client.WritePump()
	client.ReadPump()
}
