package ws

import (
	"encoding/json"
	"log"
	"sync"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub is the session registry: live connections per game, plus a secondary
// per-player mapping for targeted delivery. It carries no authority over
// game state and is guarded by its own lock, so broadcasts never contend
// with the per-game gameplay locks.
type Hub struct {
	mu      sync.RWMutex
	games   map[string]map[*Client]bool
	players map[string]map[string]*Client
}

func NewHub() *Hub {
	return &Hub{
		games:   make(map[string]map[*Client]bool),
		players: make(map[string]map[string]*Client),
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	if h.games[client.GameID] == nil {
		h.games[client.GameID] = make(map[*Client]bool)
	}
	h.games[client.GameID][client] = true
	if client.PlayerID != "" {
		if h.players[client.GameID] == nil {
			h.players[client.GameID] = make(map[string]*Client)
		}
		h.players[client.GameID][client.PlayerID] = client
	}
	total := len(h.games[client.GameID])
	h.mu.Unlock()

	log.Printf("ws: client %s connected to game %s (total: %d)", client.ID, client.GameID, total)

	if client.PlayerID != "" {
		h.BroadcastToGameExcept(client.GameID, client, WSMessage{
			Type: "player_connected",
			Data: map[string]string{"player_id": client.PlayerID},
		})
	}
}

// Unregister removes the connection from both mappings and prunes empty
// game entries. The game rows themselves are never touched here. Safe to
// call more than once for the same client.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drop(client)
}

func (h *Hub) drop(client *Client) {
	if client.closed {
		return
	}
	client.closed = true

	if conns, ok := h.games[client.GameID]; ok {
		delete(conns, client)
		if len(conns) == 0 {
			delete(h.games, client.GameID)
		}
	}
	if byPlayer, ok := h.players[client.GameID]; ok {
		if byPlayer[client.PlayerID] == client {
			delete(byPlayer, client.PlayerID)
		}
		if len(byPlayer) == 0 {
			delete(h.players, client.GameID)
		}
	}
	close(client.send)
	log.Printf("ws: client %s disconnected from game %s", client.ID, client.GameID)
}

// BroadcastToGame pushes a message to every connection registered under the
// game. Enqueueing is non-blocking: a client whose buffer is full is
// dropped rather than allowed to stall anyone else's moves.
func (h *Hub) BroadcastToGame(gameID string, message WSMessage) {
	h.broadcast(gameID, nil, message)
}

func (h *Hub) BroadcastToGameExcept(gameID string, skip *Client, message WSMessage) {
	h.broadcast(gameID, skip, message)
}

func (h *Hub) broadcast(gameID string, skip *Client, message WSMessage) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.games[gameID] {
		if client == skip {
			continue
		}
		select {
		case client.send <- data:
		default:
			log.Printf("ws: client %s too slow, dropping", client.ID)
			h.drop(client)
		}
	}
}

// SendToPlayer delivers a message to one identified player's connection,
// if any.
func (h *Hub) SendToPlayer(gameID, playerID string, message WSMessage) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	client, ok := h.players[gameID][playerID]
	if !ok {
		return
	}
	select {
	case client.send <- data:
	default:
		h.drop(client)
	}
}

// ConnectionCount reports live connections for a game.
func (h *Hub) ConnectionCount(gameID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.games[gameID])
}
