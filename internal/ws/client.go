package ws

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 64
)

// Client wraps one websocket connection. Two goroutines per connection:
// ReadPump detects disconnects and keeps the read deadline fresh, WritePump
// drains the send buffer and heartbeats on its own timer. Neither ever
// holds a game lock.
type Client struct {
	ID       string
	GameID   string
	PlayerID string

	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	// closed is guarded by hub.mu.
	closed bool
}

func NewClient(hub *Hub, conn *websocket.Conn, gameID, playerID string) *Client {
	return &Client{
		ID:       uuid.NewString(),
		GameID:   gameID,
		PlayerID: playerID,
		hub:      hub,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
	}
}

// ReadPump blocks until the connection drops. Subscribers only listen, so
// inbound payloads are discarded; reads exist to notice closure and pongs.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws: read error: %v", err)
			}
			return
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
