package hub

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// PlayerValidator reports whether a player index exists in the layout
// being broadcast.
type PlayerValidator interface {
	ValidPlayer(int) bool
}

// Client represents a connected WebSocket client.
type Client struct {
	id          string
	hub         *Hub
	conn        *websocket.Conn
	send        chan []byte
	playerIndex int // player group this client is following
}

// NewClient creates a new Client attached to the hub.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		id:          uuid.NewString(),
		hub:         hub,
		conn:        conn,
		send:        make(chan []byte, 256),
		playerIndex: 1, // Default to player 1
	}
}

// ID returns the client's connection identifier, used in logs.
func (c *Client) ID() string {
	return c.id
}

// SetPlayerIndex sets the player index for this client.
func (c *Client) SetPlayerIndex(index int) {
	c.playerIndex = index
}

// WritePump sends messages from the send channel to the WebSocket connection.
func (c *Client) WritePump() {
	defer func() {
		c.conn.Close()
	}()

	for msg := range c.send {
		err := c.conn.WriteMessage(websocket.TextMessage, msg)
		if err != nil {
			break
		}
	}
}

// ReadPumpWithHandler reads messages from the WebSocket and handles client commands.
func (c *Client) ReadPumpWithHandler(players PlayerValidator, b *Broadcaster) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		// Parse client message
		var clientMsg ClientMessage
		if err := json.Unmarshal(message, &clientMsg); err != nil {
			log.Printf("Error parsing client message: %v", err)
			continue
		}

		switch clientMsg.Type {
		case "select_player":
			if players.ValidPlayer(clientMsg.PlayerIndex) {
				c.SetPlayerIndex(clientMsg.PlayerIndex)
				msg := NewPlayerSelectedMessage(clientMsg.PlayerIndex)
				data, _ := json.Marshal(msg)
				c.send <- data
				b.SendCurrentState(c)
				log.Printf("Client %s switched to player %d", c.id, clientMsg.PlayerIndex)
			} else {
				log.Printf("Client %s asked for player %d: invalid index", c.id, clientMsg.PlayerIndex)
			}
		}
	}
}
