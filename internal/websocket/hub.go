package livews

import (
	"encoding/json"
	"log"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/saeid-a/HealthMetricsBack/internal/models"
)

// Hub fans newly created measurements out to every connected feed client.
// The feed is one-way; client frames are read and discarded to keep the
// connection's control frames flowing.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

type feedEvent struct {
	Type        string              `json:"type"`
	Measurement *models.Measurement `json:"measurement"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
	}
}

func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 32),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
		case client := <-h.unregister:
			if _, exists := h.clients[client]; exists {
				delete(h.clients, client)
				close(client.send)
			}
		case payload := <-h.broadcast:
			h.deliver(payload)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// BroadcastMeasurement queues a measurement_created event for all connected
// clients. Slow clients are dropped rather than stalling the hub.
func (h *Hub) BroadcastMeasurement(measurement *models.Measurement) {
	payload, err := json.Marshal(feedEvent{
		Type:        "measurement_created",
		Measurement: measurement,
	})
	if err != nil {
		log.Printf("feed hub encode event: %v", err)
		return
	}
	h.broadcast <- payload
}

func (h *Hub) deliver(payload []byte) {
	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			delete(h.clients, client)
			close(client.send)
		}
	}
}

func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) WritePump() {
	defer func() {
		_ = c.conn.Close()
	}()

	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}
