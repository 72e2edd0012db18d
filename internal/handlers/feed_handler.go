package handlers

import (
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	livews "github.com/saeid-a/HealthMetricsBack/internal/websocket"
)

// WebSocketUpgrade rejects plain HTTP requests on the feed endpoint.
func (h *MeasurementHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// HandleWebSocket attaches a client to the live measurement feed until the
// connection drops.
func (h *MeasurementHandler) HandleWebSocket(conn *websocket.Conn) {
	client := livews.NewClient(h.hub, conn)
	h.hub.Register(client)

	go client.WritePump()
	client.ReadPump()
}
