package handlers

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"almanac/services"
)

// ReminderHandler streams reminder notifications to connected clients.
type ReminderHandler struct {
	Broadcaster *services.Broadcaster
}

func NewReminderHandler(broadcaster *services.Broadcaster) *ReminderHandler {
	return &ReminderHandler{Broadcaster: broadcaster}
}

// WebSocketUpgrade is middleware to upgrade HTTP to WebSocket
func (h *ReminderHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// StreamReminders pushes each reminder notification to the client until
// the client disconnects
func (h *ReminderHandler) StreamReminders(conn *websocket.Conn) {
	ch := h.Broadcaster.Subscribe()
	defer h.Broadcaster.Unsubscribe(ch)

	// Drain client frames so we notice the disconnect.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case message, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(message)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
