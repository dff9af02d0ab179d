package websocket

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RequireUpgrade rejects plain HTTP requests on websocket routes.
func RequireUpgrade(ctx *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(ctx) {
		return ctx.Next()
	}
	return fiber.ErrUpgradeRequired
}

// ServeWs registers the connection with the hub and blocks until it closes.
func ServeWs(hub *Hub, c *websocket.Conn) {
	client := &Client{
		Hub:        hub,
		Conn:       c,
		RemoteAddr: c.RemoteAddr().String(),
		Send:       make(chan []byte, 256),
	}
	if !hub.join(client) {
		c.Close()
		return
	}

	go client.writePump()
	client.readPump()
}

// RegisterRoutes mounts the note event stream at /ws/notes.
func RegisterRoutes(r fiber.Router, hub *Hub) {
	ws := r.Group("/ws", RequireUpgrade)
	ws.Get("/notes", websocket.New(func(c *websocket.Conn) {
		ServeWs(hub, c)
	}))
}
