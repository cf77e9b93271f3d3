package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// Serve registers the connection and blocks until it closes
func Serve(hub *Hub, conn *websocket.Conn, email string) {
	client := NewClient(hub, conn, email)
	hub.register <- client

	go client.writePump()
	client.readPump()
}
