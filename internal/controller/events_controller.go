// FILE: internal/controller/events_controller.go
package controller

import (
	"compare-audius-be/internal/pkg/logger"
	"compare-audius-be/internal/pkg/serverutils"
	internalWS "compare-audius-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type IEventsController interface {
	RegisterRoutes(api fiber.Router)
}

type eventsController struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewEventsController(hub *internalWS.Hub, logger logger.ILogger) IEventsController {
	return &eventsController{hub: hub, logger: logger}
}

func (c *eventsController) RegisterRoutes(api fiber.Router) {
	api.Get("/events", c.Stream)
}

// Stream upgrades to a websocket that carries revalidation notices
// @Router /api/events [get]
func (c *eventsController) Stream(ctx *fiber.Ctx) error {
	user := serverutils.CurrentUser(ctx)
	if user == nil {
		return fiber.ErrUnauthorized
	}
	if !websocket.IsWebSocketUpgrade(ctx) {
		return fiber.ErrUpgradeRequired
	}

	email := user.Email
	return websocket.New(func(conn *websocket.Conn) {
		c.logger.Info("EVENTS", "Admin connected", map[string]interface{}{"email": email})
		internalWS.Serve(c.hub, conn, email)
		c.logger.Info("EVENTS", "Admin disconnected", map[string]interface{}{"email": email})
	})(ctx)
}
