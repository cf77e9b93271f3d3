// FILE: internal/controller/dashboard_controller.go
package controller

import (
	"compare-audius-be/internal/service"
	"compare-audius-be/pkg/admin/mapper"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(api fiber.Router)
}

type dashboardController struct {
	catalog service.ICatalogService
}

func NewDashboardController(catalog service.ICatalogService) IDashboardController {
	return &dashboardController{catalog: catalog}
}

func (c *dashboardController) RegisterRoutes(api fiber.Router) {
	api.Get("/dashboard", c.GetStats)
}

// GetStats returns platform, feature and comparison counts
// @Router /api/dashboard [get]
func (c *dashboardController) GetStats(ctx *fiber.Ctx) error {
	stats, err := c.catalog.GetDashboardStats(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(mapper.DashboardToResponse(stats))
}
