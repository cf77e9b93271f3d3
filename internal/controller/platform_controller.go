// FILE: internal/controller/platform_controller.go
// Controller for platform CRUD endpoints
package controller

import (
	"compare-audius-be/internal/dto"
	"compare-audius-be/internal/pkg/serverutils"
	"compare-audius-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPlatformController interface {
	RegisterRoutes(api fiber.Router)
}

type platformController struct {
	service service.IPlatformService
}

func NewPlatformController(service service.IPlatformService) IPlatformController {
	return &platformController{service: service}
}

func (c *platformController) RegisterRoutes(api fiber.Router) {
	h := api.Group("/platforms")
	h.Get("/", c.GetAll)
	h.Post("/", c.Create)
	h.Get("/:id", c.GetById)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

// GetAll lists every platform, drafts included
// @Router /api/platforms [get]
func (c *platformController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// @Router /api/platforms/{id} [get]
func (c *platformController) GetById(ctx *fiber.Ctx) error {
	id, err := serverutils.RequireParam(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.GetById(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// Create adds a draft platform
// @Router /api/platforms [post]
func (c *platformController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePlatformRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.Create(ctx.UserContext(), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

// Update applies a partial update, including the publish toggle
// @Router /api/platforms/{id} [put]
func (c *platformController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.RequireParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.UpdatePlatformRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.Update(ctx.UserContext(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// @Router /api/platforms/{id} [delete]
func (c *platformController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.RequireParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse())
}
