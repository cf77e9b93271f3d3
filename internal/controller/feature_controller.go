// FILE: internal/controller/feature_controller.go
// Controller for feature CRUD, ordering and completeness endpoints
package controller

import (
	"compare-audius-be/internal/dto"
	"compare-audius-be/internal/pkg/serverutils"
	"compare-audius-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFeatureController interface {
	RegisterRoutes(api fiber.Router)
}

type featureController struct {
	service service.IFeatureService
}

func NewFeatureController(service service.IFeatureService) IFeatureController {
	return &featureController{service: service}
}

func (c *featureController) RegisterRoutes(api fiber.Router) {
	h := api.Group("/features")
	h.Get("/", c.GetAll)
	h.Post("/", c.Create)
	// static segments before /:id
	h.Get("/completeness", c.GetCompleteness)
	h.Post("/reorder", c.Reorder)
	h.Get("/:id", c.GetById)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

// @Router /api/features [get]
func (c *featureController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// @Router /api/features/{id} [get]
func (c *featureController) GetById(ctx *fiber.Ctx) error {
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

// GetCompleteness reports comparison coverage per feature
// @Router /api/features/completeness [get]
func (c *featureController) GetCompleteness(ctx *fiber.Ctx) error {
	res, err := c.service.GetCompleteness(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// @Router /api/features [post]
func (c *featureController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateFeatureRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.Create(ctx.UserContext(), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

// @Router /api/features/{id} [put]
func (c *featureController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.RequireParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateFeatureRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.Update(ctx.UserContext(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// @Router /api/features/{id} [delete]
func (c *featureController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.RequireParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse())
}

// Reorder writes all positions in one transaction
// @Router /api/features/reorder [post]
func (c *featureController) Reorder(ctx *fiber.Ctx) error {
	var req dto.ReorderFeaturesRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}
	if err := c.service.Reorder(ctx.UserContext(), req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse())
}
