// FILE: internal/controller/comparison_controller.go
// Controller for comparison reads and upserts
package controller

import (
	"compare-audius-be/internal/dto"
	"compare-audius-be/internal/pkg/serverutils"
	"compare-audius-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IComparisonController interface {
	RegisterRoutes(api fiber.Router)
}

type comparisonController struct {
	service service.IComparisonService
}

func NewComparisonController(service service.IComparisonService) IComparisonController {
	return &comparisonController{service: service}
}

func (c *comparisonController) RegisterRoutes(api fiber.Router) {
	h := api.Group("/comparisons")
	h.Get("/", c.GetAll)
	h.Post("/", c.BulkUpsert)
	h.Put("/:id", c.Update)
}

// GetAll lists comparisons, optionally for one feature (?featureId=)
// @Router /api/comparisons [get]
func (c *comparisonController) GetAll(ctx *fiber.Ctx) error {
	var query dto.ComparisonQuery
	if err := ctx.QueryParser(&query); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	res, err := c.service.GetAll(ctx.UserContext(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// BulkUpsert writes {items:[...]} in one transaction
// @Router /api/comparisons [post]
func (c *comparisonController) BulkUpsert(ctx *fiber.Ctx) error {
	var req dto.BulkUpsertComparisonsRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.BulkUpsert(ctx.UserContext(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// @Router /api/comparisons/{id} [put]
func (c *comparisonController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.RequireParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateComparisonRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.Update(ctx.UserContext(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
