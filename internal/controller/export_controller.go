// FILE: internal/controller/export_controller.go
// Controller for llms.txt, sitemap, robots and the spreadsheet export
package controller

import (
	"compare-audius-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const exportCacheControl = "public, max-age=3600, s-maxage=3600"

type IExportController interface {
	RegisterRoutes(app fiber.Router)
	RegisterAdminRoutes(api fiber.Router)
}

type exportController struct {
	service service.IExportService
}

func NewExportController(service service.IExportService) IExportController {
	return &exportController{service: service}
}

func (c *exportController) RegisterRoutes(app fiber.Router) {
	app.Get("/llms.txt", c.Llms)
	app.Get("/llms-full.txt", c.LlmsFull)
	app.Get("/sitemap.xml", c.Sitemap)
	app.Get("/robots.txt", c.Robots)
}

// RegisterAdminRoutes mounts the exports that need a session
func (c *exportController) RegisterAdminRoutes(api fiber.Router) {
	api.Get("/export/comparisons.xlsx", c.Workbook)
}

func (c *exportController) Llms(ctx *fiber.Ctx) error {
	body, err := c.service.LlmsTxt(ctx.UserContext())
	if err != nil {
		return err
	}
	return sendText(ctx, body)
}

func (c *exportController) LlmsFull(ctx *fiber.Ctx) error {
	body, err := c.service.LlmsFullTxt(ctx.UserContext())
	if err != nil {
		return err
	}
	return sendText(ctx, body)
}

func (c *exportController) Sitemap(ctx *fiber.Ctx) error {
	body, err := c.service.Sitemap(ctx.UserContext())
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	ctx.Set(fiber.HeaderCacheControl, exportCacheControl)
	return ctx.Send(body)
}

func (c *exportController) Robots(ctx *fiber.Ctx) error {
	return sendText(ctx, c.service.Robots())
}

// @Router /api/export/comparisons.xlsx [get]
func (c *exportController) Workbook(ctx *fiber.Ctx) error {
	body, err := c.service.ComparisonWorkbook(ctx.UserContext())
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Attachment("comparisons.xlsx")
	return ctx.Send(body)
}

func sendText(ctx *fiber.Ctx, body string) error {
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	ctx.Set(fiber.HeaderCacheControl, exportCacheControl)
	return ctx.SendString(body)
}
