// FILE: internal/controller/page_controller.go
// Public comparison pages, the login page and HTML error pages
package controller

import (
	"compare-audius-be/internal/config"
	"compare-audius-be/internal/pkg/logger"
	"compare-audius-be/internal/service"
	"compare-audius-be/internal/web"

	"github.com/gofiber/fiber/v2"
)

type IPageController interface {
	// RegisterRoutes mounts /login and /:competitor. Call it after every
	// other top-level route.
	RegisterRoutes(app fiber.Router)
	RenderError(ctx *fiber.Ctx, status int, message string) error
}

type pageController struct {
	pages    service.IPageService
	renderer *web.Renderer
	site     web.Site
	logger   logger.ILogger
}

func NewPageController(pages service.IPageService, renderer *web.Renderer, site config.SiteConfig, logger logger.ILogger) IPageController {
	return &pageController{
		pages:    pages,
		renderer: renderer,
		site:     web.Site{Name: site.Name, URL: site.URL},
		logger:   logger,
	}
}

func (c *pageController) RegisterRoutes(app fiber.Router) {
	app.Get("/login", c.Login)
	app.Get("/", c.Comparison)
	app.Get("/:competitor", c.Comparison)
}

// Comparison serves the cached page, rendering it on a miss
func (c *pageController) Comparison(ctx *fiber.Ctx) error {
	entry, err := c.pages.Page(ctx.UserContext(), ctx.Path())
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, entry.ContentType)
	return ctx.Send(entry.Body)
}

func (c *pageController) Login(ctx *fiber.Ctx) error {
	return c.render(ctx, fiber.StatusOK, web.PageLogin, web.LoginView{Site: c.site, Error: ctx.Query("error")})
}

// RenderError is the HTML fallback of the error handler
func (c *pageController) RenderError(ctx *fiber.Ctx, status int, message string) error {
	if status == fiber.StatusNotFound {
		message = "The comparison you are looking for does not exist."
	}
	return c.render(ctx, status, web.PageError, web.ErrorView{Site: c.site, Status: status, Message: message})
}

func (c *pageController) render(ctx *fiber.Ctx, status int, page string, data interface{}) error {
	body, err := c.renderer.Render(page, data)
	if err != nil {
		c.logger.Error("HTTP", "Template render failed", map[string]interface{}{"page": page, "error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Status(status).Send(body)
}
