// FILE: internal/controller/admin_page_controller.go
// Server-rendered admin views. Forms on these pages call the JSON API.
package controller

import (
	"compare-audius-be/internal/config"
	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/pkg/logger"
	"compare-audius-be/internal/pkg/serverutils"
	"compare-audius-be/internal/service"
	"compare-audius-be/internal/web"

	"github.com/gofiber/fiber/v2"
)

type IAdminPageController interface {
	// RegisterRoutes mounts the views on a router already behind the
	// page-mode session gate
	RegisterRoutes(admin fiber.Router)
}

type adminPageController struct {
	catalog  service.ICatalogService
	renderer *web.Renderer
	site     web.Site
	logger   logger.ILogger
}

func NewAdminPageController(catalog service.ICatalogService, renderer *web.Renderer, site config.SiteConfig, logger logger.ILogger) IAdminPageController {
	return &adminPageController{
		catalog:  catalog,
		renderer: renderer,
		site:     web.Site{Name: site.Name, URL: site.URL},
		logger:   logger,
	}
}

func (c *adminPageController) RegisterRoutes(admin fiber.Router) {
	admin.Get("/", c.Dashboard)
	admin.Get("/platforms", c.Platforms)
	admin.Get("/platforms/new", c.NewPlatform)
	admin.Get("/platforms/:id", c.EditPlatform)
	admin.Get("/features", c.Features)
	admin.Get("/features/new", c.NewFeature)
	admin.Get("/features/:id", c.EditFeature)
	admin.Get("/comparisons", c.Comparisons)
}

func (c *adminPageController) view(ctx *fiber.Ctx, active string) web.AdminView {
	return web.AdminView{Site: c.site, User: serverutils.CurrentUser(ctx), Active: active}
}

func (c *adminPageController) Dashboard(ctx *fiber.Ctx) error {
	stats, err := c.catalog.GetDashboardStats(ctx.UserContext())
	if err != nil {
		return err
	}
	competitors, err := c.catalog.GetCompetitors(ctx.UserContext())
	if err != nil {
		return err
	}
	return c.render(ctx, web.PageAdminDashboard, web.DashboardView{
		AdminView:   c.view(ctx, "dashboard"),
		Stats:       stats,
		Competitors: competitors,
	})
}

func (c *adminPageController) Platforms(ctx *fiber.Ctx) error {
	platforms, err := c.catalog.GetAllPlatforms(ctx.UserContext())
	if err != nil {
		return err
	}
	return c.render(ctx, web.PageAdminPlatforms, web.PlatformsView{AdminView: c.view(ctx, "platforms"), Platforms: platforms})
}

func (c *adminPageController) NewPlatform(ctx *fiber.Ctx) error {
	return c.render(ctx, web.PageAdminPlatform, web.PlatformFormView{AdminView: c.view(ctx, "platforms")})
}

func (c *adminPageController) EditPlatform(ctx *fiber.Ctx) error {
	platform, err := c.catalog.GetPlatformById(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return c.render(ctx, web.PageAdminPlatform, web.PlatformFormView{AdminView: c.view(ctx, "platforms"), Platform: platform})
}

func (c *adminPageController) Features(ctx *fiber.Ctx) error {
	features, err := c.catalog.GetAllFeatures(ctx.UserContext())
	if err != nil {
		return err
	}
	completeness, err := c.completenessById(ctx)
	if err != nil {
		return err
	}

	rows := make([]web.FeatureRow, 0, len(features))
	for _, f := range features {
		rows = append(rows, web.FeatureRow{Feature: f, Completeness: completeness[f.Id]})
	}
	return c.render(ctx, web.PageAdminFeatures, web.FeaturesView{AdminView: c.view(ctx, "features"), Rows: rows})
}

func (c *adminPageController) NewFeature(ctx *fiber.Ctx) error {
	return c.render(ctx, web.PageAdminFeature, web.FeatureFormView{AdminView: c.view(ctx, "features")})
}

func (c *adminPageController) EditFeature(ctx *fiber.Ctx) error {
	feature, err := c.catalog.GetFeatureById(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	completeness, err := c.completenessById(ctx)
	if err != nil {
		return err
	}
	return c.render(ctx, web.PageAdminFeature, web.FeatureFormView{
		AdminView:    c.view(ctx, "features"),
		Feature:      feature,
		Completeness: completeness[feature.Id],
	})
}

func (c *adminPageController) Comparisons(ctx *fiber.Ctx) error {
	features, err := c.catalog.GetAllFeatures(ctx.UserContext())
	if err != nil {
		return err
	}
	platforms, err := c.catalog.GetAllPlatforms(ctx.UserContext())
	if err != nil {
		return err
	}
	comparisons, err := c.catalog.GetAllComparisons(ctx.UserContext(), "")
	if err != nil {
		return err
	}

	matrix := make(map[string]map[string]*entity.Comparison, len(features))
	for _, cmp := range comparisons {
		if matrix[cmp.FeatureId] == nil {
			matrix[cmp.FeatureId] = make(map[string]*entity.Comparison)
		}
		matrix[cmp.FeatureId][cmp.PlatformId] = cmp
	}

	return c.render(ctx, web.PageAdminCompare, web.ComparisonsView{
		AdminView: c.view(ctx, "comparisons"),
		Features:  features,
		Platforms: platforms,
		Matrix:    matrix,
	})
}

func (c *adminPageController) completenessById(ctx *fiber.Ctx) (map[string]*entity.FeatureCompleteness, error) {
	items, err := c.catalog.GetFeatureCompleteness(ctx.UserContext())
	if err != nil {
		return nil, err
	}
	byId := make(map[string]*entity.FeatureCompleteness, len(items))
	for _, item := range items {
		byId[item.FeatureId] = item
	}
	return byId, nil
}

func (c *adminPageController) render(ctx *fiber.Ctx, page string, data interface{}) error {
	body, err := c.renderer.Render(page, data)
	if err != nil {
		c.logger.Error("HTTP", "Template render failed", map[string]interface{}{"page": page, "error": err.Error()})
		return err
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Send(body)
}
