package server

import (
	"context"
	"net/http"
	"time"

	"compare-audius-be/internal/bootstrap"
	"compare-audius-be/internal/config"
	"compare-audius-be/internal/pkg/serverutils"
	"compare-audius-be/internal/web"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:             4 * 1024 * 1024, // uploads are capped at 2MB
		DisableStartupMessage: cfg.App.IsProduction(),
		// paths and query values are kept as cache keys after the request ends
		Immutable: true,
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger, container.PageController.RenderError))

	// Static
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(web.StaticFS()),
		MaxAge: 3600,
	}))

	// Routes
	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("HTTP", "Server is running", map[string]interface{}{"port": s.cfg.App.Port, "baseUrl": s.cfg.App.BaseURL})
	return s.app.Listen(":" + s.cfg.App.Port)
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	timeout := 10 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	return s.app.ShutdownWithTimeout(timeout)
}

// registerRoutes mounts handlers in match order: the auth endpoints before
// the /api session gate, and the /:competitor catch-all last.
func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")
	c.AuthController.RegisterRoutes(api)

	protected := api.Group("", serverutils.SessionMiddleware(c.SessionVerifier, serverutils.SessionModeAPI))
	c.PlatformController.RegisterRoutes(protected)
	c.FeatureController.RegisterRoutes(protected)
	c.ComparisonController.RegisterRoutes(protected)
	c.UploadController.RegisterRoutes(protected)
	c.DashboardController.RegisterRoutes(protected)
	c.ExportController.RegisterAdminRoutes(protected)
	c.EventsController.RegisterRoutes(protected)

	admin := app.Group("/admin", serverutils.SessionMiddleware(c.SessionVerifier, serverutils.SessionModePage))
	c.AdminPageController.RegisterRoutes(admin)

	c.ExportController.RegisterRoutes(app)
	c.PageController.RegisterRoutes(app)
}
