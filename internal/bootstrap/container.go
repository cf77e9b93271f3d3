package bootstrap

import (
	"context"
	"time"

	"compare-audius-be/internal/config"
	"compare-audius-be/internal/controller"
	"compare-audius-be/internal/pkg/logger"
	"compare-audius-be/internal/repository/memory"
	"compare-audius-be/internal/repository/unitofwork"
	"compare-audius-be/internal/service"
	"compare-audius-be/internal/web"
	"compare-audius-be/internal/websocket"
	"compare-audius-be/pkg/admin/comparison"
	"compare-audius-be/pkg/admin/dashboard"
	adminEvents "compare-audius-be/pkg/admin/events"
	"compare-audius-be/pkg/admin/feature"
	"compare-audius-be/pkg/admin/platform"
	"compare-audius-be/pkg/pagecache"
	"compare-audius-be/pkg/storage"

	pktNats "compare-audius-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	PlatformController   controller.IPlatformController
	FeatureController    controller.IFeatureController
	ComparisonController controller.IComparisonController
	UploadController     controller.IUploadController
	AuthController       controller.IAuthController
	DashboardController  controller.IDashboardController
	ExportController     controller.IExportController
	PageController       controller.IPageController
	AdminPageController  controller.IAdminPageController
	EventsController     controller.IEventsController

	// Session gate for /api and /admin
	SessionVerifier service.IAuthService

	// Background Services (Exposed for main.go to run)
	RevalidationService service.IRevalidationService
	WebSocketHub        *websocket.Hub

	Logger  logger.ILogger
	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) *Container {
	c := &Container{Logger: sysLogger}

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	renderer := web.MustNewRenderer()
	wsHub := websocket.NewHub(sysLogger)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	pageTTL := time.Duration(cfg.Cache.PageTTLSeconds) * time.Second
	pages := c.newPageStore(cfg, pageTTL)

	var natsPub *pktNats.Publisher
	var natsSub *pktNats.Subscriber
	if cfg.App.NatsURL != "" {
		var err error
		if natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL); err != nil {
			sysLogger.Warn("CACHE", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
		} else {
			c.closers = append(c.closers, natsPub.Close)
		}
		if natsSub, err = pktNats.NewSubscriber(cfg.App.NatsURL); err != nil {
			sysLogger.Warn("CACHE", "Failed to connect to NATS Subscriber", map[string]interface{}{"error": err.Error()})
		} else {
			c.closers = append(c.closers, natsSub.Close)
		}
	}

	imageStore := storage.NewCloudinary(storage.CloudinaryConfig{
		CloudName: cfg.Cloudinary.CloudName,
		APIKey:    cfg.Cloudinary.APIKey,
		APISecret: cfg.Cloudinary.APISecret,
		Folder:    cfg.Cloudinary.Folder,
	})
	if !imageStore.Configured() {
		sysLogger.Warn("UPLOAD", "Cloudinary credentials missing, uploads will fail", nil)
	}

	// 4. Admin Domain Components
	platformManager := platform.NewManager()
	featureManager := feature.NewManager()
	comparisonManager := comparison.NewManager()
	dashboardAggregator := dashboard.NewAggregator(sysLogger)
	adminEventPublisher := adminEvents.NewNatsPublisher(natsPub, sysLogger)

	// 5. Services
	catalogService := service.NewCatalogService(uowFactory, sysLogger, featureManager, dashboardAggregator)
	pageService := service.NewPageService(catalogService, pages, renderer, cfg.Site, pageTTL, sysLogger)
	revalidationService := service.NewRevalidationService(
		catalogService,
		pages,
		pubSub,
		pageService,
		adminEventPublisher,
		natsSub,
		wsHub,
		sysLogger,
	)

	platformService := service.NewPlatformService(uowFactory, sysLogger, platformManager, revalidationService)
	featureService := service.NewFeatureService(uowFactory, sysLogger, featureManager, revalidationService)
	comparisonService := service.NewComparisonService(uowFactory, sysLogger, comparisonManager, revalidationService)
	uploadService := service.NewUploadService(imageStore, sysLogger)
	exportService := service.NewExportService(catalogService, cfg.Site, time.Duration(cfg.Cache.ExportTTLSeconds)*time.Second, sysLogger)
	authService := service.NewAuthService(cfg.Auth, memory.NewOAuthStateRepository(), sysLogger)

	// 6. Controllers
	c.PlatformController = controller.NewPlatformController(platformService)
	c.FeatureController = controller.NewFeatureController(featureService)
	c.ComparisonController = controller.NewComparisonController(comparisonService)
	c.UploadController = controller.NewUploadController(uploadService)
	c.AuthController = controller.NewAuthController(authService, cfg.App.IsProduction())
	c.DashboardController = controller.NewDashboardController(catalogService)
	c.ExportController = controller.NewExportController(exportService)
	c.PageController = controller.NewPageController(pageService, renderer, cfg.Site, sysLogger)
	c.AdminPageController = controller.NewAdminPageController(catalogService, renderer, cfg.Site, sysLogger)
	c.EventsController = controller.NewEventsController(wsHub, sysLogger)

	c.SessionVerifier = authService
	c.RevalidationService = revalidationService
	c.WebSocketHub = wsHub

	return c
}

// newPageStore prefers Redis when configured and reachable
func (c *Container) newPageStore(cfg *config.Config, ttl time.Duration) pagecache.Store {
	if cfg.Cache.Driver == pagecache.DriverRedis {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		rdb, err := pagecache.NewRedisClient(ctx, cfg.App.RedisURL)
		if err == nil {
			c.closers = append(c.closers, func() { _ = rdb.Close() })
			c.Logger.Info("CACHE", "Using Redis page cache", nil)
			return pagecache.NewRedisStore(rdb, ttl)
		}
		c.Logger.Warn("CACHE", "Failed to connect to Redis, using in-memory page cache", map[string]interface{}{"error": err.Error()})
	}
	return pagecache.NewMemoryStore(ttl)
}

// Close releases broker and cache connections, newest first
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
