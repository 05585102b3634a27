package bootstrap

import (
	"context"
	"time"

	"wiccapedia-api/internal/config"
	"wiccapedia-api/internal/controller"
	"wiccapedia-api/internal/pkg/cache"
	"wiccapedia-api/internal/pkg/logger"
	"wiccapedia-api/internal/pkg/serverutils"
	"wiccapedia-api/internal/repository/unitofwork"
	"wiccapedia-api/internal/service"

	pktNats "wiccapedia-api/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const EntityCreatedTopic = "entity.created"

type Container struct {
	Logger logger.ILogger

	// Controllers
	UserController       controller.IUserController
	NotebookController   controller.INotebookController
	CoverController      controller.ICoverController
	DecorationController controller.IDecorationController
	GemController        controller.IGemController
	HealthController     controller.IHealthController

	AuthMiddleware fiber.Handler

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	closers []func()
}

// Options overrides infrastructure the container would otherwise build from
// cfg. Tests use it to run without log files, Redis or NATS.
type Options struct {
	Logger logger.ILogger
	Cache  cache.Cache
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	return NewContainerWithOptions(db, cfg, Options{})
}

func NewContainerWithOptions(db *gorm.DB, cfg *config.Config, opts Options) *Container {
	c := &Container{}

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger, auditLogger := opts.Logger, opts.Logger
	if sysLogger == nil {
		sysLogger = logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
		auditLogger = logger.NewIsolatedLogger(cfg.App.AuditLogFilePath)
	}
	c.Logger = sysLogger

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	metadataCache := opts.Cache
	if metadataCache == nil {
		metadataCache = newCache(cfg, sysLogger, c)
	}

	var forwarder service.EventForwarder
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to connect to NATS publisher, events stay local", map[string]interface{}{"error": err.Error()})
		} else {
			forwarder = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 4. Services
	publisherService := service.NewPublisherService(EntityCreatedTopic, pubSub, sysLogger)
	c.ConsumerService = service.NewConsumerService(pubSub, EntityCreatedTopic, uowFactory, forwarder, auditLogger)

	userService := service.NewUserService(uowFactory, publisherService)
	notebookService := service.NewNotebookService(uowFactory, publisherService)
	coverService := service.NewCoverService(uowFactory, publisherService, cfg.App.DefaultCoverPath, cfg.Cache.TTL)
	decorationService := service.NewDecorationService(uowFactory, publisherService)
	gemService := service.NewGemService(uowFactory, publisherService, metadataCache, cfg.Cache.TTL, sysLogger)
	healthService := service.NewHealthService(db)

	// 5. Controllers
	c.UserController = controller.NewUserController(userService)
	c.NotebookController = controller.NewNotebookController(notebookService)
	c.CoverController = controller.NewCoverController(coverService)
	c.DecorationController = controller.NewDecorationController(decorationService)
	c.GemController = controller.NewGemController(gemService)
	c.HealthController = controller.NewHealthController(healthService)

	c.AuthMiddleware = serverutils.NewJwtMiddleware(cfg.Auth, sysLogger)

	return c
}

// newCache prefers Redis and falls back to process memory when it is not
// configured or not reachable.
func newCache(cfg *config.Config, log logger.ILogger, c *Container) cache.Cache {
	if cfg.App.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		rdb, err := cache.ConnectRedis(ctx, cfg.App.RedisURL)
		if err == nil {
			c.closers = append(c.closers, func() { _ = rdb.Close() })
			return cache.NewRedisCache(rdb, "wiccapedia:")
		}
		log.Warn("BOOTSTRAP", "Redis unavailable, using in-memory cache", map[string]interface{}{"error": err.Error()})
	}
	return cache.NewMemoryCache(cfg.Cache.TTL)
}

// Close releases the event bus and external connections.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
