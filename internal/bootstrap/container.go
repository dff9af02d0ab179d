package bootstrap

import (
	"context"
	"errors"
	"log"

	"notes-be/internal/config"
	"notes-be/internal/controller"
	"notes-be/internal/pkg/logger"
	"notes-be/internal/repository/cache"
	"notes-be/internal/repository/contract"
	"notes-be/internal/service"
	"notes-be/internal/websocket"
	pktNats "notes-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

// Dependencies are the externally created pieces the container wires together.
type Dependencies struct {
	Logger         logger.ILogger
	EventLogger    logger.ILogger // defaults to Logger
	NoteRepository contract.NoteRepository
	Redis          *redis.Client // optional
	NatsPublisher  *pktNats.Publisher
}

type Container struct {
	// Controllers
	NoteController controller.INoteController
	HomeController controller.IHomeController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	WebSocketHub    *websocket.Hub

	NoteService service.INoteService
	Logger      logger.ILogger

	closers []func(ctx context.Context) error
}

func NewContainer(cfg *config.Config, deps Dependencies) *Container {
	sysLogger := deps.Logger
	eventLogger := deps.EventLogger
	if eventLogger == nil {
		eventLogger = sysLogger
	}

	// 1. Note store, optionally behind a cache
	noteRepo := deps.NoteRepository
	switch cfg.Cache.Backend {
	case config.CacheMemory:
		noteRepo = cache.NewNoteRepository(noteRepo, cache.NewLocalBackend(cfg.Cache.TTL, 2*cfg.Cache.TTL), cfg.Cache.TTL, sysLogger)
		log.Printf("[INFO] Using note cache: MEMORY (ttl %s)", cfg.Cache.TTL)
	case config.CacheRedis:
		if deps.Redis != nil {
			noteRepo = cache.NewNoteRepository(noteRepo, cache.NewRedisBackend(deps.Redis), cfg.Cache.TTL, sysLogger)
			log.Printf("[INFO] Using note cache: REDIS (ttl %s)", cfg.Cache.TTL)
		} else {
			log.Printf("[WARN] CACHE_BACKEND=redis but no redis client, caching disabled")
		}
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Realtime hub
	wsHub := websocket.NewHub(deps.Redis, sysLogger)

	var forwarder service.EventForwarder
	if deps.NatsPublisher != nil {
		forwarder = deps.NatsPublisher
	}

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Events.Topic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Events.Topic,
		eventLogger,
		wsHub,
		forwarder,
	)
	noteService := service.NewNoteService(noteRepo, publisherService, sysLogger)

	c := &Container{
		NoteController: controller.NewNoteController(noteService),
		HomeController: controller.NewHomeController(),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,

		NoteService: noteService,
		Logger:      sysLogger,
	}
	c.closers = append(c.closers, func(context.Context) error { return pubSub.Close() })
	return c
}

// Start launches the event consumer and the websocket hub; both stop when ctx is done.
func (c *Container) Start(ctx context.Context) error {
	go c.WebSocketHub.Run(ctx)
	return c.ConsumerService.Consume(ctx)
}

// OnClose registers a release function; Close runs them in registration order.
func (c *Container) OnClose(fn func(ctx context.Context) error) {
	c.closers = append(c.closers, fn)
}

func (c *Container) Close(ctx context.Context) error {
	var errs []error
	for _, fn := range c.closers {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
