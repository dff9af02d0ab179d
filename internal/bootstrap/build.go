package bootstrap

import (
	"context"
	"log"

	"notes-be/internal/config"
	"notes-be/internal/pkg/logger"
	pktNats "notes-be/pkg/nats"

	"github.com/redis/go-redis/v9"
)

// Build opens every configured connection and returns the wired container.
// Optional infrastructure (redis, NATS) that cannot be reached is logged and
// left out.
func Build(ctx context.Context, cfg *config.Config) (*Container, error) {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	eventLogger := logger.NewIsolatedLogger(cfg.App.EventLogFilePath)

	store, err := NewStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	deps := Dependencies{
		Logger:         sysLogger,
		EventLogger:    eventLogger,
		NoteRepository: store.Repository,
	}

	// Redis
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
			_ = rdb.Close()
		} else {
			deps.Redis = rdb
		}
	}

	// NATS
	if cfg.Events.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.Events.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			deps.NatsPublisher = natsPub
		}
	}

	c := NewContainer(cfg, deps)

	c.OnClose(store.Close)
	if deps.Redis != nil {
		c.OnClose(func(context.Context) error { return deps.Redis.Close() })
	}
	if deps.NatsPublisher != nil {
		c.OnClose(func(context.Context) error {
			deps.NatsPublisher.Close()
			return nil
		})
	}
	c.OnClose(func(context.Context) error {
		_ = eventLogger.Sync()
		// syncing stdout fails on some terminals; not worth reporting
		_ = sysLogger.Sync()
		return nil
	})
	return c, nil
}
