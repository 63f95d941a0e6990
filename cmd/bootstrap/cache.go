package bootstrap

import (
	"context"
	"log/slog"

	"bookstore-api/internal/infra/cache"
	"bookstore-api/internal/pkg/config"
	"bookstore-api/internal/pkg/metrics"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		NewPopularCache,
		NewTokenDenylist,
		func(c queries.PopularCache) commands.CacheInvalidator { return c },
	),
)

// NewRedisClient returns nil when REDIS_ADDR is empty.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	client, err := cache.NewClient(cfg.Redis)
	if err != nil {
		return nil, err
	}
	if client == nil {
		logger.Info("redis is not configured; popular cache and token denylist are disabled")
		return nil, nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func NewPopularCache(client *redis.Client, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) queries.PopularCache {
	if client == nil {
		return cache.NoopPopularCache{}
	}
	return cache.NewPopularCache(client, cfg.Redis.PopularCacheTTL, logger, m)
}

func NewTokenDenylist(client *redis.Client) commands.TokenDenylist {
	if client == nil {
		return cache.NoopTokenDenylist{}
	}
	return cache.NewTokenDenylist(client)
}
