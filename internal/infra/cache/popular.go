package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bookstore-api/internal/pkg/metrics"
	"bookstore-api/internal/usecase/queries"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

const popularKeyPattern = keyPrefix + "popular:*"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PopularCache keeps rendered popular pages cache-aside. Redis failures degrade to a miss.
type PopularCache struct {
	client  *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewPopularCache(client *redis.Client, ttl time.Duration, logger *slog.Logger, m *metrics.Metrics) *PopularCache {
	return &PopularCache{
		client:  client,
		ttl:     ttl,
		logger:  logger,
		metrics: m,
	}
}

func (c *PopularCache) Get(ctx context.Context, req queries.PageRequest) (*queries.Page[queries.BookView], bool) {
	val, err := c.client.Get(ctx, popularKey(req)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("popular cache read failed", "error", err.Error())
		}
		c.metrics.ObserveCache(false)
		return nil, false
	}

	var page queries.Page[queries.BookView]
	if err := json.Unmarshal(val, &page); err != nil {
		c.logger.Warn("popular cache entry is corrupt", "error", err.Error())
		c.metrics.ObserveCache(false)
		return nil, false
	}
	c.metrics.ObserveCache(true)
	return &page, true
}

func (c *PopularCache) Set(ctx context.Context, req queries.PageRequest, page *queries.Page[queries.BookView]) {
	val, err := json.Marshal(page)
	if err != nil {
		c.logger.Warn("failed to encode popular page", "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, popularKey(req), val, c.ttl).Err(); err != nil {
		c.logger.Warn("popular cache write failed", "error", err.Error())
	}
}

// Invalidate drops every cached page; stock is part of the payload so any write makes them stale.
func (c *PopularCache) Invalidate(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, popularKeyPattern, 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("failed to scan popular cache keys", "error", err.Error())
		return
	}

	if len(keys) > 0 {
		if err := c.client.Unlink(ctx, keys...).Err(); err != nil {
			c.logger.Warn("failed to invalidate popular cache", "keys", len(keys), "error", err.Error())
		}
	}
}

func popularKey(req queries.PageRequest) string {
	return fmt.Sprintf("%spopular:p%d:s%d", keyPrefix, req.Page, req.PageSize)
}
