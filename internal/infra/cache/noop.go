package cache

import (
	"context"
	"time"

	"bookstore-api/internal/usecase/queries"
)

// NoopPopularCache always misses.
type NoopPopularCache struct{}

func (NoopPopularCache) Get(context.Context, queries.PageRequest) (*queries.Page[queries.BookView], bool) {
	return nil, false
}

func (NoopPopularCache) Set(context.Context, queries.PageRequest, *queries.Page[queries.BookView]) {}

func (NoopPopularCache) Invalidate(context.Context) {}

// NoopTokenDenylist accepts every token that has not expired.
type NoopTokenDenylist struct{}

func (NoopTokenDenylist) Consume(_ context.Context, _ string, ttl time.Duration) (bool, error) {
	return ttl > 0, nil
}
