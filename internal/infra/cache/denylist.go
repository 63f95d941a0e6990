package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist remembers refresh token ids that were already rotated.
type TokenDenylist struct {
	client *redis.Client
}

func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client}
}

// Consume reports whether jti was unused and marks it used until ttl elapses.
func (d *TokenDenylist) Consume(ctx context.Context, jti string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		return false, nil
	}
	ok, err := d.client.SetNX(ctx, denylistKey(jti), 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to record refresh token use: %w", err)
	}
	return ok, nil
}

func denylistKey(jti string) string {
	return keyPrefix + "refresh:used:" + jti
}
