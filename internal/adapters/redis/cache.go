package redis

import (
	"context"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"
)

// Cache is a rendered-HTML cache keyed by chapter ID. The HTTP server puts
// it in front of the goldmark pipeline so repeated chapter reads don't
// re-render static content.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// NewCache creates a render cache over an existing client.
func NewCache(client *backend.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		prefix: "primer:render:",
		ttl:    ttl,
	}
}

// Get returns the cached HTML for a chapter, or (nil, false) on a miss.
func (c *Cache) Get(ctx context.Context, chapterID string) ([]byte, bool) {
	val, err := c.client.Get(ctx, c.prefix+chapterID).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set stores rendered HTML with the cache's TTL.
func (c *Cache) Set(ctx context.Context, chapterID string, html []byte) error {
	if err := c.client.Set(ctx, c.prefix+chapterID, html, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache render: %w", err)
	}
	return nil
}

// Invalidate drops all cached renders. Called on book reload.
func (c *Cache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("invalidate cache: %w", err)
		}
	}
	return iter.Err()
}
