// Package redis stores listing results in Redis so repeated listing requests
// skip the database until the next editor write or scheduled purge.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"snapevents/internal/domain"
)

// DefaultPrefix namespaces listing keys.
const DefaultPrefix = "snapevents:"

const scanBatch = 100

// ListingCache is a Redis-backed domain.ListingCache.
type ListingCache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// Open parses a redis:// URL, pings the server and returns a cache whose
// entries expire after ttl.
func Open(ctx context.Context, url, prefix string, ttl time.Duration) (*ListingCache, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewListingCache(client, prefix, ttl), nil
}

// NewListingCache wraps an existing client. An empty prefix uses DefaultPrefix.
func NewListingCache(client *goredis.Client, prefix string, ttl time.Duration) *ListingCache {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &ListingCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *ListingCache) key(k string) string {
	return c.prefix + k
}

// Get returns the cached result for key. A miss is reported with ok false and
// a nil error.
func (c *ListingCache) Get(ctx context.Context, key string) (domain.ListingResult, bool, error) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return domain.ListingResult{}, false, nil
	}
	if err != nil {
		return domain.ListingResult{}, false, err
	}
	result, err := decodeResult(raw)
	if err != nil {
		return domain.ListingResult{}, false, err
	}
	return result, true, nil
}

// Set stores result under key with the configured TTL.
func (c *ListingCache) Set(ctx context.Context, key string, result domain.ListingResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(key), raw, c.ttl).Err()
}

// Purge deletes every key under the prefix using SCAN so large keyspaces do
// not block the server.
func (c *ListingCache) Purge(ctx context.Context) error {
	var cursor uint64
	pattern := c.prefix + "*"
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Close releases the underlying client.
func (c *ListingCache) Close() error {
	return c.client.Close()
}

func decodeResult(raw []byte) (domain.ListingResult, error) {
	var result domain.ListingResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return domain.ListingResult{}, fmt.Errorf("decode cached listing: %w", err)
	}
	if result.Events == nil {
		result.Events = []domain.EventView{}
	}
	return result, nil
}
