// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// lists.go provides a Valkey-backed cache for public API list payloads.
// When a public endpoint assembles its published, ordered records, the
// resulting JSON is stored in Valkey so subsequent page views skip the DB
// query. Every admin mutation invalidates its collection's key, so the
// public site always reflects the store's state after a mutation completes.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// listKeyPrefix is the Valkey key prefix for cached list payloads.
	listKeyPrefix = "list:"

	// DefaultListTTL is how long a cached payload stays fresh absent
	// invalidation.
	DefaultListTTL = 5 * time.Minute
)

// ListCache manages cached public list payloads in Valkey, keyed by
// collection name ("projects", "testimonials", "sections:home", ...).
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache creates a list cache backed by the given Valkey client.
func NewListCache(client *redis.Client, ttl time.Duration) *ListCache {
	if ttl == 0 {
		ttl = DefaultListTTL
	}
	return &ListCache{client: client, ttl: ttl}
}

// Get retrieves a cached payload for a collection key.
func (lc *ListCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := lc.client.Get(ctx, listKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("list cache get error", "key", key, "error", err)
		return nil, false
	}
	return val, true
}

// Set stores a payload for a collection key with the configured TTL.
func (lc *ListCache) Set(ctx context.Context, key string, payload []byte) {
	if err := lc.client.Set(ctx, listKeyPrefix+key, payload, lc.ttl).Err(); err != nil {
		slog.Warn("list cache set error", "key", key, "error", err)
	}
}

// Invalidate removes a collection's cached payload. Called after every
// admin mutation to that collection.
func (lc *ListCache) Invalidate(ctx context.Context, key string) {
	if err := lc.client.Del(ctx, listKeyPrefix+key).Err(); err != nil {
		slog.Warn("list cache invalidate error", "key", key, "error", err)
	}
	slog.Debug("list cache invalidated", "key", key)
}

// InvalidateAll removes every cached list by scanning for the prefix.
// Used on section updates, since section payloads are keyed per page.
func (lc *ListCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	for {
		keys, nextCursor, err := lc.client.Scan(ctx, cursor, listKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("list cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := lc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("list cache bulk delete error", "error", err)
			}
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
}

// SectionsKey returns the cache key for a page's section payload.
func SectionsKey(page string) string {
	return "sections:" + page
}
