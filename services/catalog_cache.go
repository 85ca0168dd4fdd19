package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"food-ordering/models"
)

const (
	foodDataCacheKey   = "catalog:food-data"
	categoriesCacheKey = "catalog:categories"
)

// CatalogCache is a Redis read-through cache in front of a CatalogReader.
// Redis failures are logged and the request falls through to the store.
type CatalogCache struct {
	rdb  *redis.Client
	next CatalogReader
	ttl  time.Duration
	log  *slog.Logger
}

func NewCatalogCache(rdb *redis.Client, next CatalogReader, ttl time.Duration, log *slog.Logger) *CatalogCache {
	return &CatalogCache{rdb: rdb, next: next, ttl: ttl, log: log}
}

func (c *CatalogCache) FoodData(ctx context.Context) (*models.FoodData, error) {
	var cached models.FoodData
	if c.get(ctx, foodDataCacheKey, &cached) {
		return &cached, nil
	}
	data, err := c.next.FoodData(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, foodDataCacheKey, data)
	return data, nil
}

func (c *CatalogCache) Categories(ctx context.Context) ([]models.Category, error) {
	var cached []models.Category
	if c.get(ctx, categoriesCacheKey, &cached) {
		return cached, nil
	}
	cats, err := c.next.Categories(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, categoriesCacheKey, cats)
	return cats, nil
}

// Invalidate drops every cached catalog payload.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, foodDataCacheKey, categoriesCacheKey).Err()
}

func (c *CatalogCache) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		c.log.Warn("catalog cache read failed", "action", "cache_get_failed", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warn("catalog cache entry corrupt", "action", "cache_decode_failed", "key", key, "error", err)
		return false
	}
	return true
}

func (c *CatalogCache) set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.log.Warn("catalog cache encode failed", "action", "cache_encode_failed", "key", key, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("catalog cache write failed", "action", "cache_set_failed", "key", key, "error", err)
	}
}
