// internal/adapters/out/cache/catalog_cache_redis.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	productdom "tiendapos/internal/domain/product"
)

const (
	productListKey = "catalog:products"
	productListTTL = 60 * time.Second
)

// CatalogCacheRedis is a read-through cache for the product list. Every
// failure degrades to a miss and is logged; callers never see cache errors.
type CatalogCacheRedis struct {
	Client *redis.Client
}

func NewCatalogCacheRedis(client *redis.Client) *CatalogCacheRedis {
	return &CatalogCacheRedis{Client: client}
}

func (c *CatalogCacheRedis) Get(ctx context.Context) ([]productdom.Product, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}
	raw, err := c.Client.Get(ctx, productListKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[catalog_cache] WARN: get failed: %v", err)
		}
		return nil, false
	}
	var items []productdom.Product
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("[catalog_cache] WARN: decode failed, treating as miss: %v", err)
		return nil, false
	}
	return items, true
}

func (c *CatalogCacheRedis) Set(ctx context.Context, products []productdom.Product) {
	if c == nil || c.Client == nil {
		return
	}
	raw, err := json.Marshal(products)
	if err != nil {
		log.Printf("[catalog_cache] WARN: encode failed: %v", err)
		return
	}
	if err := c.Client.Set(ctx, productListKey, raw, productListTTL).Err(); err != nil {
		log.Printf("[catalog_cache] WARN: set failed: %v", err)
	}
}

func (c *CatalogCacheRedis) Invalidate(ctx context.Context) {
	if c == nil || c.Client == nil {
		return
	}
	if err := c.Client.Del(ctx, productListKey).Err(); err != nil {
		log.Printf("[catalog_cache] WARN: invalidate failed: %v", err)
	}
}
