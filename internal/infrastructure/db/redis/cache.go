package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zoomarket/cashbox-system/internal/core/domain"
)

const (
	productCacheKey = "cache:products"
	productCacheTTL = 5 * time.Minute
)

// ProductCache stores the serialized product catalogue in Redis. It backs
// service.ProductCache: listing reads through it, product creation drops it.
type ProductCache struct {
	client *redis.Client
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

// Get returns the cached catalogue. The second return value is false on a
// cache miss.
func (p *ProductCache) Get(ctx context.Context) ([]domain.Product, bool, error) {
	raw, err := p.client.Get(ctx, productCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("product cache get: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		// Corrupt entry: treat as a miss so the next Set overwrites it.
		return nil, false, fmt.Errorf("product cache decode: %w", err)
	}
	return products, true, nil
}

// Set stores the catalogue with a TTL.
func (p *ProductCache) Set(ctx context.Context, products []domain.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("product cache encode: %w", err)
	}
	return p.client.Set(ctx, productCacheKey, raw, productCacheTTL).Err()
}

// Invalidate drops the cached catalogue.
func (p *ProductCache) Invalidate(ctx context.Context) error {
	return p.client.Del(ctx, productCacheKey).Err()
}
