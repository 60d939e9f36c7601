// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stockmarket_backend/internal/feature/stocks/domain/entity"
	"stockmarket_backend/internal/feature/stocks/usecase"
)

// CachingStockRepository decorates a StockRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Only the list query is cached; single
// lookups pass through, and writes invalidate the list entries.
type CachingStockRepository struct {
	inner     usecase.StockRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.StockRepository = (*CachingStockRepository)(nil)

// NewCachingStockRepository decorates a StockRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "stocks".
func NewCachingStockRepository(rdb *redis.Client, ttl time.Duration, inner usecase.StockRepository, namespace string) *CachingStockRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "stocks"
	}
	return &CachingStockRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListTop retrieves the top stocks, checking cache first then falling back to the database.
func (c *CachingStockRepository) ListTop(ctx context.Context, onlyBluetip bool) ([]entity.Stock, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListTop(ctx, onlyBluetip)
	}

	key := c.listKey(onlyBluetip)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Stock
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListTop(ctx, onlyBluetip)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID always hits the underlying repository.
func (c *CachingStockRepository) FindByID(ctx context.Context, id uint) (*entity.Stock, error) {
	return c.inner.FindByID(ctx, id)
}

// Create inserts a stock and invalidates the cached list entries.
func (c *CachingStockRepository) Create(ctx context.Context, s *entity.Stock) error {
	if err := c.inner.Create(ctx, s); err != nil {
		return err
	}
	c.invalidateLists(ctx)
	return nil
}

// Update overwrites a stock and invalidates the cached list entries.
func (c *CachingStockRepository) Update(ctx context.Context, s *entity.Stock) error {
	if err := c.inner.Update(ctx, s); err != nil {
		return err
	}
	c.invalidateLists(ctx)
	return nil
}

// invalidateLists drops both list cache entries. Best effort: cache deletion
// failures never surface to the caller.
func (c *CachingStockRepository) invalidateLists(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.listKey(false), c.listKey(true)).Err()
}

// listKey generates the cache key for a list query.
func (c *CachingStockRepository) listKey(onlyBluetip bool) string {
	suffix := "all"
	if onlyBluetip {
		suffix = "bluetip"
	}
	return fmt.Sprintf("%s:top:%s", c.namespace, suffix)
}
