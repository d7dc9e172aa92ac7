// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"medtrack_backend/internal/feature/ngos/domain/entity"
	"medtrack_backend/internal/feature/ngos/usecase"
)

// CachingNGORepository decorates an NGORepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. NGO rows change rarely, so the list
// is an ideal cache candidate.
type CachingNGORepository struct {
	inner     usecase.NGORepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingNGORepository decorates an NGORepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "ngos".
func NewCachingNGORepository(rdb *redis.Client, ttl time.Duration, inner usecase.NGORepository, namespace string) *CachingNGORepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "ngos"
	}
	return &CachingNGORepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// List retrieves NGOs, checking cache first then falling back to the database.
func (c *CachingNGORepository) List(ctx context.Context, activeOnly bool) ([]entity.NGO, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.List(ctx, activeOnly)
	}

	key := c.listKey(activeOnly)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.NGO
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID always goes to the underlying repository; single-row lookups are
// cheap and caching them would complicate invalidation for no gain.
func (c *CachingNGORepository) FindByID(ctx context.Context, id uint) (*entity.NGO, error) {
	return c.inner.FindByID(ctx, id)
}

// Create writes through to the underlying repository and invalidates the
// cached lists.
func (c *CachingNGORepository) Create(ctx context.Context, ngo *entity.NGO) error {
	if err := c.inner.Create(ctx, ngo); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	// Best effort: don't fail the write if cache invalidation fails
	_ = c.rdb.Del(ctx, c.listKey(true), c.listKey(false)).Err()
	return nil
}

// listKey generates the cache key for a list query.
func (c *CachingNGORepository) listKey(activeOnly bool) string {
	return fmt.Sprintf("%s:list:%t", c.namespace, activeOnly)
}
