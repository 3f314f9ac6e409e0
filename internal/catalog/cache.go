package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pauloargenal/e-commerce-deployed/internal/domain"
)

// CachedSource decorates a Source with a Redis read-through cache. Cache
// failures are logged and fall through to the underlying source, so a Redis
// outage degrades latency but never availability.
type CachedSource struct {
	source Source
	redis  *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedSource wraps source with a Redis cache using the given TTL.
func NewCachedSource(source Source, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedSource {
	return &CachedSource{
		source: source,
		redis:  rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedSource) ListProducts(ctx context.Context, limit, skip int) (domain.ProductPage, error) {
	key := fmt.Sprintf("catalog:products:%d:%d", limit, skip)
	var page domain.ProductPage
	if c.readCache(ctx, key, &page) {
		return page, nil
	}

	page, err := c.source.ListProducts(ctx, limit, skip)
	if err != nil {
		return domain.ProductPage{}, err
	}
	c.writeCache(ctx, key, page)
	return page, nil
}

func (c *CachedSource) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	key := fmt.Sprintf("catalog:product:%d", id)
	var product domain.Product
	if c.readCache(ctx, key, &product) {
		return product, nil
	}

	product, err := c.source.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	c.writeCache(ctx, key, product)
	return product, nil
}

func (c *CachedSource) ListCategories(ctx context.Context) ([]domain.Category, error) {
	key := "catalog:categories"
	var categories []domain.Category
	if c.readCache(ctx, key, &categories) {
		return categories, nil
	}

	categories, err := c.source.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	c.writeCache(ctx, key, categories)
	return categories, nil
}

func (c *CachedSource) ListByCategory(ctx context.Context, slug string, limit, skip int) (domain.ProductPage, error) {
	key := fmt.Sprintf("catalog:category:%s:%d:%d", slug, limit, skip)
	var page domain.ProductPage
	if c.readCache(ctx, key, &page) {
		return page, nil
	}

	page, err := c.source.ListByCategory(ctx, slug, limit, skip)
	if err != nil {
		return domain.ProductPage{}, err
	}
	c.writeCache(ctx, key, page)
	return page, nil
}

// Search results are not cached; queries are high-cardinality and the
// upstream already answers them quickly.
func (c *CachedSource) Search(ctx context.Context, query string, limit, skip int) (domain.ProductPage, error) {
	return c.source.Search(ctx, query, limit, skip)
}

func (c *CachedSource) readCache(ctx context.Context, key string, out any) bool {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WarnContext(ctx, "catalog cache read failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.logger.WarnContext(ctx, "catalog cache entry corrupt",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return false
	}
	return true
}

func (c *CachedSource) writeCache(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "catalog cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
