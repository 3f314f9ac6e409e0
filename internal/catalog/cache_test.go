package catalog

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pauloargenal/e-commerce-deployed/internal/domain"
	apperrors "github.com/pauloargenal/e-commerce-deployed/pkg/errors"
)

// countingSource records how many times each method hits the upstream.
type countingSource struct {
	listCalls     int
	getCalls      int
	categoryCalls int
	searchCalls   int
	failing       bool
}

func (s *countingSource) ListProducts(ctx context.Context, limit, skip int) (domain.ProductPage, error) {
	s.listCalls++
	if s.failing {
		return domain.ProductPage{}, apperrors.Upstream("catalog", assert.AnError)
	}
	return domain.ProductPage{
		Products: []domain.Product{{ID: 1, Title: "Essence Mascara"}},
		Total:    1, Limit: limit, Skip: skip,
	}, nil
}

func (s *countingSource) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	s.getCalls++
	return domain.Product{ID: id, Title: "Desk Lamp"}, nil
}

func (s *countingSource) ListCategories(ctx context.Context) ([]domain.Category, error) {
	s.categoryCalls++
	return []domain.Category{{Slug: "beauty", Name: "Beauty"}}, nil
}

func (s *countingSource) ListByCategory(ctx context.Context, slug string, limit, skip int) (domain.ProductPage, error) {
	return domain.ProductPage{}, nil
}

func (s *countingSource) Search(ctx context.Context, query string, limit, skip int) (domain.ProductPage, error) {
	s.searchCalls++
	return domain.ProductPage{}, nil
}

func newCachedSource(t *testing.T, src Source) (*CachedSource, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewCachedSource(src, rdb, time.Minute, logger), mr
}

func TestCachedSource_ListProducts_CachesSecondRead(t *testing.T) {
	src := &countingSource{}
	cached, _ := newCachedSource(t, src)
	ctx := context.Background()

	first, err := cached.ListProducts(ctx, 30, 0)
	require.NoError(t, err)

	second, err := cached.ListProducts(ctx, 30, 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.listCalls)
}

func TestCachedSource_DistinctPagesDistinctKeys(t *testing.T) {
	src := &countingSource{}
	cached, _ := newCachedSource(t, src)
	ctx := context.Background()

	_, err := cached.ListProducts(ctx, 30, 0)
	require.NoError(t, err)
	_, err = cached.ListProducts(ctx, 30, 30)
	require.NoError(t, err)

	assert.Equal(t, 2, src.listCalls)
}

func TestCachedSource_TTLExpiry(t *testing.T) {
	src := &countingSource{}
	cached, mr := newCachedSource(t, src)
	ctx := context.Background()

	_, err := cached.GetProduct(ctx, 7)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = cached.GetProduct(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, src.getCalls)
}

func TestCachedSource_UpstreamErrorNotCached(t *testing.T) {
	src := &countingSource{failing: true}
	cached, _ := newCachedSource(t, src)
	ctx := context.Background()

	_, err := cached.ListProducts(ctx, 30, 0)
	require.ErrorIs(t, err, apperrors.ErrUpstream)

	src.failing = false
	page, err := cached.ListProducts(ctx, 30, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 2, src.listCalls)
}

func TestCachedSource_RedisDownFallsThrough(t *testing.T) {
	src := &countingSource{}
	cached, mr := newCachedSource(t, src)
	mr.Close()

	page, err := cached.ListProducts(context.Background(), 30, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

func TestCachedSource_SearchBypassesCache(t *testing.T) {
	src := &countingSource{}
	cached, _ := newCachedSource(t, src)
	ctx := context.Background()

	_, err := cached.Search(ctx, "phone", 30, 0)
	require.NoError(t, err)
	_, err = cached.Search(ctx, "phone", 30, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, src.searchCalls)
}

func TestCachedSource_Categories(t *testing.T) {
	src := &countingSource{}
	cached, _ := newCachedSource(t, src)
	ctx := context.Background()

	first, err := cached.ListCategories(ctx)
	require.NoError(t, err)
	second, err := cached.ListCategories(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.categoryCalls)
}
