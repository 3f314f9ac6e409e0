package service

import (
	"context"
	"log/slog"
	"os"

	"github.com/stretchr/testify/mock"

	"github.com/pauloargenal/e-commerce-deployed/internal/domain"
)

// mockCatalog is a testify mock for catalog.Source.
type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) ListProducts(ctx context.Context, limit, skip int) (domain.ProductPage, error) {
	args := m.Called(ctx, limit, skip)
	return args.Get(0).(domain.ProductPage), args.Error(1)
}

func (m *mockCatalog) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *mockCatalog) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *mockCatalog) ListByCategory(ctx context.Context, slug string, limit, skip int) (domain.ProductPage, error) {
	args := m.Called(ctx, slug, limit, skip)
	return args.Get(0).(domain.ProductPage), args.Error(1)
}

func (m *mockCatalog) Search(ctx context.Context, query string, limit, skip int) (domain.ProductPage, error) {
	args := m.Called(ctx, query, limit, skip)
	return args.Get(0).(domain.ProductPage), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}
