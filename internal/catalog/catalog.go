// Package catalog reads product data from the upstream catalog API.
package catalog

import (
	"context"

	"github.com/pauloargenal/e-commerce-deployed/internal/domain"
)

// Source provides read access to the product catalog.
type Source interface {
	ListProducts(ctx context.Context, limit, skip int) (domain.ProductPage, error)
	GetProduct(ctx context.Context, id int64) (domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListByCategory(ctx context.Context, slug string, limit, skip int) (domain.ProductPage, error)
	Search(ctx context.Context, query string, limit, skip int) (domain.ProductPage, error)
}
