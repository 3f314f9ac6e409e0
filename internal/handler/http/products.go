// Package http exposes the storefront over a chi-routed JSON API.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pauloargenal/e-commerce-deployed/internal/catalog"
	"github.com/pauloargenal/e-commerce-deployed/pkg/httputil"
	"github.com/pauloargenal/e-commerce-deployed/pkg/pagination"
)

// ProductsHandler handles HTTP requests for catalog endpoints.
type ProductsHandler struct {
	catalog catalog.Source
	logger  *slog.Logger
}

// NewProductsHandler creates a new catalog HTTP handler.
func NewProductsHandler(source catalog.Source, logger *slog.Logger) *ProductsHandler {
	return &ProductsHandler{
		catalog: source,
		logger:  logger,
	}
}

// ListProducts handles GET /api/v1/products. A `q` parameter delegates to the
// upstream search endpoint; a `category` parameter narrows to one category;
// otherwise the full catalog is paged through limit/skip.
func (h *ProductsHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)
	query := r.URL.Query()

	var (
		page any
		err  error
	)
	switch {
	case query.Get("q") != "":
		page, err = h.catalog.Search(r.Context(), query.Get("q"), params.Limit, params.Skip)
	case query.Get("category") != "":
		page, err = h.catalog.ListByCategory(r.Context(), query.Get("category"), params.Limit, params.Skip)
	default:
		page, err = h.catalog.ListProducts(r.Context(), params.Limit, params.Skip)
	}
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: page})
}

// GetProduct handles GET /api/v1/products/{id}
func (h *ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// ListCategories handles GET /api/v1/categories
func (h *ProductsHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: categories})
}
