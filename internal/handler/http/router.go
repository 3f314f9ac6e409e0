package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pauloargenal/e-commerce-deployed/internal/catalog"
	"github.com/pauloargenal/e-commerce-deployed/internal/locale"
	"github.com/pauloargenal/e-commerce-deployed/internal/service"
	"github.com/pauloargenal/e-commerce-deployed/pkg/health"
	"github.com/pauloargenal/e-commerce-deployed/pkg/middleware"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Catalog         catalog.Source
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
	BrowseService   *service.BrowseService
	Locale          locale.Dictionary
	Health          *health.Handler
	Logger          *slog.Logger
	CORS            middleware.CORSConfig
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(deps.Logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.CORS(deps.CORS))

	// Health check endpoints
	r.Get("/health/live", deps.Health.LivenessHandler())
	r.Get("/health/ready", deps.Health.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	productsHandler := NewProductsHandler(deps.Catalog, deps.Logger)
	cartHandler := NewCartHandler(deps.CartService, deps.Logger)
	checkoutHandler := NewCheckoutHandler(deps.CheckoutService, deps.Logger)
	browseHandler := NewBrowseHandler(deps.BrowseService, deps.Logger)
	localeHandler := NewLocaleHandler(deps.Locale, deps.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(SessionID)
		r.Use(middleware.RequestLogger(deps.Logger))

		// Catalog reads are safe to cache briefly at the edge.
		r.Group(func(r chi.Router) {
			r.Use(middleware.CacheControl(60))

			r.Get("/products", productsHandler.ListProducts)
			r.Get("/products/{id}", productsHandler.GetProduct)
			r.Get("/categories", productsHandler.ListCategories)

			r.Get("/locale", localeHandler.GetDictionary)
			r.Get("/locale/{namespace}", localeHandler.GetNamespace)
		})

		r.Route("/browse", func(r chi.Router) {
			r.Get("/", browseHandler.GetView)
			r.Put("/filters", browseHandler.SetFilters)
			r.Delete("/filters", browseHandler.ClearFilters)
			r.Post("/refresh", browseHandler.Refresh)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)

			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{productId}", cartHandler.UpdateItemQuantity)
			r.Delete("/items/{productId}", cartHandler.RemoveItem)

			r.Post("/toggle", cartHandler.ToggleCart)
			r.Post("/open", cartHandler.SetCartOpen)
			r.Post("/checkout-open", cartHandler.SetCheckoutOpen)
			r.Post("/open-checkout", cartHandler.OpenCheckout)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", checkoutHandler.GetCheckout)
			r.Post("/promo", checkoutHandler.ApplyPromo)
			r.Delete("/promo", checkoutHandler.RemovePromo)
			r.Post("/complete", checkoutHandler.Complete)
			r.Post("/acknowledge", checkoutHandler.Acknowledge)
		})
	})

	return r
}
