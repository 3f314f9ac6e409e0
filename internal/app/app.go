package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pauloargenal/e-commerce-deployed/internal/catalog"
	"github.com/pauloargenal/e-commerce-deployed/internal/config"
	"github.com/pauloargenal/e-commerce-deployed/internal/event"
	handler "github.com/pauloargenal/e-commerce-deployed/internal/handler/http"
	"github.com/pauloargenal/e-commerce-deployed/internal/locale"
	"github.com/pauloargenal/e-commerce-deployed/internal/repository/memory"
	"github.com/pauloargenal/e-commerce-deployed/internal/service"
	"github.com/pauloargenal/e-commerce-deployed/pkg/health"
	"github.com/pauloargenal/e-commerce-deployed/pkg/httpclient"
	pkgkafka "github.com/pauloargenal/e-commerce-deployed/pkg/kafka"
	"github.com/pauloargenal/e-commerce-deployed/pkg/middleware"
)

// purgeInterval is how often idle sessions are swept from memory.
const purgeInterval = 10 * time.Minute

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	redis      *redis.Client
	producer   *pkgkafka.Producer
	sessions   *memory.Repository
	httpServer *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	healthHandler := health.NewHandler()

	// Upstream catalog client. The upstream owns no retry contract, so the
	// client makes a single attempt per request behind a circuit breaker.
	clientCfg := httpclient.NoRetryConfig()
	clientCfg.Timeout = cfg.CatalogTimeout
	breaker := httpclient.NewCircuitBreakerClient(
		httpclient.New(clientCfg),
		httpclient.DefaultCircuitBreakerConfig("catalog"),
		logger,
	)

	var source catalog.Source = catalog.NewClient(breaker, cfg.CatalogBaseURL)

	// Optional Redis read-through cache over the catalog.
	var rdb *redis.Client
	if cfg.CacheEnabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		logger.Info("connected to Redis", slog.String("addr", cfg.RedisAddr))

		source = catalog.NewCachedSource(source, rdb, cfg.CacheTTL, logger)
		healthHandler.Register("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}

	// Optional Kafka event publishing. Without brokers the services run
	// with a nil event producer, which publishes nothing.
	var kafkaProducer *pkgkafka.Producer
	var eventProducer *event.Producer
	if cfg.KafkaEnabled() {
		kafkaProducer = pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
		eventProducer = event.NewProducer(kafkaProducer, logger)
		logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

		healthHandler.Register("kafka", func(ctx context.Context) error {
			return kafkaProducer.Ping(ctx)
		})
	}

	dict, err := locale.Load()
	if err != nil {
		return nil, fmt.Errorf("load locale dictionary: %w", err)
	}

	// Build the dependency graph.
	sessions := memory.New()
	cartService := service.NewCartService(sessions, source, eventProducer, logger)
	checkoutService := service.NewCheckoutService(sessions, eventProducer, logger)
	browseService := service.NewBrowseService(sessions, source, logger)

	router := handler.NewRouter(handler.RouterDeps{
		Catalog:         source,
		CartService:     cartService,
		CheckoutService: checkoutService,
		BrowseService:   browseService,
		Locale:          dict,
		Health:          healthHandler,
		Logger:          logger,
		CORS: middleware.CORSConfig{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Environment:    cfg.Environment,
		},
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		redis:      rdb,
		producer:   kafkaProducer,
		sessions:   sessions,
		httpServer: httpServer,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server", slog.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	go a.purgeSessions(ctx)

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// purgeSessions sweeps idle shopper sessions until the context is canceled.
func (a *App) purgeSessions(ctx context.Context) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if purged := a.sessions.PurgeIdle(a.cfg.SessionMaxIdle); purged > 0 {
				a.logger.Info("purged idle sessions",
					slog.Int("count", purged),
					slog.Int("remaining", a.sessions.Len()),
				)
			}
		}
	}
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
		}
	}

	a.logger.Info("application shutdown complete")
	return nil
}
