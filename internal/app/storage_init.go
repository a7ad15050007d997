package app

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/catalog/httpcatalog"
	"github.com/vladislavdragonenkov/storefront/internal/catalog/sqlite"
	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/health"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
	"github.com/vladislavdragonenkov/storefront/internal/storage/cache"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
	"github.com/vladislavdragonenkov/storefront/internal/storage/postgres"
	"github.com/vladislavdragonenkov/storefront/internal/storage/redis"
	"github.com/vladislavdragonenkov/storefront/internal/version"
)

const (
	redisCachePrefix  = "storefront:orders"
	redisBasketPrefix = "storefront:baskets"
)

// runtimeDependencies — хранилища и внешние клиенты, выбранные конфигурацией.
type runtimeDependencies struct {
	ledger      domain.StockLedger
	catalog     domain.Catalog
	orders      domain.OrderRepository
	promos      domain.PromoRepository
	timeline    domain.TimelineRepository
	outbox      domain.OutboxRepository
	idempotency domain.IdempotencyRepository
	baskets     domain.BasketStore
	checkers    map[string]health.Checker
	closers     []func() error
}

func (d *runtimeDependencies) onClose(fn func() error) {
	d.closers = append(d.closers, fn)
}

// Close освобождает ресурсы в обратном порядке открытия.
func (d *runtimeDependencies) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	d.closers = nil
	return errors.Join(errs...)
}

// initRuntimeDependencies открывает хранилища по драйверам из cfg.
// При ошибке всё уже открытое закрывается.
func initRuntimeDependencies(ctx context.Context, cfg Config, m *metrics.CheckoutMetrics, logger *log.Entry) (deps *runtimeDependencies, err error) {
	deps = &runtimeDependencies{checkers: make(map[string]health.Checker)}
	defer func() {
		if err != nil {
			_ = deps.Close()
			deps = nil
		}
	}()

	if err = initStorage(ctx, cfg, deps, logger); err != nil {
		return nil, err
	}

	var redisClient *goredis.Client
	if cfg.usesRedis() {
		redisClient, err = redis.Open(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		deps.onClose(redisClient.Close)
		// Без Redis корзины недоступны, а кэш можно обойти.
		deps.checkers["redis"] = health.NewPingChecker("redis", cfg.BasketDriver == BasketDriverRedis,
			func(ctx context.Context) error { return redisClient.Ping(ctx).Err() })
		logger.WithField("addr", cfg.RedisAddr).Info("redis connected")
	}

	if err = initCache(cfg, deps, redisClient, m, logger); err != nil {
		return nil, err
	}

	switch cfg.BasketDriver {
	case BasketDriverRedis:
		deps.baskets = redis.NewBasketStore(redisClient, redisBasketPrefix, cfg.BasketTTL)
	case BasketDriverMemory:
		deps.baskets = memory.NewBasketStore()
	default:
		return nil, fmt.Errorf("unsupported basket driver %q", cfg.BasketDriver)
	}

	if err = initCatalog(cfg, deps, logger); err != nil {
		return nil, err
	}
	return deps, nil
}

func initStorage(ctx context.Context, cfg Config, deps *runtimeDependencies, logger *log.Entry) error {
	switch cfg.StorageDriver {
	case StorageDriverMemory:
		deps.ledger = memory.NewStockLedger()
		deps.orders = memory.NewOrderRepository()
		deps.promos = memory.NewPromoRepository()
		deps.timeline = memory.NewTimelineRepository()
		deps.outbox = memory.NewOutboxRepository()
		deps.idempotency = memory.NewIdempotencyRepository()
		logger.Info("using in-memory storage")
		return nil

	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return fmt.Errorf("%s is required for postgres storage", EnvPostgresDSN)
		}
		store, err := postgres.Connect(ctx, cfg.PostgresDSN, postgres.Options{
			MaxOpenConns: cfg.PostgresMaxConns,
			MaxIdleConns: cfg.PostgresMaxConns,
		})
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		deps.onClose(store.Close)

		if cfg.PostgresAutoMigrate {
			if err := store.MigrateUp(ctx, 0); err != nil {
				return fmt.Errorf("migrate postgres: %w", err)
			}
		}

		deps.ledger = postgres.NewStockLedger(store)
		deps.orders = postgres.NewOrderRepository(store)
		deps.promos = postgres.NewPromoRepository(store)
		deps.timeline = postgres.NewTimelineRepository(store)
		deps.outbox = postgres.NewOutboxRepository(store)
		deps.idempotency = postgres.NewIdempotencyRepository(store)
		deps.checkers["postgres"] = health.NewPingChecker("postgres", true, store.Ping)
		logger.WithField("auto_migrate", cfg.PostgresAutoMigrate).Info("using postgres storage")
		return nil

	default:
		return fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// initCache оборачивает репозиторий заказов кэшем выборок.
func initCache(cfg Config, deps *runtimeDependencies, client *goredis.Client, m *metrics.CheckoutMetrics, logger *log.Entry) error {
	var backend cache.Backend
	switch cfg.CacheDriver {
	case CacheDriverNone:
		return nil
	case CacheDriverMemory:
		backend = cache.NewMemoryBackend()
	case CacheDriverRedis:
		backend = redis.NewCacheBackend(client, redisCachePrefix)
	default:
		return fmt.Errorf("unsupported cache driver %q", cfg.CacheDriver)
	}

	deps.orders = cache.NewOrderRepository(deps.orders, backend,
		cache.WithTTL(cfg.CacheTTL),
		cache.WithLogger(logger.WithField("component", "order-cache")),
		cache.WithObserver(m.CacheLookup),
	)
	return nil
}

func initCatalog(cfg Config, deps *runtimeDependencies, logger *log.Entry) error {
	switch cfg.CatalogDriver {
	case CatalogDriverMemory:
		deps.catalog = memory.NewCatalog(demoProducts()...)
	case CatalogDriverSQLite:
		c, err := sqlite.Open(cfg.CatalogSQLitePath)
		if err != nil {
			return fmt.Errorf("open sqlite catalog: %w", err)
		}
		deps.onClose(c.Close)
		deps.catalog = c
	case CatalogDriverHTTP:
		deps.catalog = httpcatalog.New(cfg.CatalogURL,
			httpcatalog.WithTimeout(cfg.CatalogTimeout),
			httpcatalog.WithUserAgent(version.UserAgent(cfg.ServiceName)),
		)
	default:
		return fmt.Errorf("unsupported catalog driver %q", cfg.CatalogDriver)
	}
	logger.WithField("catalog", cfg.CatalogDriver).Info("catalog initialized")
	return nil
}

// demoProducts наполняет in-memory каталог для локального запуска.
func demoProducts() []domain.Product {
	sneakers, _ := domain.NewSizeSet(39, 40, 41, 42, 43, 44)
	boots, _ := domain.NewSizeSet(40, 41, 42, 43)
	return []domain.Product{
		{ID: 1, Name: "Runner Low", PriceMinor: 8990, ImagePath: "/img/runner-low.jpg", Sizes: sneakers},
		{ID: 2, Name: "Trail Boot", PriceMinor: 15990, ImagePath: "/img/trail-boot.jpg", Sizes: boots},
	}
}
