package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// DefaultTTL ограничивает устаревание выборок, если запись в БД прошла мимо декоратора.
const DefaultTTL = 30 * time.Second

// Stats — счётчики обращений к кэшу.
type Stats struct {
	Hits   uint64
	Misses uint64
	Errors uint64
}

// Option настраивает OrderRepository.
type Option func(*OrderRepository)

// WithTTL задаёт время жизни закэшированных выборок.
func WithTTL(ttl time.Duration) Option {
	return func(r *OrderRepository) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithLogger задаёт логгер декоратора.
func WithLogger(logger *log.Entry) Option {
	return func(r *OrderRepository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithObserver подключает внешний учёт попаданий и промахов (например, метрики).
func WithObserver(observe func(op string, hit bool)) Option {
	return func(r *OrderRepository) {
		r.observe = observe
	}
}

// OrderRepository кэширует List и Stats. Get всегда идёт в хранилище:
// им пользуются изменяющие операции, которым нужна актуальная версия.
type OrderRepository struct {
	next    domain.OrderRepository
	backend Backend
	ttl     time.Duration
	logger  *log.Entry
	observe func(op string, hit bool)
	group   singleflight.Group

	hits   atomic.Uint64
	misses atomic.Uint64
	errors atomic.Uint64
}

// NewOrderRepository оборачивает репозиторий заказов кэшем.
func NewOrderRepository(next domain.OrderRepository, backend Backend, opts ...Option) *OrderRepository {
	r := &OrderRepository{
		next:    next,
		backend: backend,
		ttl:     DefaultTTL,
		logger:  log.WithField("component", "order-cache"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *OrderRepository) Create(ctx context.Context, order domain.Order) error {
	if err := r.next.Create(ctx, order); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *OrderRepository) Get(ctx context.Context, number string) (domain.Order, error) {
	return r.next.Get(ctx, number)
}

func (r *OrderRepository) Save(ctx context.Context, order domain.Order) error {
	if err := r.next.Save(ctx, order); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *OrderRepository) AppendComment(ctx context.Context, number string, comment domain.OrderComment) error {
	if err := r.next.AppendComment(ctx, number, comment); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, number string) error {
	if err := r.next.Delete(ctx, number); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// ListPendingStock обслуживает сверку и всегда читает из хранилища.
func (r *OrderRepository) ListPendingStock(ctx context.Context, olderThan time.Time, limit int) ([]domain.Order, error) {
	return r.next.ListPendingStock(ctx, olderThan, limit)
}

func (r *OrderRepository) List(ctx context.Context, query domain.OrderQuery) (domain.OrderPage, error) {
	query = query.Normalize()
	var page domain.OrderPage
	err := r.cached(ctx, "list", query.CacheKey(), &page, func(ctx context.Context) (any, error) {
		return r.next.List(ctx, query)
	})
	return page, err
}

func (r *OrderRepository) Stats(ctx context.Context) (domain.OrderStats, error) {
	var stats domain.OrderStats
	err := r.cached(ctx, "stats", "all", &stats, func(ctx context.Context) (any, error) {
		return r.next.Stats(ctx)
	})
	return stats, err
}

// Snapshot возвращает текущие счётчики.
func (r *OrderRepository) Snapshot() Stats {
	return Stats{
		Hits:   r.hits.Load(),
		Misses: r.misses.Load(),
		Errors: r.errors.Load(),
	}
}

// cached читает значение из кэша или загружает его через load. Ошибки кэша
// не ломают чтение: запрос уходит в хранилище.
func (r *OrderRepository) cached(ctx context.Context, op, key string, dest any, load func(context.Context) (any, error)) error {
	generation, err := r.backend.Generation(ctx)
	if err != nil {
		r.backendFailed(err, op)
		value, err := load(ctx)
		if err != nil {
			return err
		}
		return assign(value, dest)
	}

	fullKey := fmt.Sprintf("orders:%s:g%d:%s", op, generation, key)
	if raw, ok, err := r.backend.Get(ctx, fullKey); err != nil {
		r.backendFailed(err, op)
	} else if ok {
		if err := json.Unmarshal(raw, dest); err == nil {
			r.record(op, true)
			return nil
		}
		r.errors.Add(1)
	}
	r.record(op, false)

	raw, err, _ := r.group.Do(fullKey, func() (any, error) {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encode cached %s: %w", op, err)
		}
		if err := r.backend.Set(ctx, fullKey, encoded, r.ttl); err != nil {
			r.backendFailed(err, op)
		}
		return encoded, nil
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw.([]byte), dest); err != nil {
		return fmt.Errorf("decode cached %s: %w", op, err)
	}
	return nil
}

func (r *OrderRepository) invalidate(ctx context.Context) {
	if _, err := r.backend.Invalidate(ctx); err != nil {
		r.errors.Add(1)
		r.logger.WithError(err).Warn("failed to invalidate order cache, entries expire by ttl")
	}
}

func (r *OrderRepository) backendFailed(err error, op string) {
	r.errors.Add(1)
	r.logger.WithError(err).WithField("op", op).Warn("order cache backend unavailable")
}

func (r *OrderRepository) record(op string, hit bool) {
	if hit {
		r.hits.Add(1)
	} else {
		r.misses.Add(1)
	}
	if r.observe != nil {
		r.observe(op, hit)
	}
}

func assign(value any, dest any) error {
	switch d := dest.(type) {
	case *domain.OrderPage:
		*d = value.(domain.OrderPage)
	case *domain.OrderStats:
		*d = value.(domain.OrderStats)
	default:
		return fmt.Errorf("unsupported cache destination %T", dest)
	}
	return nil
}

var _ domain.OrderRepository = (*OrderRepository)(nil)
