package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация OrderRepository.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Order
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		items: make(map[string]domain.Order),
	}
}

// Create сохраняет новый заказ, если номер ещё не занят.
func (r *orderRepositoryInMemory) Create(_ context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[order.Number]; exists {
		return domain.ErrOrderAlreadyExists
	}
	// Сохраняем копию, чтобы избежать непредсказуемых мутаций извне.
	r.items[order.Number] = order.Clone()
	return nil
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepositoryInMemory) Get(_ context.Context, number string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[number]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order.Clone(), nil
}

// Save перезаписывает изменяемые поля заказа, проверяя версию (optimistic locking).
func (r *orderRepositoryInMemory) Save(_ context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[order.Number]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if current.Version != order.Version {
		return domain.ErrOrderVersionConflict
	}

	updated := current.Clone()
	updated.Status = order.Status
	updated.PaymentDate = order.Clone().PaymentDate
	updated.StockState = order.StockState
	updated.UpdatedAt = order.UpdatedAt
	// Инкрементируем версию перед сохранением.
	updated.Version++
	r.items[order.Number] = updated
	return nil
}

// AppendComment дописывает комментарий, не трогая версию заказа.
func (r *orderRepositoryInMemory) AppendComment(_ context.Context, number string, comment domain.OrderComment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.items[number]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order = order.Clone()
	order.Comments = append(order.Comments, comment)
	r.items[number] = order
	return nil
}

func (r *orderRepositoryInMemory) List(_ context.Context, query domain.OrderQuery) (domain.OrderPage, error) {
	query = query.Normalize()

	r.mu.RLock()
	matched := make([]domain.Order, 0, len(r.items))
	for _, order := range r.items {
		if !query.Filter.Match(order.Status) {
			continue
		}
		if query.CustomerID != "" && order.CustomerID != query.CustomerID {
			continue
		}
		matched = append(matched, order.Clone())
	}
	r.mu.RUnlock()

	sortOrders(matched, query.Sort)

	page := domain.OrderPage{Total: len(matched), Orders: []domain.Order{}}
	start := query.Offset()
	if start >= len(matched) {
		return page, nil
	}
	end := start + query.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	page.Orders = matched[start:end]
	return page, nil
}

func (r *orderRepositoryInMemory) Stats(_ context.Context) (domain.OrderStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[domain.OrderStatus]int)
	for _, order := range r.items {
		counts[order.Status]++
	}
	return domain.NewOrderStats(counts), nil
}

func (r *orderRepositoryInMemory) ListPendingStock(_ context.Context, olderThan time.Time, limit int) ([]domain.Order, error) {
	r.mu.RLock()
	result := make([]domain.Order, 0)
	for _, order := range r.items {
		if order.StockState != domain.StockStatePending || !order.CreatedAt.Before(olderThan) {
			continue
		}
		result = append(result, order.Clone())
	}
	r.mu.RUnlock()

	sortOrders(result, domain.SortOldest)
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *orderRepositoryInMemory) Delete(_ context.Context, number string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[number]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.items, number)
	return nil
}

// sortOrders упорядочивает заказы; при равенстве ключа порядок задаёт номер.
func sortOrders(orders []domain.Order, order domain.SortOrder) {
	sort.Slice(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		switch order {
		case domain.SortOldest:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.Number < b.Number
		case domain.SortTotalDesc:
			if a.TotalMinor != b.TotalMinor {
				return a.TotalMinor > b.TotalMinor
			}
		case domain.SortTotalAsc:
			if a.TotalMinor != b.TotalMinor {
				return a.TotalMinor < b.TotalMinor
			}
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.Number > b.Number
	})
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
