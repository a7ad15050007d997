package domain

import (
	"context"
	"strings"
	"time"
)

// StockLedger — хранилище остатков по парам (товар, размер).
// Все изменения остатка атомарны относительно конкурентных вызовов по тому же ключу.
type StockLedger interface {
	// GetQuantity возвращает остаток или 0, если записи нет.
	GetQuantity(ctx context.Context, productID int64, size int) (int, error)
	// Quantities возвращает остатки по всем размерам товара, для которых есть записи.
	Quantities(ctx context.Context, productID int64) (map[int]int, error)
	// Add оприходует amount ≥ 0 единиц, создавая запись при необходимости.
	Add(ctx context.Context, productID int64, size, amount int, purchasePriceMinor int64) error
	// Reduce условно списывает amount > 0 единиц и возвращает новый остаток.
	// При нехватке возвращает *InsufficientStockError и ничего не меняет.
	Reduce(ctx context.Context, productID int64, size, amount int) (int, error)
	// Set перезаписывает остаток (инвентаризация).
	Set(ctx context.Context, productID int64, size, quantity int, purchasePriceMinor int64) error
	// ReduceForOrder списывает одну единицу под заказ и пишет её в журнал.
	// Повторный вызов для той же (orderNumber, unitIndex) ничего не меняет.
	ReduceForOrder(ctx context.Context, orderNumber string, unitIndex int, productID int64, size int) error
	// ReleaseOrder возвращает на склад все ещё не возвращённые единицы заказа.
	ReleaseOrder(ctx context.Context, orderNumber string) (int, error)
	// CommittedUnits — количество списанных и не возвращённых единиц заказа.
	CommittedUnits(ctx context.Context, orderNumber string) (int, error)
}

// PromoRepository хранит промокоды. Redeem и Release — единственные изменения счётчика.
type PromoRepository interface {
	Create(ctx context.Context, promo PromoCode) error
	Get(ctx context.Context, code string) (PromoCode, error)
	// Redeem атомарно проверяет доступность кода на момент now и увеличивает счётчик.
	Redeem(ctx context.Context, code string, now time.Time) (PromoCode, error)
	// Release отдаёт одно использование обратно (компенсация), не уходя ниже нуля.
	Release(ctx context.Context, code string) error
	SetActive(ctx context.Context, code string, active bool) error
}

// Catalog — внешний справочник товаров.
type Catalog interface {
	// Product возвращает карточку или ErrProductNotFound.
	Product(ctx context.Context, id int64) (Product, error)
}

// BasketLine — позиция корзины до оформления.
type BasketLine struct {
	ProductID int64
	Size      int
	Quantity  int
}

// BasketStore хранит корзины по идентификатору сессии.
type BasketStore interface {
	// Get возвращает позиции в порядке добавления; пустая корзина — пустой срез.
	Get(ctx context.Context, sessionID string) ([]BasketLine, error)
	// Add увеличивает количество позиции или добавляет её в конец.
	Add(ctx context.Context, sessionID string, line BasketLine) error
	// Remove удаляет позицию целиком.
	Remove(ctx context.Context, sessionID string, productID int64, size int) error
	// Subtract уменьшает количества на lines; позиции с нулевым остатком удаляются,
	// отсутствующие пропускаются.
	Subtract(ctx context.Context, sessionID string, lines []BasketLine) error
	Clear(ctx context.Context, sessionID string) error
}

// OutboxPublisher публикует события из transactional outbox.
type OutboxPublisher interface {
	// Publish передаёт событие наружу; должен быть идемпотентным.
	Publish(ctx context.Context, event OutboxMessage) error
}

// OutboxRepository позволяет сохранять события для последующей публикации.
type OutboxRepository interface {
	Enqueue(ctx context.Context, msg OutboxMessage) (OutboxMessage, error)
	PullPending(ctx context.Context, limit int) ([]OutboxMessage, error)
	Stats(ctx context.Context) (OutboxStats, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
}

// TimelineRepository хранит события жизненного цикла заказа.
type TimelineRepository interface {
	Append(ctx context.Context, event TimelineEvent) error
	List(ctx context.Context, orderNumber string) ([]TimelineEvent, error)
}

// IdempotencyRepository хранит состояние обработки запросов по idempotency-key.
type IdempotencyRepository interface {
	CreateProcessing(ctx context.Context, key, requestHash string, ttlAt time.Time) (IdempotencyRecord, error)
	Get(ctx context.Context, key string) (IdempotencyRecord, error)
	MarkDone(ctx context.Context, key string, responseBody []byte, httpStatus int) error
	MarkFailed(ctx context.Context, key string, responseBody []byte, httpStatus int) error
	// Delete освобождает ключ: следующий запрос с ним выполняется заново.
	Delete(ctx context.Context, key string) error
	DeleteExpired(ctx context.Context, before time.Time, limit int) (int, error)
}

// CheckoutStep задаёт константы шагов оформления для метрик/логов.
type CheckoutStep string

const (
	CheckoutStepPreflight CheckoutStep = "preflight"
	CheckoutStepPromo     CheckoutStep = "promo"
	CheckoutStepPersist   CheckoutStep = "persist"
	CheckoutStepReduce    CheckoutStep = "reduce"
	CheckoutStepRollback  CheckoutStep = "rollback"
	CheckoutStepCommit    CheckoutStep = "commit"
)

// OutboxMessage — событие заказа, ожидающее публикации. CreatedAt
// заполняет хранилище при Enqueue.
type OutboxMessage struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
	CreatedAt     time.Time
}

// Validate проверяет обязательные для публикации поля.
func (m OutboxMessage) Validate() error {
	if strings.TrimSpace(m.AggregateID) == "" || strings.TrimSpace(m.EventType) == "" {
		return ErrInvalidOutboxMessage
	}
	return nil
}

// OutboxStats — размер backlog: ожидающие публикации и ушедшие в failed записи.
type OutboxStats struct {
	PendingCount    int
	FailedCount     int
	OldestPendingAt time.Time
}
