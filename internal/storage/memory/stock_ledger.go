package memory

import (
	"context"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type stockKey struct {
	productID int64
	size      int
}

type movementKey struct {
	orderNumber string
	unitIndex   int
}

// stockLedgerInMemory держит остатки и журнал списаний под одним мьютексом.
// Под блокировкой нет I/O, поэтому критическая секция короткая.
type stockLedgerInMemory struct {
	mu        sync.Mutex
	records   map[stockKey]domain.StockRecord
	movements map[movementKey]domain.StockMovement
	byOrder   map[string][]movementKey
}

// NewStockLedger возвращает in-memory реализацию StockLedger.
func NewStockLedger() domain.StockLedger {
	return &stockLedgerInMemory{
		records:   make(map[stockKey]domain.StockRecord),
		movements: make(map[movementKey]domain.StockMovement),
		byOrder:   make(map[string][]movementKey),
	}
}

func (l *stockLedgerInMemory) GetQuantity(_ context.Context, productID int64, size int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.records[stockKey{productID, size}].Quantity, nil
}

func (l *stockLedgerInMemory) Quantities(_ context.Context, productID int64) (map[int]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[int]int)
	for key, rec := range l.records {
		if key.productID == productID {
			out[key.size] = rec.Quantity
		}
	}
	return out, nil
}

func (l *stockLedgerInMemory) Add(_ context.Context, productID int64, size, amount int, purchasePriceMinor int64) error {
	if amount < 0 || purchasePriceMinor < 0 {
		return domain.ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	key := stockKey{productID, size}
	rec := l.records[key]
	rec.ProductID, rec.Size = productID, size
	rec.Quantity += amount
	rec.PurchasePriceMinor = purchasePriceMinor
	rec.UpdatedAt = time.Now().UTC()
	l.records[key] = rec
	return nil
}

func (l *stockLedgerInMemory) Reduce(_ context.Context, productID int64, size, amount int) (int, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.reduceLocked(stockKey{productID, size}, amount)
}

func (l *stockLedgerInMemory) reduceLocked(key stockKey, amount int) (int, error) {
	rec := l.records[key]
	if rec.Quantity < amount {
		return rec.Quantity, &domain.InsufficientStockError{
			ProductID: key.productID,
			Size:      key.size,
			Requested: amount,
			Available: rec.Quantity,
		}
	}
	rec.Quantity -= amount
	rec.UpdatedAt = time.Now().UTC()
	l.records[key] = rec
	return rec.Quantity, nil
}

func (l *stockLedgerInMemory) Set(_ context.Context, productID int64, size, quantity int, purchasePriceMinor int64) error {
	if quantity < 0 || purchasePriceMinor < 0 {
		return domain.ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.records[stockKey{productID, size}] = domain.StockRecord{
		ProductID:          productID,
		Size:               size,
		Quantity:           quantity,
		PurchasePriceMinor: purchasePriceMinor,
		UpdatedAt:          time.Now().UTC(),
	}
	return nil
}

func (l *stockLedgerInMemory) ReduceForOrder(_ context.Context, orderNumber string, unitIndex int, productID int64, size int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	mk := movementKey{orderNumber, unitIndex}
	if existing, ok := l.movements[mk]; ok {
		if existing.ReleasedAt != nil {
			return domain.ErrStockReleased
		}
		return nil
	}

	if _, err := l.reduceLocked(stockKey{productID, size}, 1); err != nil {
		return err
	}

	l.movements[mk] = domain.StockMovement{
		OrderNumber: orderNumber,
		UnitIndex:   unitIndex,
		ProductID:   productID,
		Size:        size,
		CreatedAt:   time.Now().UTC(),
	}
	l.byOrder[orderNumber] = append(l.byOrder[orderNumber], mk)
	return nil
}

func (l *stockLedgerInMemory) ReleaseOrder(_ context.Context, orderNumber string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now().UTC()
	restored := 0
	for _, mk := range l.byOrder[orderNumber] {
		mv := l.movements[mk]
		if mv.ReleasedAt != nil {
			continue
		}
		key := stockKey{mv.ProductID, mv.Size}
		rec := l.records[key]
		rec.Quantity++
		rec.UpdatedAt = now
		l.records[key] = rec

		released := now
		mv.ReleasedAt = &released
		l.movements[mk] = mv
		restored++
	}
	return restored, nil
}

func (l *stockLedgerInMemory) CommittedUnits(_ context.Context, orderNumber string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, mk := range l.byOrder[orderNumber] {
		if l.movements[mk].ReleasedAt == nil {
			n++
		}
	}
	return n, nil
}

var _ domain.StockLedger = (*stockLedgerInMemory)(nil)
