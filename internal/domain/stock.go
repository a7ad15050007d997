package domain

import "time"

// StockRecord — счётчик остатка для пары (товар, размер).
type StockRecord struct {
	ProductID int64
	Size      int
	// Quantity никогда не бывает отрицательным.
	Quantity int
	// PurchasePriceMinor — закупочная цена последней поставки в минимальных единицах.
	PurchasePriceMinor int64
	UpdatedAt          time.Time
}

// StockMovement — запись журнала списаний по заказу: одна строка на одну единицу.
// По журналу откатывается прерванное оформление и проверяется сверка.
type StockMovement struct {
	OrderNumber string
	UnitIndex   int
	ProductID   int64
	Size        int
	CreatedAt   time.Time
	ReleasedAt  *time.Time
}

// Product — карточка товара из внешнего каталога.
type Product struct {
	ID         int64
	Name       string
	PriceMinor int64
	ImagePath  string
	Sizes      SizeSet
}

// AvailabilityStatus — сводный сигнал наличия товара.
type AvailabilityStatus string

const (
	AvailabilityInStock    AvailabilityStatus = "in_stock"
	AvailabilityLowStock   AvailabilityStatus = "low_stock"
	AvailabilityOutOfStock AvailabilityStatus = "out_of_stock"
)

// AvailabilityThresholds задаёт границы статусов наличия.
// Сумма ≥ InStock → InStock, ≥ LowStock → LowStock, иначе OutOfStock.
type AvailabilityThresholds struct {
	LowStock int
	InStock  int
}

// DefaultAvailabilityThresholds: 0 → нет в наличии, 1–4 → мало, от 5 → в наличии.
func DefaultAvailabilityThresholds() AvailabilityThresholds {
	return AvailabilityThresholds{LowStock: 1, InStock: 5}
}

// Classify переводит суммарный остаток в статус.
func (t AvailabilityThresholds) Classify(total int) AvailabilityStatus {
	switch {
	case total >= t.InStock:
		return AvailabilityInStock
	case total >= t.LowStock && total > 0:
		return AvailabilityLowStock
	default:
		return AvailabilityOutOfStock
	}
}

// Valid проверяет согласованность порогов.
func (t AvailabilityThresholds) Valid() bool {
	return t.LowStock >= 1 && t.InStock >= t.LowStock
}
