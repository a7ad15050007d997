package domain

import (
	"fmt"
	"strings"
	"time"
)

// OrderStatus описывает этап исполнения заказа.
type OrderStatus string

const (
	// OrderStatusCreated — заказ оформлен, оплата не подтверждена.
	OrderStatusCreated OrderStatus = "created"
	// OrderStatusPaid — получен сигнал об оплате.
	OrderStatusPaid              OrderStatus = "paid"
	OrderStatusProcessing        OrderStatus = "processing"
	OrderStatusAwaitingShipment  OrderStatus = "awaiting_shipment"
	OrderStatusShipped           OrderStatus = "shipped"
	OrderStatusInTransit         OrderStatus = "in_transit"
	OrderStatusArrived           OrderStatus = "arrived"
	OrderStatusReadyForPickup    OrderStatus = "ready_for_pickup"
	OrderStatusCompleted         OrderStatus = "completed"
	// OrderStatusCanceled — заказ отменён администратором или откатом оформления.
	OrderStatusCanceled OrderStatus = "canceled"
	// OrderStatusReturned — товар вернули после получения.
	OrderStatusReturned OrderStatus = "returned"
)

var orderStatuses = []OrderStatus{
	OrderStatusCreated,
	OrderStatusPaid,
	OrderStatusProcessing,
	OrderStatusAwaitingShipment,
	OrderStatusShipped,
	OrderStatusInTransit,
	OrderStatusArrived,
	OrderStatusReadyForPickup,
	OrderStatusCompleted,
	OrderStatusCanceled,
	OrderStatusReturned,
}

// OrderStatuses возвращает все статусы в порядке жизненного цикла.
func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatuses))
	copy(out, orderStatuses)
	return out
}

// Valid проверяет, что статус известен.
func (s OrderStatus) Valid() bool {
	for _, st := range orderStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Terminal — статусы, которые не попадают в выборку активных заказов.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCanceled || s == OrderStatusReturned
}

// ParseOrderStatus разбирает статус без учёта регистра.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// OrderSource — канал, через который оформлен заказ.
type OrderSource string

const (
	OrderSourceSite  OrderSource = "site"
	OrderSourceBot   OrderSource = "bot"
	OrderSourceAdmin OrderSource = "admin"
)

// StockState показывает, списан ли склад под заказ.
type StockState string

const (
	// StockStatePending — заказ сохранён, списание ещё не подтверждено.
	StockStatePending StockState = "pending"
	// StockStateCommitted — все единицы списаны.
	StockStateCommitted StockState = "committed"
	// StockStateReleased — списанные единицы возвращены на склад.
	StockStateReleased StockState = "released"
)

// Recipient — снимок данных получателя на момент оформления.
type Recipient struct {
	Name    string
	Address string
	Phone   string
}

// OrderDetail — снимок одной физической единицы товара на момент продажи.
type OrderDetail struct {
	ProductID  int64
	Name       string
	ImagePath  string
	PriceMinor int64
	Size       int
}

// OrderComment — запись журнала комментариев администратора.
type OrderComment struct {
	ID        string
	Author    string
	Text      string
	CreatedAt time.Time
}

// Order агрегирует состояние заказа, его строки и журнал комментариев.
type Order struct {
	Number         string
	CustomerID     string
	Status         OrderStatus
	Comment        string
	Recipient      Recipient
	Details        []OrderDetail
	PaymentType    string
	PaymentDate    *time.Time
	DeliveryType   string
	Source         OrderSource
	ExternalUserID string
	Comments       []OrderComment

	PromoCode     string
	SubtotalMinor int64
	DiscountMinor int64
	TotalMinor    int64

	StockState StockState
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ApplyStatus меняет статус заказа. Переходы не ограничиваются порядком жизненного
// цикла. При переходе в Paid дата оплаты ставится только если её ещё нет.
func (o *Order) ApplyStatus(status OrderStatus, now time.Time) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if status == OrderStatusPaid && o.PaymentDate == nil {
		paid := now
		o.PaymentDate = &paid
	}
	o.Status = status
	o.UpdatedAt = now
	return nil
}

// SubtotalOf суммирует цены строк.
func SubtotalOf(details []OrderDetail) int64 {
	var sum int64
	for _, d := range details {
		sum += d.PriceMinor
	}
	return sum
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if strings.TrimSpace(o.Number) == "" {
		errs = append(errs, fmt.Errorf("order number is required"))
	}
	if !o.Status.Valid() {
		errs = append(errs, ErrInvalidStatus)
	}
	if len(o.Details) == 0 {
		errs = append(errs, ErrBasketEmpty)
	}
	if strings.TrimSpace(o.Recipient.Name) == "" {
		errs = append(errs, ErrRecipientRequired)
	}
	for _, d := range o.Details {
		if d.PriceMinor < 0 {
			errs = append(errs, fmt.Errorf("%w: negative unit price", ErrInvalidAmount))
		}
		if !ValidSize(d.Size) {
			errs = append(errs, ErrInvalidSize)
		}
	}
	if o.SubtotalMinor != SubtotalOf(o.Details) {
		errs = append(errs, fmt.Errorf("order subtotal does not match details sum"))
	}
	if o.DiscountMinor < 0 || o.DiscountMinor > o.SubtotalMinor {
		errs = append(errs, fmt.Errorf("%w: discount out of range", ErrInvalidAmount))
	}
	if o.TotalMinor != o.SubtotalMinor-o.DiscountMinor {
		errs = append(errs, fmt.Errorf("order total does not match subtotal minus discount"))
	}

	return errs
}

// Clone возвращает глубокую копию, чтобы хранилища не делили срезы с вызывающим кодом.
func (o Order) Clone() Order {
	out := o
	out.Details = append([]OrderDetail(nil), o.Details...)
	out.Comments = append([]OrderComment(nil), o.Comments...)
	if o.PaymentDate != nil {
		pd := *o.PaymentDate
		out.PaymentDate = &pd
	}
	return out
}
