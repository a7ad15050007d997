package domain

import (
	"sort"
	"strings"
	"time"
)

// Типы событий истории заказа.
const (
	TimelineOrderCreated       = "OrderCreated"
	TimelineStatusChanged      = "OrderStatusChanged"
	TimelineCommentAdded       = "OrderCommentAdded"
	TimelineCheckoutRolledBack = "OrderCheckoutRolledBack"
	TimelineReconciled         = "OrderReconciled"
	TimelineOrderPurged        = "OrderPurged"
)

// TimelineEvent — запись истории заказа. Status фиксирует статус заказа
// на момент события; для комментариев он может быть пустым.
type TimelineEvent struct {
	OrderNumber string
	Type        string
	Status      OrderStatus
	Reason      string
	Occurred    time.Time
}

// Validate проверяет обязательные поля.
func (e TimelineEvent) Validate() error {
	if strings.TrimSpace(e.OrderNumber) == "" || strings.TrimSpace(e.Type) == "" {
		return ErrInvalidTimelineEvent
	}
	return nil
}

// SortTimeline упорядочивает события по времени, сохраняя порядок записи при равенстве.
func SortTimeline(events []TimelineEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Occurred.Before(events[j].Occurred)
	})
}
