package domain

import (
	"context"
	"time"
)

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет новый заказ вместе со строками. ErrOrderAlreadyExists, если номер занят.
	Create(ctx context.Context, order Order) error
	// Get возвращает заказ по номеру или ErrOrderNotFound, если его нет.
	Get(ctx context.Context, number string) (Order, error)
	// Save обновляет статус, оплату и состояние склада с учётом optimistic locking.
	// Строки заказа и комментарии не меняет.
	Save(ctx context.Context, order Order) error
	// AppendComment дописывает комментарий в журнал заказа.
	AppendComment(ctx context.Context, number string, comment OrderComment) error
	// List возвращает страницу заказов и общее число подходящих под фильтр.
	List(ctx context.Context, query OrderQuery) (OrderPage, error)
	// Stats считает заказы по статусам.
	Stats(ctx context.Context) (OrderStats, error)
	// ListPendingStock возвращает заказы со stock_state=pending, созданные раньше olderThan.
	ListPendingStock(ctx context.Context, olderThan time.Time, limit int) ([]Order, error)
	// Delete физически удаляет заказ (административная очистка).
	Delete(ctx context.Context, number string) error
}
