package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// TimelineRepository хранит историю заказов в timeline_events.
// Внешнего ключа на orders нет: история переживает удаление заказа.
type TimelineRepository struct {
	db *sql.DB
}

func NewTimelineRepository(store *Store) *TimelineRepository {
	return &TimelineRepository{db: store.DB()}
}

func (r *TimelineRepository) Append(ctx context.Context, event domain.TimelineEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}
	if event.Occurred.IsZero() {
		event.Occurred = time.Now().UTC()
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO timeline_events (order_number, type, status, reason, occurred_at) VALUES ($1, $2, $3, $4, $5)`,
		event.OrderNumber, event.Type, string(event.Status), event.Reason, event.Occurred)
	if err != nil {
		return fmt.Errorf("append timeline event %s for %s: %w", event.Type, event.OrderNumber, err)
	}
	return nil
}

// List отдаёт историю по времени; при равном времени действует порядок вставки.
func (r *TimelineRepository) List(ctx context.Context, orderNumber string) ([]domain.TimelineEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT type, status, reason, occurred_at
		FROM timeline_events
		WHERE order_number = $1
		ORDER BY occurred_at, id
	`, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("list timeline for %s: %w", orderNumber, err)
	}
	defer rows.Close()

	var events []domain.TimelineEvent
	for rows.Next() {
		event := domain.TimelineEvent{OrderNumber: orderNumber}
		var status string
		if err := rows.Scan(&event.Type, &status, &event.Reason, &event.Occurred); err != nil {
			return nil, fmt.Errorf("scan timeline event: %w", err)
		}
		event.Status = domain.OrderStatus(status)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate timeline events: %w", err)
	}
	if events == nil {
		events = []domain.TimelineEvent{}
	}
	return events, nil
}

var _ domain.TimelineRepository = (*TimelineRepository)(nil)
