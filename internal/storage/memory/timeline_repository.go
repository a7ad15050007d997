package memory

import (
	"context"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// TimelineRepository — история заказов в памяти процесса.
type TimelineRepository struct {
	mu      sync.RWMutex
	byOrder map[string][]domain.TimelineEvent
}

func NewTimelineRepository() *TimelineRepository {
	return &TimelineRepository{byOrder: make(map[string][]domain.TimelineEvent)}
}

func (r *TimelineRepository) Append(_ context.Context, event domain.TimelineEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}
	if event.Occurred.IsZero() {
		event.Occurred = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	history := append(r.byOrder[event.OrderNumber], event)
	domain.SortTimeline(history)
	r.byOrder[event.OrderNumber] = history
	return nil
}

// List возвращает копию истории заказа; для неизвестного номера пустой срез.
func (r *TimelineRepository) List(_ context.Context, orderNumber string) ([]domain.TimelineEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.TimelineEvent{}, r.byOrder[orderNumber]...), nil
}

var _ domain.TimelineRepository = (*TimelineRepository)(nil)
