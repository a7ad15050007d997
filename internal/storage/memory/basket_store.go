package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// sessionBasket — корзина одной сессии со своей блокировкой.
type sessionBasket struct {
	mu    sync.Mutex
	lines []domain.BasketLine
}

// basketStoreInMemory держит корзины по сессиям. Общая блокировка нужна только
// для поиска корзины, изменения идут под блокировкой конкретной сессии.
type basketStoreInMemory struct {
	mu       sync.Mutex
	sessions map[string]*sessionBasket
}

// NewBasketStore создаёт in-memory хранилище корзин.
func NewBasketStore() domain.BasketStore {
	return &basketStoreInMemory{sessions: make(map[string]*sessionBasket)}
}

func (s *basketStoreInMemory) session(id string) *sessionBasket {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.sessions[id]
	if !ok {
		b = &sessionBasket{}
		s.sessions[id] = b
	}
	return b
}

func (s *basketStoreInMemory) Get(_ context.Context, sessionID string) ([]domain.BasketLine, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, domain.ErrBasketEmpty
	}
	b := s.session(sessionID)
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]domain.BasketLine, len(b.lines))
	copy(out, b.lines)
	return out, nil
}

func (s *basketStoreInMemory) Add(_ context.Context, sessionID string, line domain.BasketLine) error {
	if line.Quantity <= 0 {
		return domain.ErrInvalidAmount
	}
	b := s.session(sessionID)
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.lines {
		if b.lines[i].ProductID == line.ProductID && b.lines[i].Size == line.Size {
			b.lines[i].Quantity += line.Quantity
			return nil
		}
	}
	b.lines = append(b.lines, line)
	return nil
}

func (s *basketStoreInMemory) Remove(_ context.Context, sessionID string, productID int64, size int) error {
	b := s.session(sessionID)
	b.mu.Lock()
	defer b.mu.Unlock()

	kept := b.lines[:0]
	for _, l := range b.lines {
		if l.ProductID == productID && l.Size == size {
			continue
		}
		kept = append(kept, l)
	}
	b.lines = kept
	return nil
}

func (s *basketStoreInMemory) Subtract(_ context.Context, sessionID string, lines []domain.BasketLine) error {
	b := s.session(sessionID)
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range lines {
		for i := range b.lines {
			if b.lines[i].ProductID == sub.ProductID && b.lines[i].Size == sub.Size {
				b.lines[i].Quantity -= sub.Quantity
				break
			}
		}
	}
	kept := b.lines[:0]
	for _, l := range b.lines {
		if l.Quantity > 0 {
			kept = append(kept, l)
		}
	}
	b.lines = kept
	return nil
}

func (s *basketStoreInMemory) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

var _ domain.BasketStore = (*basketStoreInMemory)(nil)
