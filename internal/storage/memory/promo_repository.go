package memory

import (
	"context"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type promoRepositoryInMemory struct {
	mu    sync.Mutex
	items map[string]domain.PromoCode
}

// NewPromoRepository создаёт in-memory реализацию PromoRepository.
func NewPromoRepository() domain.PromoRepository {
	return &promoRepositoryInMemory{items: make(map[string]domain.PromoCode)}
}

func (r *promoRepositoryInMemory) Create(_ context.Context, promo domain.PromoCode) error {
	if err := promo.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[promo.Code]; exists {
		return domain.ErrPromoAlreadyExists
	}
	if promo.CreatedAt.IsZero() {
		promo.CreatedAt = time.Now().UTC()
	}
	r.items[promo.Code] = clonePromo(promo)
	return nil
}

func (r *promoRepositoryInMemory) Get(_ context.Context, code string) (domain.PromoCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	promo, ok := r.items[code]
	if !ok {
		return domain.PromoCode{}, domain.ErrPromoNotFound
	}
	return clonePromo(promo), nil
}

// Redeem проверяет доступность и увеличивает счётчик под одной блокировкой.
func (r *promoRepositoryInMemory) Redeem(_ context.Context, code string, now time.Time) (domain.PromoCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	promo, ok := r.items[code]
	if !ok {
		return domain.PromoCode{}, domain.ErrPromoNotFound
	}
	if err := promo.UnusableReason(now); err != nil {
		return clonePromo(promo), err
	}
	promo.UsageCount++
	r.items[code] = promo
	return clonePromo(promo), nil
}

func (r *promoRepositoryInMemory) Release(_ context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	promo, ok := r.items[code]
	if !ok {
		return domain.ErrPromoNotFound
	}
	if promo.UsageCount > 0 {
		promo.UsageCount--
		r.items[code] = promo
	}
	return nil
}

func (r *promoRepositoryInMemory) SetActive(_ context.Context, code string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	promo, ok := r.items[code]
	if !ok {
		return domain.ErrPromoNotFound
	}
	promo.Active = active
	r.items[code] = promo
	return nil
}

func clonePromo(src domain.PromoCode) domain.PromoCode {
	dst := src
	if src.MaxDiscountMinor != nil {
		v := *src.MaxDiscountMinor
		dst.MaxDiscountMinor = &v
	}
	if src.ExpiresAt != nil {
		v := *src.ExpiresAt
		dst.ExpiresAt = &v
	}
	if src.UsageLimit != nil {
		v := *src.UsageLimit
		dst.UsageLimit = &v
	}
	return dst
}

var _ domain.PromoRepository = (*promoRepositoryInMemory)(nil)
