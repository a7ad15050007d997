// Package promo управляет промокодами: предпросмотр скидки и погашение.
package promo

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
)

// Registry — фасад над PromoRepository. Preview только читает,
// счётчик использований меняют Redeem и Release.
type Registry struct {
	repo    domain.PromoRepository
	metrics *metrics.CheckoutMetrics
	logger  *log.Entry
	now     func() time.Time
}

// NewRegistry создаёт реестр промокодов.
func NewRegistry(repo domain.PromoRepository, m *metrics.CheckoutMetrics, logger *log.Entry) *Registry {
	if logger == nil {
		logger = log.WithField("component", "promo")
	}
	return &Registry{
		repo:    repo,
		metrics: m,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create заводит новый код.
func (r *Registry) Create(ctx context.Context, promo domain.PromoCode) error {
	if promo.CreatedAt.IsZero() {
		promo.CreatedAt = r.now()
	}
	if err := r.repo.Create(ctx, promo); err != nil {
		return err
	}
	r.logger.WithField("code", promo.Code).Info("promo code created")
	return nil
}

func (r *Registry) Get(ctx context.Context, code string) (domain.PromoCode, error) {
	return r.repo.Get(ctx, code)
}

// Preview возвращает скидку для суммы. Неизвестный или недоступный код даёт 0.
// Ошибку возвращает только сбой хранилища.
func (r *Registry) Preview(ctx context.Context, code string, amountMinor int64) (int64, error) {
	if code == "" || amountMinor <= 0 {
		return 0, nil
	}
	promo, err := r.repo.Get(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrPromoNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if !promo.Usable(r.now()) {
		return 0, nil
	}
	return promo.Discount(amountMinor), nil
}

// Redeem атомарно занимает одно использование кода.
func (r *Registry) Redeem(ctx context.Context, code string) (domain.PromoCode, error) {
	promo, err := r.repo.Redeem(ctx, code, r.now())
	if err != nil {
		r.metrics.PromoRedemption(redeemResult(err))
		r.logger.WithError(err).WithField("code", code).Debug("promo code rejected")
		return promo, err
	}
	r.metrics.PromoRedemption("redeemed")
	return promo, nil
}

// Release возвращает одно использование при откате оформления.
func (r *Registry) Release(ctx context.Context, code string) error {
	if err := r.repo.Release(ctx, code); err != nil {
		return err
	}
	r.metrics.PromoRedemption("released")
	return nil
}

// Deactivate выключает код; уже оформленные заказы не меняются.
func (r *Registry) Deactivate(ctx context.Context, code string) error {
	if err := r.repo.SetActive(ctx, code, false); err != nil {
		return err
	}
	r.logger.WithField("code", code).Info("promo code deactivated")
	return nil
}

func redeemResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrCodeInactive):
		return "inactive"
	case errors.Is(err, domain.ErrCodeExpired):
		return "expired"
	case errors.Is(err, domain.ErrCodeExhausted):
		return "exhausted"
	case errors.Is(err, domain.ErrPromoNotFound):
		return "not_found"
	default:
		return "error"
	}
}
