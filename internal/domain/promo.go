package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MaxPromoCodeLength — максимальная длина кода.
const MaxPromoCodeLength = 20

var hundred = decimal.NewFromInt(100)

// PromoCode описывает процентную скидку с необязательными ограничениями.
type PromoCode struct {
	// Code уникален и чувствителен к регистру.
	Code string
	// DiscountPercent в диапазоне (0, 100].
	DiscountPercent decimal.Decimal
	// MaxDiscountMinor — потолок скидки; nil означает без ограничения.
	MaxDiscountMinor *int64
	Active           bool
	CreatedAt        time.Time
	// ExpiresAt — код действует строго до этого момента.
	ExpiresAt *time.Time
	// UsageLimit — nil означает без ограничения количества использований.
	UsageLimit *int
	UsageCount int
}

// Validate проверяет параметры кода перед созданием.
func (p PromoCode) Validate() error {
	code := strings.TrimSpace(p.Code)
	switch {
	case code == "" || code != p.Code:
		return fmt.Errorf("%w: code must be non-empty without surrounding spaces", ErrInvalidPromo)
	case len([]rune(code)) > MaxPromoCodeLength:
		return fmt.Errorf("%w: code longer than %d characters", ErrInvalidPromo, MaxPromoCodeLength)
	case !p.DiscountPercent.IsPositive() || p.DiscountPercent.GreaterThan(hundred):
		return fmt.Errorf("%w: discount percent must be in (0, 100]", ErrInvalidPromo)
	case p.MaxDiscountMinor != nil && *p.MaxDiscountMinor < 0:
		return fmt.Errorf("%w: max discount must be non-negative", ErrInvalidPromo)
	case p.UsageLimit != nil && *p.UsageLimit < 0:
		return fmt.Errorf("%w: usage limit must be non-negative", ErrInvalidPromo)
	case p.UsageCount < 0:
		return fmt.Errorf("%w: usage count must be non-negative", ErrInvalidPromo)
	}
	return nil
}

// UnusableReason возвращает причину, по которой код нельзя применить, или nil.
// Порядок проверок: выключен, истёк, исчерпан.
func (p PromoCode) UnusableReason(now time.Time) error {
	if !p.Active {
		return ErrCodeInactive
	}
	if p.ExpiresAt != nil && !now.Before(*p.ExpiresAt) {
		return ErrCodeExpired
	}
	if p.UsageLimit != nil && p.UsageCount >= *p.UsageLimit {
		return ErrCodeExhausted
	}
	return nil
}

// Usable — код активен, не истёк и не исчерпан.
func (p PromoCode) Usable(now time.Time) bool {
	return p.UnusableReason(now) == nil
}

// Discount считает скидку для суммы: amount*percent/100 с округлением вниз,
// не больше потолка и не больше самой суммы. Доступность кода не проверяет.
func (p PromoCode) Discount(amountMinor int64) int64 {
	if amountMinor <= 0 {
		return 0
	}
	discount := decimal.NewFromInt(amountMinor).Mul(p.DiscountPercent).Div(hundred).Floor().IntPart()
	if p.MaxDiscountMinor != nil && discount > *p.MaxDiscountMinor {
		discount = *p.MaxDiscountMinor
	}
	if discount > amountMinor {
		discount = amountMinor
	}
	if discount < 0 {
		return 0
	}
	return discount
}
