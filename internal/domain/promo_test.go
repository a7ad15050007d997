package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestPromoCodeDiscount(t *testing.T) {
	tests := []struct {
		name   string
		promo  PromoCode
		amount int64
		want   int64
	}{
		{name: "ten percent", promo: PromoCode{DiscountPercent: decimal.NewFromInt(10)}, amount: 1000, want: 100},
		{name: "rounds down", promo: PromoCode{DiscountPercent: decimal.RequireFromString("12.5")}, amount: 999, want: 124},
		{name: "capped", promo: PromoCode{DiscountPercent: decimal.NewFromInt(50), MaxDiscountMinor: int64Ptr(300)}, amount: 1000, want: 300},
		{name: "full discount", promo: PromoCode{DiscountPercent: decimal.NewFromInt(100)}, amount: 750, want: 750},
		{name: "zero amount", promo: PromoCode{DiscountPercent: decimal.NewFromInt(10)}, amount: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.promo.Discount(tt.amount); got != tt.want {
				t.Fatalf("Discount(%d) = %d, want %d", tt.amount, got, tt.want)
			}
		})
	}
}

func TestPromoCodeUnusableReason(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	tests := []struct {
		name  string
		promo PromoCode
		want  error
	}{
		{name: "usable", promo: PromoCode{Active: true, ExpiresAt: &future, UsageLimit: intPtr(2), UsageCount: 1}},
		{name: "inactive wins", promo: PromoCode{Active: false, ExpiresAt: &past}, want: ErrCodeInactive},
		{name: "expired", promo: PromoCode{Active: true, ExpiresAt: &past}, want: ErrCodeExpired},
		{name: "expires exactly now", promo: PromoCode{Active: true, ExpiresAt: &now}, want: ErrCodeExpired},
		{name: "exhausted", promo: PromoCode{Active: true, UsageLimit: intPtr(1), UsageCount: 1}, want: ErrCodeExhausted},
		{name: "zero limit", promo: PromoCode{Active: true, UsageLimit: intPtr(0)}, want: ErrCodeExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.promo.UnusableReason(now)
			if !errors.Is(err, tt.want) || (tt.want == nil && err != nil) {
				t.Fatalf("UnusableReason() = %v, want %v", err, tt.want)
			}
			if tt.promo.Usable(now) != (tt.want == nil) {
				t.Fatalf("Usable() disagrees with UnusableReason()")
			}
		})
	}
}

func TestPromoCodeValidate(t *testing.T) {
	valid := PromoCode{Code: "TEST10", DiscountPercent: decimal.NewFromInt(10), Active: true}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string]func(p *PromoCode){
		"empty code":       func(p *PromoCode) { p.Code = "" },
		"padded code":      func(p *PromoCode) { p.Code = " TEST10" },
		"too long":         func(p *PromoCode) { p.Code = "ABCDEFGHIJKLMNOPQRSTU" },
		"zero percent":     func(p *PromoCode) { p.DiscountPercent = decimal.Zero },
		"over hundred":     func(p *PromoCode) { p.DiscountPercent = decimal.NewFromInt(101) },
		"negative cap":     func(p *PromoCode) { p.MaxDiscountMinor = int64Ptr(-1) },
		"negative limit":   func(p *PromoCode) { p.UsageLimit = intPtr(-1) },
		"negative counter": func(p *PromoCode) { p.UsageCount = -1 },
	}
	for name, mut := range cases {
		t.Run(name, func(t *testing.T) {
			p := valid
			mut(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalidPromo) {
				t.Fatalf("expected ErrInvalidPromo, got %v", err)
			}
		})
	}
}
