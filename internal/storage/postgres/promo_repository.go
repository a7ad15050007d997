package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

const promoColumns = `code, discount_percent, max_discount_minor, is_active, created_at, expires_at, usage_limit, usage_count`

type promoRepository struct {
	db *sql.DB
}

// NewPromoRepository создаёт PostgreSQL-реализацию PromoRepository.
func NewPromoRepository(store *Store) domain.PromoRepository {
	return &promoRepository{db: store.DB()}
}

func (r *promoRepository) Create(ctx context.Context, promo domain.PromoCode) error {
	if err := promo.Validate(); err != nil {
		return err
	}
	if promo.CreatedAt.IsZero() {
		promo.CreatedAt = time.Now().UTC()
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var (
		maxDiscount sql.NullInt64
		expiresAt   sql.NullTime
		usageLimit  sql.NullInt64
	)
	if promo.MaxDiscountMinor != nil {
		maxDiscount = sql.NullInt64{Int64: *promo.MaxDiscountMinor, Valid: true}
	}
	if promo.ExpiresAt != nil {
		expiresAt = sql.NullTime{Time: *promo.ExpiresAt, Valid: true}
	}
	if promo.UsageLimit != nil {
		usageLimit = sql.NullInt64{Int64: int64(*promo.UsageLimit), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO promo_codes (`+promoColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, promo.Code, promo.DiscountPercent, maxDiscount, promo.Active, promo.CreatedAt, expiresAt, usageLimit, promo.UsageCount)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPromoAlreadyExists
		}
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidPromo, err)
		}
		return fmt.Errorf("insert promo code: %w", err)
	}
	return nil
}

func (r *promoRepository) Get(ctx context.Context, code string) (domain.PromoCode, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	promo, err := scanPromo(r.db.QueryRowContext(ctx, `
		SELECT `+promoColumns+` FROM promo_codes WHERE code = $1
	`, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PromoCode{}, domain.ErrPromoNotFound
		}
		return domain.PromoCode{}, fmt.Errorf("select promo code: %w", err)
	}
	return promo, nil
}

// Redeem — условный инкремент: строка обновляется, только если код всё ещё доступен.
// Если строка не обновилась, причину отказа определяем по текущему состоянию кода.
func (r *promoRepository) Redeem(ctx context.Context, code string, now time.Time) (domain.PromoCode, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	promo, err := scanPromo(r.db.QueryRowContext(opCtx, `
		UPDATE promo_codes
		SET usage_count = usage_count + 1
		WHERE code = $1
		  AND is_active
		  AND (expires_at IS NULL OR $2 < expires_at)
		  AND (usage_limit IS NULL OR usage_count < usage_limit)
		RETURNING `+promoColumns, code, now))
	if err == nil {
		return promo, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return domain.PromoCode{}, fmt.Errorf("redeem promo code: %w", err)
	}

	current, err := r.Get(ctx, code)
	if err != nil {
		return domain.PromoCode{}, err
	}
	if reason := current.UnusableReason(now); reason != nil {
		return current, reason
	}
	// Код стал доступен между UPDATE и SELECT (например, Release); считаем попытку неудачной.
	return current, domain.ErrCodeExhausted
}

func (r *promoRepository) Release(ctx context.Context, code string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE promo_codes
		SET usage_count = GREATEST(usage_count - 1, 0)
		WHERE code = $1
	`, code)
	if err != nil {
		return fmt.Errorf("release promo code: %w", err)
	}
	return expectAffected(res, domain.ErrPromoNotFound)
}

func (r *promoRepository) SetActive(ctx context.Context, code string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE promo_codes SET is_active = $2 WHERE code = $1`, code, active)
	if err != nil {
		return fmt.Errorf("update promo code activity: %w", err)
	}
	return expectAffected(res, domain.ErrPromoNotFound)
}

func scanPromo(row *sql.Row) (domain.PromoCode, error) {
	var (
		promo       domain.PromoCode
		maxDiscount sql.NullInt64
		expiresAt   sql.NullTime
		usageLimit  sql.NullInt64
	)
	if err := row.Scan(
		&promo.Code, &promo.DiscountPercent, &maxDiscount, &promo.Active,
		&promo.CreatedAt, &expiresAt, &usageLimit, &promo.UsageCount,
	); err != nil {
		return domain.PromoCode{}, err
	}
	if maxDiscount.Valid {
		v := maxDiscount.Int64
		promo.MaxDiscountMinor = &v
	}
	if expiresAt.Valid {
		v := expiresAt.Time.UTC()
		promo.ExpiresAt = &v
	}
	if usageLimit.Valid {
		v := int(usageLimit.Int64)
		promo.UsageLimit = &v
	}
	return promo, nil
}

func expectAffected(res sql.Result, notFound error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

var _ domain.PromoRepository = (*promoRepository)(nil)
