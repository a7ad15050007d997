package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type stockLedger struct {
	db *sql.DB
}

// NewStockLedger создаёт PostgreSQL-реализацию StockLedger.
// Списание — один условный UPDATE по строке (product_id, size), без блокировок таблицы.
func NewStockLedger(store *Store) domain.StockLedger {
	return &stockLedger{db: store.DB()}
}

func (l *stockLedger) GetQuantity(ctx context.Context, productID int64, size int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return l.quantity(ctx, l.db, productID, size)
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (l *stockLedger) quantity(ctx context.Context, q queryRower, productID int64, size int) (int, error) {
	var qty int
	err := q.QueryRowContext(ctx, `
		SELECT quantity FROM stock_records WHERE product_id = $1 AND size = $2
	`, productID, size).Scan(&qty)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("select stock quantity: %w", err)
	}
	return qty, nil
}

func (l *stockLedger) Quantities(ctx context.Context, productID int64) (map[int]int, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := l.db.QueryContext(ctx, `
		SELECT size, quantity FROM stock_records WHERE product_id = $1
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("select stock quantities: %w", err)
	}
	defer rows.Close()

	out := make(map[int]int)
	for rows.Next() {
		var size, qty int
		if err := rows.Scan(&size, &qty); err != nil {
			return nil, fmt.Errorf("scan stock quantity: %w", err)
		}
		out[size] = qty
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock quantities: %w", err)
	}
	return out, nil
}

func (l *stockLedger) Add(ctx context.Context, productID int64, size, amount int, purchasePriceMinor int64) error {
	if amount < 0 || purchasePriceMinor < 0 {
		return domain.ErrInvalidAmount
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := l.db.ExecContext(ctx, `
		INSERT INTO stock_records (product_id, size, quantity, purchase_price_minor, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (product_id, size) DO UPDATE
		SET quantity = stock_records.quantity + EXCLUDED.quantity,
		    purchase_price_minor = EXCLUDED.purchase_price_minor,
		    updated_at = NOW()
	`, productID, size, amount, purchasePriceMinor); err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidSize, err)
		}
		return fmt.Errorf("add stock: %w", err)
	}
	return nil
}

func (l *stockLedger) Reduce(ctx context.Context, productID int64, size, amount int) (int, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	left, err := l.conditionalDecrement(ctx, l.db, productID, size, amount)
	if err != nil {
		return 0, err
	}
	return left, nil
}

// conditionalDecrement списывает amount, только если остатка хватает.
// При нехватке перечитывает остаток для InsufficientStockError.
func (l *stockLedger) conditionalDecrement(ctx context.Context, q queryRower, productID int64, size, amount int) (int, error) {
	var left int
	err := q.QueryRowContext(ctx, `
		UPDATE stock_records
		SET quantity = quantity - $3,
		    updated_at = NOW()
		WHERE product_id = $1
		  AND size = $2
		  AND quantity >= $3
		RETURNING quantity
	`, productID, size, amount).Scan(&left)
	if err == nil {
		return left, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("reduce stock: %w", err)
	}

	available, qerr := l.quantity(ctx, q, productID, size)
	if qerr != nil {
		return 0, qerr
	}
	return 0, &domain.InsufficientStockError{
		ProductID: productID,
		Size:      size,
		Requested: amount,
		Available: available,
	}
}

func (l *stockLedger) Set(ctx context.Context, productID int64, size, quantity int, purchasePriceMinor int64) error {
	if quantity < 0 || purchasePriceMinor < 0 {
		return domain.ErrInvalidAmount
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := l.db.ExecContext(ctx, `
		INSERT INTO stock_records (product_id, size, quantity, purchase_price_minor, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (product_id, size) DO UPDATE
		SET quantity = EXCLUDED.quantity,
		    purchase_price_minor = EXCLUDED.purchase_price_minor,
		    updated_at = NOW()
	`, productID, size, quantity, purchasePriceMinor); err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	return nil
}

// ReduceForOrder сначала вставляет строку журнала (она же блокирует повтор той же единицы),
// затем условно списывает одну единицу. Обе операции в одной транзакции.
func (l *stockLedger) ReduceForOrder(ctx context.Context, orderNumber string, unitIndex int, productID int64, size int) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return inTx(ctx, l.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO stock_movements (order_number, unit_index, product_id, size, created_at)
			VALUES ($1, $2, $3, $4, NOW())
			ON CONFLICT (order_number, unit_index) DO NOTHING
		`, orderNumber, unitIndex, productID, size)
		if err != nil {
			return fmt.Errorf("insert stock movement: %w", err)
		}
		inserted, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("stock movement rows affected: %w", err)
		}

		if inserted == 0 {
			var released sql.NullTime
			if err := tx.QueryRowContext(ctx, `
				SELECT released_at FROM stock_movements WHERE order_number = $1 AND unit_index = $2
			`, orderNumber, unitIndex).Scan(&released); err != nil {
				return fmt.Errorf("select stock movement: %w", err)
			}
			if released.Valid {
				return domain.ErrStockReleased
			}
			// Единица уже списана ранее.
			return nil
		}

		_, err = l.conditionalDecrement(ctx, tx, productID, size, 1)
		return err
	})
}

// ReleaseOrder одним выражением помечает единицы возвращёнными и добавляет их к остаткам.
func (l *stockLedger) ReleaseOrder(ctx context.Context, orderNumber string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var restored int
	err := l.db.QueryRowContext(ctx, `
		WITH released AS (
			UPDATE stock_movements
			SET released_at = NOW()
			WHERE order_number = $1
			  AND released_at IS NULL
			RETURNING product_id, size
		), grouped AS (
			SELECT product_id, size, COUNT(*)::int AS units
			FROM released
			GROUP BY product_id, size
		), restocked AS (
			UPDATE stock_records s
			SET quantity = s.quantity + g.units,
			    updated_at = NOW()
			FROM grouped g
			WHERE s.product_id = g.product_id
			  AND s.size = g.size
			RETURNING g.units
		)
		SELECT COALESCE(SUM(units), 0)::int FROM restocked
	`, orderNumber).Scan(&restored)
	if err != nil {
		return 0, fmt.Errorf("release order stock: %w", err)
	}
	return restored, nil
}

func (l *stockLedger) CommittedUnits(ctx context.Context, orderNumber string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var n int
	if err := l.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM stock_movements WHERE order_number = $1 AND released_at IS NULL
	`, orderNumber).Scan(&n); err != nil {
		return 0, fmt.Errorf("count committed units: %w", err)
	}
	return n, nil
}

var _ domain.StockLedger = (*stockLedger)(nil)
