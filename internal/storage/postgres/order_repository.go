package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

const orderColumns = `
	number, customer_id, status, comment,
	recipient_name, recipient_address, recipient_phone,
	payment_type, payment_date, delivery_type, source, external_user_id,
	promo_code, subtotal_minor, discount_minor, total_minor,
	stock_state, version, created_at, updated_at`

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

func (r *orderRepository) Create(ctx context.Context, order domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO orders (`+orderColumns+`)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
		`,
			order.Number, order.CustomerID, string(order.Status), order.Comment,
			order.Recipient.Name, order.Recipient.Address, order.Recipient.Phone,
			order.PaymentType, nullTime(order.PaymentDate), order.DeliveryType, string(order.Source), order.ExternalUserID,
			order.PromoCode, order.SubtotalMinor, order.DiscountMinor, order.TotalMinor,
			string(order.StockState), order.Version, order.CreatedAt, order.UpdatedAt,
		)
		if isUniqueViolation(err) {
			return domain.ErrOrderAlreadyExists
		}
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for i, d := range order.Details {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO order_details (order_number, line_no, product_id, name, image_path, price_minor, size)
				VALUES ($1,$2,$3,$4,$5,$6,$7)
			`, order.Number, i, d.ProductID, d.Name, d.ImagePath, d.PriceMinor, d.Size); err != nil {
				return fmt.Errorf("insert order detail: %w", err)
			}
		}
		for _, c := range order.Comments {
			if err := insertComment(ctx, tx, order.Number, c); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) Get(ctx context.Context, number string) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	order, err := scanOrder(r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE number = $1`, number))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}

	orders := []domain.Order{order}
	if err := r.loadChildren(ctx, orders); err != nil {
		return domain.Order{}, err
	}
	return orders[0], nil
}

// Save обновляет только изменяемые поля. Строки заказа неизменны после создания.
func (r *orderRepository) Save(ctx context.Context, order domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1,
		    payment_date = $2,
		    stock_state = $3,
		    version = version + 1,
		    updated_at = $4
		WHERE number = $5
		  AND version = $6
	`,
		string(order.Status),
		nullTime(order.PaymentDate),
		string(order.StockState),
		order.UpdatedAt,
		order.Number,
		order.Version,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		exists, err := r.orderExists(ctx, order.Number)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrOrderNotFound
		}
		return domain.ErrOrderVersionConflict
	}

	return nil
}

func (r *orderRepository) AppendComment(ctx context.Context, number string, comment domain.OrderComment) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	err := insertComment(ctx, r.db, number, comment)
	if err != nil && hasPgCode(err, "23503") {
		return domain.ErrOrderNotFound
	}
	return err
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertComment(ctx context.Context, db execer, number string, c domain.OrderComment) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if _, err := db.ExecContext(ctx, `
		INSERT INTO order_comments (id, order_number, author, text, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`, c.ID, number, c.Author, c.Text, c.CreatedAt); err != nil {
		return fmt.Errorf("insert order comment: %w", err)
	}
	return nil
}

func (r *orderRepository) List(ctx context.Context, query domain.OrderQuery) (domain.OrderPage, error) {
	query = query.Normalize()

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	where, args := buildOrderFilter(query)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`+where, args...).Scan(&total); err != nil {
		return domain.OrderPage{}, fmt.Errorf("count orders: %w", err)
	}

	args = append(args, query.PageSize, query.Offset())
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT %s FROM orders%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, orderColumns, where, orderBy(query.Sort), len(args)-1, len(args)), args...)
	if err != nil {
		return domain.OrderPage{}, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return domain.OrderPage{}, err
	}
	if err := r.loadChildren(ctx, orders); err != nil {
		return domain.OrderPage{}, err
	}

	return domain.OrderPage{Orders: orders, Total: total}, nil
}

func buildOrderFilter(query domain.OrderQuery) (string, []any) {
	var (
		conds []string
		args  []any
	)
	switch query.Filter {
	case domain.FilterAll, "":
	case domain.FilterActive:
		args = append(args, []string{
			string(domain.OrderStatusCompleted),
			string(domain.OrderStatusCanceled),
			string(domain.OrderStatusReturned),
		})
		conds = append(conds, fmt.Sprintf("status <> ALL($%d)", len(args)))
	default:
		args = append(args, string(query.Filter))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if query.CustomerID != "" {
		args = append(args, query.CustomerID)
		conds = append(conds, fmt.Sprintf("customer_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func orderBy(sort domain.SortOrder) string {
	switch sort {
	case domain.SortOldest:
		return "created_at ASC, number ASC"
	case domain.SortTotalDesc:
		return "total_minor DESC, created_at DESC, number DESC"
	case domain.SortTotalAsc:
		return "total_minor ASC, created_at DESC, number DESC"
	default:
		return "created_at DESC, number DESC"
	}
}

func (r *orderRepository) Stats(ctx context.Context) (domain.OrderStats, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return domain.OrderStats{}, fmt.Errorf("order stats: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.OrderStatus]int)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return domain.OrderStats{}, fmt.Errorf("scan order stats: %w", err)
		}
		counts[domain.OrderStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return domain.OrderStats{}, fmt.Errorf("iterate order stats: %w", err)
	}
	return domain.NewOrderStats(counts), nil
}

func (r *orderRepository) ListPendingStock(ctx context.Context, olderThan time.Time, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 100
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE stock_state = $1
		  AND created_at < $2
		ORDER BY created_at ASC, number ASC
		LIMIT $3
	`, string(domain.StockStatePending), olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending stock orders: %w", err)
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadChildren(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Delete(ctx context.Context, number string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Строки и комментарии удаляются каскадом.
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE number = $1`, number)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return expectAffected(res, domain.ErrOrderNotFound)
}

// loadChildren подгружает строки и комментарии пачкой для всех заказов страницы.
func (r *orderRepository) loadChildren(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	numbers := make([]string, len(orders))
	index := make(map[string]int, len(orders))
	for i, o := range orders {
		numbers[i] = o.Number
		index[o.Number] = i
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT order_number, product_id, name, image_path, price_minor, size
		FROM order_details
		WHERE order_number = ANY($1)
		ORDER BY order_number, line_no
	`, numbers)
	if err != nil {
		return fmt.Errorf("load order details: %w", err)
	}
	for rows.Next() {
		var (
			number string
			d      domain.OrderDetail
		)
		if err := rows.Scan(&number, &d.ProductID, &d.Name, &d.ImagePath, &d.PriceMinor, &d.Size); err != nil {
			rows.Close()
			return fmt.Errorf("scan order detail: %w", err)
		}
		i := index[number]
		orders[i].Details = append(orders[i].Details, d)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("iterate order details: %w", err)
	}
	rows.Close()

	rows, err = r.db.QueryContext(ctx, `
		SELECT order_number, id, author, text, created_at
		FROM order_comments
		WHERE order_number = ANY($1)
		ORDER BY order_number, created_at, id
	`, numbers)
	if err != nil {
		return fmt.Errorf("load order comments: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			number string
			c      domain.OrderComment
		)
		if err := rows.Scan(&number, &c.ID, &c.Author, &c.Text, &c.CreatedAt); err != nil {
			return fmt.Errorf("scan order comment: %w", err)
		}
		i := index[number]
		orders[i].Comments = append(orders[i].Comments, c)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate order comments: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		o           domain.Order
		status      string
		source      string
		stockState  string
		paymentDate sql.NullTime
	)
	if err := row.Scan(
		&o.Number, &o.CustomerID, &status, &o.Comment,
		&o.Recipient.Name, &o.Recipient.Address, &o.Recipient.Phone,
		&o.PaymentType, &paymentDate, &o.DeliveryType, &source, &o.ExternalUserID,
		&o.PromoCode, &o.SubtotalMinor, &o.DiscountMinor, &o.TotalMinor,
		&stockState, &o.Version, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return domain.Order{}, err
	}
	o.Status = domain.OrderStatus(status)
	o.Source = domain.OrderSource(source)
	o.StockState = domain.StockState(stockState)
	if paymentDate.Valid {
		pd := paymentDate.Time.UTC()
		o.PaymentDate = &pd
	}
	return o, nil
}

func scanOrders(rows *sql.Rows) ([]domain.Order, error) {
	orders := make([]domain.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) orderExists(ctx context.Context, number string) (bool, error) {
	var found string
	err := r.db.QueryRowContext(ctx, `SELECT number FROM orders WHERE number = $1`, number).Scan(&found)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return false, fmt.Errorf("check order existence: %w", err)
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

var _ domain.OrderRepository = (*orderRepository)(nil)
