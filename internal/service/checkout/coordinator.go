// Package checkout оформляет корзину в заказ: проверка наличия, промокод,
// сохранение заказа, поштучное списание склада и откат при неудаче.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	nanoid "github.com/jaevor/go-nanoid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
	"github.com/vladislavdragonenkov/storefront/internal/service/events"
	"github.com/vladislavdragonenkov/storefront/internal/service/promo"
	"github.com/vladislavdragonenkov/storefront/internal/tracing"
)

const (
	defaultTimeout             = 10 * time.Second
	defaultCompensationTimeout = 5 * time.Second
	defaultIdempotencyTTL      = 24 * time.Hour

	maxNumberAttempts = 5
	maxSaveAttempts   = 3
	saveRetryDelay    = 10 * time.Millisecond

	numberAlphabet = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"
	numberLength   = 10

	systemAuthor = "system"
)

// PromoPolicy определяет, что делать с заказом, если промокод не удалось погасить.
type PromoPolicy string

const (
	// PromoPolicyAbort прерывает оформление с ошибкой кода.
	PromoPolicyAbort PromoPolicy = "abort"
	// PromoPolicyIgnore оформляет заказ без скидки.
	PromoPolicyIgnore PromoPolicy = "ignore"
)

// ParsePromoPolicy разбирает политику; пустая строка означает abort.
func ParsePromoPolicy(raw string) (PromoPolicy, error) {
	switch p := PromoPolicy(strings.ToLower(strings.TrimSpace(raw))); p {
	case "":
		return PromoPolicyAbort, nil
	case PromoPolicyAbort, PromoPolicyIgnore:
		return p, nil
	default:
		return "", fmt.Errorf("unknown promo policy %q", raw)
	}
}

// Config задаёт ограничения оформления.
type Config struct {
	// Timeout накладывается поверх контекста вызывающего.
	Timeout time.Duration
	// CompensationTimeout ограничивает откат, который идёт в отвязанном контексте.
	CompensationTimeout time.Duration
	PromoPolicy         PromoPolicy
	IdempotencyTTL      time.Duration
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.CompensationTimeout <= 0 {
		c.CompensationTimeout = defaultCompensationTimeout
	}
	if c.PromoPolicy == "" {
		c.PromoPolicy = PromoPolicyAbort
	}
	if c.IdempotencyTTL <= 0 {
		c.IdempotencyTTL = defaultIdempotencyTTL
	}
	return c
}

// Dependencies — порты, с которыми работает координатор.
// Idempotency и Baskets необязательны.
type Dependencies struct {
	Ledger      domain.StockLedger
	Catalog     domain.Catalog
	Orders      domain.OrderRepository
	Promo       *promo.Registry
	Events      *events.Recorder
	Idempotency domain.IdempotencyRepository
	Baskets     domain.BasketStore
	Metrics     *metrics.CheckoutMetrics
	Logger      *log.Entry
}

// Request — отправка корзины покупателем.
type Request struct {
	IdempotencyKey string              `json:"-"`
	SessionID      string              `json:"session_id,omitempty"`
	CustomerID     string              `json:"customer_id"`
	Recipient      domain.Recipient    `json:"recipient"`
	Lines          []domain.BasketLine `json:"lines"`
	PromoCode      string              `json:"promo_code"`
	Comment        string              `json:"comment"`
	PaymentType    string              `json:"payment_type"`
	DeliveryType   string              `json:"delivery_type"`
	Source         domain.OrderSource  `json:"source"`
	ExternalUserID string              `json:"external_user_id"`
}

// Result — итог успешного оформления.
type Result struct {
	OrderNumber   string             `json:"order_number"`
	Status        domain.OrderStatus `json:"status"`
	Units         int                `json:"units"`
	PromoCode     string             `json:"promo_code,omitempty"`
	SubtotalMinor int64              `json:"subtotal_minor"`
	DiscountMinor int64              `json:"discount_minor"`
	TotalMinor    int64              `json:"total_minor"`
}

// Coordinator проводит оформление как последовательность шагов с компенсацией.
type Coordinator struct {
	ledger    domain.StockLedger
	catalog   domain.Catalog
	orders    domain.OrderRepository
	promo     *promo.Registry
	events    *events.Recorder
	idem      domain.IdempotencyRepository
	baskets   domain.BasketStore
	metrics   *metrics.CheckoutMetrics
	logger    *log.Entry
	tracer    trace.Tracer
	cfg       Config
	now       func() time.Time
	newNumber func() string
}

// NewCoordinator проверяет зависимости и создаёт координатор.
func NewCoordinator(deps Dependencies, cfg Config) (*Coordinator, error) {
	switch {
	case deps.Ledger == nil:
		return nil, errors.New("checkout: stock ledger is required")
	case deps.Catalog == nil:
		return nil, errors.New("checkout: catalog is required")
	case deps.Orders == nil:
		return nil, errors.New("checkout: order repository is required")
	case deps.Promo == nil:
		return nil, errors.New("checkout: promo registry is required")
	}
	cfg = cfg.withDefaults()
	if _, err := ParsePromoPolicy(string(cfg.PromoPolicy)); err != nil {
		return nil, err
	}

	gen, err := nanoid.CustomASCII(numberAlphabet, numberLength)
	if err != nil {
		return nil, fmt.Errorf("checkout: order number generator: %w", err)
	}

	logger := deps.Logger
	if logger == nil {
		logger = log.WithField("component", "checkout")
	}

	return &Coordinator{
		ledger:    deps.Ledger,
		catalog:   deps.Catalog,
		orders:    deps.Orders,
		promo:     deps.Promo,
		events:    deps.Events,
		idem:      deps.Idempotency,
		baskets:   deps.Baskets,
		metrics:   deps.Metrics,
		logger:    logger,
		tracer:    tracing.Tracer(),
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
		newNumber: gen,
	}, nil
}

// Checkout оформляет заказ. При непустом IdempotencyKey повтор с тем же телом
// возвращает первый результат.
func (c *Coordinator) Checkout(ctx context.Context, req Request) (Result, error) {
	if c.idem != nil && strings.TrimSpace(req.IdempotencyKey) != "" {
		return c.withIdempotency(ctx, req)
	}
	return c.checkout(ctx, req)
}

// CheckoutBasket оформляет сохранённую корзину сессии и после успеха вычитает
// из неё оформленные позиции. Добавленное в корзину во время оформления остаётся.
// Позиции из req игнорируются.
func (c *Coordinator) CheckoutBasket(ctx context.Context, sessionID string, req Request) (Result, error) {
	if c.baskets == nil {
		return Result{}, errors.New("checkout: basket store is not configured")
	}
	lines, err := c.baskets.Get(ctx, sessionID)
	if err != nil {
		return Result{}, fmt.Errorf("load basket: %w", err)
	}
	req.Lines = lines
	req.SessionID = sessionID

	res, err := c.Checkout(ctx, req)
	if err != nil {
		return Result{}, err
	}
	if err := c.baskets.Subtract(context.WithoutCancel(ctx), sessionID, lines); err != nil {
		c.logger.WithError(err).WithField("session_id", sessionID).Warn("failed to remove checked out lines from basket")
	}
	return res, nil
}

func (c *Coordinator) checkout(ctx context.Context, req Request) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	ctx, span := c.tracer.Start(ctx, "checkout",
		trace.WithAttributes(attribute.Int("checkout.lines", len(req.Lines))))
	defer span.End()

	started := time.Now()
	c.metrics.CheckoutStarted()
	defer func() { c.metrics.CheckoutFinished(time.Since(started)) }()

	res, err := c.run(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.metrics.CheckoutFailed(failureReason(err))
		c.logger.WithError(err).WithField("customer_id", req.CustomerID).Warn("checkout failed")
		return Result{}, err
	}

	span.SetAttributes(attribute.String("order.number", res.OrderNumber))
	span.SetStatus(codes.Ok, "")
	c.metrics.CheckoutCompleted()
	return res, nil
}

// unit — одна физическая единица и строка корзины, из которой она пришла.
type unit struct {
	line   int
	detail domain.OrderDetail
}

type stockKey struct {
	productID int64
	size      int
}

// plan — результат проверки корзины. requested хранит накопленное количество
// по паре (товар, размер) на момент каждой строки.
type plan struct {
	units     []unit
	requested []int
}

func (c *Coordinator) run(ctx context.Context, req Request) (Result, error) {
	if len(req.Lines) == 0 {
		return Result{}, domain.ErrBasketEmpty
	}
	if strings.TrimSpace(req.Recipient.Name) == "" {
		return Result{}, domain.ErrRecipientRequired
	}

	var p plan
	if err := c.step(ctx, domain.CheckoutStepPreflight, func(ctx context.Context) error {
		var err error
		p, err = c.preflight(ctx, req.Lines)
		return err
	}); err != nil {
		return Result{}, err
	}

	details := make([]domain.OrderDetail, 0, len(p.units))
	for _, u := range p.units {
		details = append(details, u.detail)
	}
	subtotal := domain.SubtotalOf(details)

	var (
		promoCode string
		discount  int64
	)
	if code := strings.TrimSpace(req.PromoCode); code != "" {
		if err := c.step(ctx, domain.CheckoutStepPromo, func(ctx context.Context) error {
			redeemed, err := c.promo.Redeem(ctx, code)
			if err == nil {
				promoCode = redeemed.Code
				discount = redeemed.Discount(subtotal)
				return nil
			}
			if domain.IsPromoRejection(err) && c.cfg.PromoPolicy == PromoPolicyIgnore {
				c.logger.WithError(err).WithField("code", code).Info("promo code rejected, checkout continues without discount")
				return nil
			}
			return err
		}); err != nil {
			return Result{}, err
		}
	}

	now := c.now()
	order := domain.Order{
		CustomerID:     req.CustomerID,
		Status:         domain.OrderStatusCreated,
		Comment:        req.Comment,
		Recipient:      req.Recipient,
		Details:        details,
		PaymentType:    req.PaymentType,
		DeliveryType:   req.DeliveryType,
		Source:         req.Source,
		ExternalUserID: req.ExternalUserID,
		PromoCode:      promoCode,
		SubtotalMinor:  subtotal,
		DiscountMinor:  discount,
		TotalMinor:     subtotal - discount,
		StockState:     domain.StockStatePending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if order.Source == "" {
		order.Source = domain.OrderSourceSite
	}

	if err := c.step(ctx, domain.CheckoutStepPersist, func(ctx context.Context) error {
		return c.persist(ctx, &order)
	}); err != nil {
		c.releasePromo(ctx, promoCode, "")
		return Result{}, err
	}

	logger := c.logger.WithField("order_number", order.Number)

	if err := c.step(ctx, domain.CheckoutStepReduce, func(ctx context.Context) error {
		for idx, u := range p.units {
			if err := c.ledger.ReduceForOrder(ctx, order.Number, idx, u.detail.ProductID, u.detail.Size); err != nil {
				return c.abort(ctx, order.Number, p, idx, err)
			}
		}
		return nil
	}); err != nil {
		return Result{}, err
	}

	var committed domain.Order
	if err := c.step(ctx, domain.CheckoutStepCommit, func(ctx context.Context) error {
		rolledBack := false
		var err error
		committed, err = c.mutate(ctx, order.Number, func(o *domain.Order) bool {
			// Сверка могла откатить заказ, пока списывались единицы.
			rolledBack = o.StockState == domain.StockStateReleased
			if rolledBack || o.StockState == domain.StockStateCommitted {
				return false
			}
			o.StockState = domain.StockStateCommitted
			o.UpdatedAt = c.now()
			return true
		})
		if err == nil && rolledBack {
			err = domain.ErrCheckoutRolledBack
		}
		return err
	}); err != nil {
		if errors.Is(err, domain.ErrCheckoutRolledBack) {
			logger.Warn("order rolled back before stock state commit")
			return Result{}, err
		}
		logger.WithError(err).Error("failed to commit order stock state")
		c.compensateDetached(ctx, order.Number, "stock state commit failed")
		return Result{}, fmt.Errorf("commit order: %w", err)
	}

	c.events.Emit(ctx, committed, domain.TimelineOrderCreated, "", map[string]any{
		"units":          len(p.units),
		"subtotal_minor": committed.SubtotalMinor,
		"discount_minor": committed.DiscountMinor,
		"total_minor":    committed.TotalMinor,
		"promo_code":     committed.PromoCode,
	})
	logger.WithFields(log.Fields{
		"units":       len(p.units),
		"total_minor": committed.TotalMinor,
	}).Info("order checked out")

	return Result{
		OrderNumber:   committed.Number,
		Status:        committed.Status,
		Units:         len(p.units),
		PromoCode:     committed.PromoCode,
		SubtotalMinor: committed.SubtotalMinor,
		DiscountMinor: committed.DiscountMinor,
		TotalMinor:    committed.TotalMinor,
	}, nil
}

// preflight проверяет все строки без изменений и раскладывает корзину на единицы.
// Первая же проблемная строка прерывает оформление.
func (c *Coordinator) preflight(ctx context.Context, lines []domain.BasketLine) (plan, error) {
	products := make(map[int64]domain.Product)
	available := make(map[stockKey]int)
	need := make(map[stockKey]int)
	p := plan{requested: make([]int, len(lines))}

	for i, line := range lines {
		if line.Quantity <= 0 {
			return plan{}, &domain.LineError{Line: i, Err: domain.ErrInvalidAmount}
		}

		product, ok := products[line.ProductID]
		if !ok {
			var err error
			product, err = c.catalog.Product(ctx, line.ProductID)
			if err != nil {
				return plan{}, &domain.LineError{Line: i, Err: err}
			}
			products[line.ProductID] = product
		}
		if !product.Sizes.Has(line.Size) {
			return plan{}, &domain.LineError{Line: i, Err: fmt.Errorf("%w: size %d for product %d", domain.ErrInvalidSize, line.Size, line.ProductID)}
		}

		key := stockKey{productID: line.ProductID, size: line.Size}
		qty, ok := available[key]
		if !ok {
			var err error
			qty, err = c.ledger.GetQuantity(ctx, line.ProductID, line.Size)
			if err != nil {
				return plan{}, fmt.Errorf("check stock: %w", err)
			}
			available[key] = qty
		}
		need[key] += line.Quantity
		p.requested[i] = need[key]
		if qty < need[key] {
			return plan{}, &domain.LineError{Line: i, Err: &domain.InsufficientStockError{
				ProductID: line.ProductID,
				Size:      line.Size,
				Requested: need[key],
				Available: qty,
			}}
		}

		for n := 0; n < line.Quantity; n++ {
			p.units = append(p.units, unit{line: i, detail: domain.OrderDetail{
				ProductID:  product.ID,
				Name:       product.Name,
				ImagePath:  product.ImagePath,
				PriceMinor: product.PriceMinor,
				Size:       line.Size,
			}})
		}
	}
	return p, nil
}

// persist сохраняет заказ под новым номером; коллизия номера даёт новую попытку.
func (c *Coordinator) persist(ctx context.Context, order *domain.Order) error {
	for attempt := 1; ; attempt++ {
		order.Number = c.newNumber()
		err := c.orders.Create(ctx, *order)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrOrderAlreadyExists) || attempt >= maxNumberAttempts {
			return fmt.Errorf("create order: %w", err)
		}
		c.logger.WithField("attempt", attempt).Warn("order number collision, regenerating")
	}
}

// abort откатывает частично списанный заказ и переводит ошибку списания
// в ошибку строки корзины.
func (c *Coordinator) abort(ctx context.Context, number string, p plan, idx int, cause error) error {
	reason := "stock reduction failed"
	var insufficient *domain.InsufficientStockError
	if errors.As(cause, &insufficient) {
		reason = "insufficient stock"
	}

	c.compensateDetached(ctx, number, reason)

	if insufficient == nil {
		return fmt.Errorf("reduce stock: %w", cause)
	}

	line := p.units[idx].line
	return &domain.LineError{Line: line, Err: &domain.InsufficientStockError{
		ProductID: insufficient.ProductID,
		Size:      insufficient.Size,
		Requested: p.requested[line],
		Available: insufficient.Available,
	}}
}

// compensateDetached запускает откат в контексте, который не отменяется вместе с запросом.
// Если откат не удался, заказ остаётся pending и его подберёт сверка.
func (c *Coordinator) compensateDetached(ctx context.Context, number, reason string) {
	compCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.cfg.CompensationTimeout)
	defer cancel()

	started := time.Now()
	err := c.Compensate(compCtx, number, reason)
	c.metrics.StepDuration(string(domain.CheckoutStepRollback), time.Since(started))
	if err != nil {
		c.logger.WithError(err).WithField("order_number", number).Error("checkout compensation failed, order left for reconciliation")
	}
}

// Compensate возвращает на склад списанные единицы заказа, отдаёт использование
// промокода и отменяет заказ. Повторный вызов для уже откатанного заказа ничего не меняет.
// Заказ, ушедший из статуса created (например, уже оплаченный), не откатывается:
// возвращается ErrRollbackNotAllowed.
func (c *Coordinator) Compensate(ctx context.Context, number, reason string) error {
	current, err := c.orders.Get(ctx, number)
	if err != nil {
		c.metrics.Rollback("failed")
		return fmt.Errorf("load order: %w", err)
	}
	if current.StockState == domain.StockStateReleased {
		return nil
	}
	if current.Status != domain.OrderStatusCreated {
		c.metrics.Rollback("skipped")
		c.logger.WithFields(log.Fields{
			"order_number": number,
			"status":       current.Status,
			"stock_state":  current.StockState,
			"reason":       reason,
		}).Error("rollback skipped: order already left created status")
		return fmt.Errorf("%w: order %s is %s", domain.ErrRollbackNotAllowed, number, current.Status)
	}

	restored, err := c.ledger.ReleaseOrder(ctx, number)
	if err != nil {
		c.metrics.Rollback("failed")
		return fmt.Errorf("release stock: %w", err)
	}

	released := false
	var previous domain.OrderStatus
	order, err := c.mutate(ctx, number, func(o *domain.Order) bool {
		if o.StockState == domain.StockStateReleased {
			return false
		}
		previous = o.Status
		if o.Status != domain.OrderStatusCreated {
			return false
		}
		if err := o.ApplyStatus(domain.OrderStatusCanceled, c.now()); err != nil {
			return false
		}
		o.StockState = domain.StockStateReleased
		released = true
		return true
	})
	if err != nil {
		c.metrics.Rollback("failed")
		return fmt.Errorf("cancel order: %w", err)
	}
	if !released {
		if previous != "" && previous != domain.OrderStatusCreated {
			// Статус сменился между проверкой и отменой: единицы уже вернулись на склад.
			c.metrics.Rollback("failed")
			c.logger.WithFields(log.Fields{
				"order_number":   number,
				"status":         previous,
				"restored_units": restored,
			}).Error("order status changed during rollback, stock needs manual review")
			return fmt.Errorf("%w: order %s is %s", domain.ErrRollbackNotAllowed, number, previous)
		}
		return nil
	}

	c.releasePromo(ctx, order.PromoCode, number)

	if err := c.orders.AppendComment(ctx, number, domain.OrderComment{
		ID:        uuid.NewString(),
		Author:    systemAuthor,
		Text:      fmt.Sprintf("checkout rolled back: %s", reason),
		CreatedAt: c.now(),
	}); err != nil {
		c.logger.WithError(err).WithField("order_number", number).Warn("failed to append rollback comment")
	}

	c.events.Emit(ctx, order, domain.TimelineCheckoutRolledBack, reason, map[string]any{
		"restored_units": restored,
	})
	c.metrics.Rollback("completed")
	c.logger.WithFields(log.Fields{
		"order_number":   number,
		"restored_units": restored,
		"reason":         reason,
	}).Warn("checkout rolled back")
	return nil
}

func (c *Coordinator) releasePromo(ctx context.Context, code, number string) {
	if code == "" {
		return
	}
	relCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.cfg.CompensationTimeout)
	defer cancel()
	if err := c.promo.Release(relCtx, code); err != nil {
		c.logger.WithError(err).WithFields(log.Fields{
			"code":         code,
			"order_number": number,
		}).Error("failed to release promo code use")
	}
}

// mutate перечитывает заказ и применяет fn, повторяя при конфликте версий.
// Если fn вернула false, заказ не сохраняется.
func (c *Coordinator) mutate(ctx context.Context, number string, fn func(*domain.Order) bool) (domain.Order, error) {
	delay := saveRetryDelay
	for attempt := 1; ; attempt++ {
		order, err := c.orders.Get(ctx, number)
		if err != nil {
			return domain.Order{}, err
		}
		if !fn(&order) {
			return order, nil
		}
		err = c.orders.Save(ctx, order)
		if err == nil {
			order.Version++
			return order, nil
		}
		if !domain.IsVersionConflict(err) || attempt >= maxSaveAttempts {
			return domain.Order{}, err
		}
		select {
		case <-ctx.Done():
			return domain.Order{}, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}

// step оборачивает шаг оформления в спан и замер длительности.
func (c *Coordinator) step(ctx context.Context, step domain.CheckoutStep, fn func(context.Context) error) error {
	ctx, span := c.tracer.Start(ctx, "checkout."+string(step))
	defer span.End()

	started := time.Now()
	err := fn(ctx)
	c.metrics.StepDuration(string(step), time.Since(started))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrInvalidSize):
		return "invalid_size"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrProductNotFound):
		return "product_not_found"
	case domain.IsPromoRejection(err):
		return "promo_rejected"
	case errors.Is(err, domain.ErrBasketEmpty), errors.Is(err, domain.ErrRecipientRequired):
		return "invalid_request"
	case errors.Is(err, domain.ErrCheckoutRolledBack):
		return "rolled_back"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "timeout"
	default:
		return "internal"
	}
}
