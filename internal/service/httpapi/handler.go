// Package httpapi — HTTP API витрины: остатки, промокоды, корзины и оформление заказа.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/service/checkout"
)

// IdempotencyHeader — заголовок с токеном отправки корзины.
const IdempotencyHeader = "Idempotency-Key"

// StockReader — чтение остатков и наличия.
type StockReader interface {
	CheckStock(ctx context.Context, productID int64, size int) (int, error)
	SizeQuantities(ctx context.Context, productID int64) (map[int]int, error)
	Availability(ctx context.Context, productID int64) (domain.AvailabilityStatus, error)
}

// PromoPreviewer считает скидку без списания использования.
type PromoPreviewer interface {
	Preview(ctx context.Context, code string, amountMinor int64) (int64, error)
}

// Checkouter оформляет заказ из переданных позиций или из корзины сессии.
type Checkouter interface {
	Checkout(ctx context.Context, req checkout.Request) (checkout.Result, error)
	CheckoutBasket(ctx context.Context, sessionID string, req checkout.Request) (checkout.Result, error)
}

// OrderReader отдаёт заказ по номеру.
type OrderReader interface {
	Get(ctx context.Context, number string) (domain.Order, error)
}

// Dependencies — зависимости обработчиков.
type Dependencies struct {
	Stock    StockReader
	Promos   PromoPreviewer
	Checkout Checkouter
	Baskets  domain.BasketStore
	Orders   OrderReader
	Logger   *log.Entry
}

// Handler обслуживает /api/v1.
type Handler struct {
	stock    StockReader
	promos   PromoPreviewer
	checkout Checkouter
	baskets  domain.BasketStore
	orders   OrderReader
	validate *validatorv10.Validate
	logger   *log.Entry
}

// NewHandler проверяет зависимости и создаёт Handler.
func NewHandler(deps Dependencies) (*Handler, error) {
	if deps.Stock == nil || deps.Promos == nil || deps.Checkout == nil || deps.Baskets == nil || deps.Orders == nil {
		return nil, errors.New("httpapi: stock, promos, checkout, baskets and orders are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.WithField("component", "http-api")
	}
	return &Handler{
		stock:    deps.Stock,
		promos:   deps.Promos,
		checkout: deps.Checkout,
		baskets:  deps.Baskets,
		orders:   deps.Orders,
		validate: validatorv10.New(),
		logger:   logger,
	}, nil
}

// NewRouter собирает gin.Engine с recovery, трассировкой и журналом запросов.
func NewRouter(h *Handler, serviceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(requestLogger(h.logger))
	h.Register(r)
	return r
}

// Register добавляет маршруты API в роутер.
func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api/v1")

	api.GET("/stock/:product_id/:size", h.getStock)
	api.GET("/products/:product_id/availability", h.getAvailability)
	api.POST("/promo/preview", h.previewPromo)
	api.POST("/checkout", h.postCheckout)
	api.GET("/orders/:number", h.getOrder)

	baskets := api.Group("/baskets/:session_id")
	baskets.GET("", h.getBasket)
	baskets.DELETE("", h.clearBasket)
	baskets.PUT("/lines", h.putBasketLine)
	baskets.DELETE("/lines/:product_id/:size", h.deleteBasketLine)
	baskets.POST("/checkout", h.postBasketCheckout)
}

func requestLogger(logger *log.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		logger.WithFields(log.Fields{
			"method":   c.Request.Method,
			"route":    c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(started).String(),
		}).Debug("http request")
	}
}

type stockResponse struct {
	ProductID int64 `json:"product_id"`
	Size      int   `json:"size"`
	Quantity  int   `json:"quantity"`
}

func (h *Handler) getStock(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	size, ok := sizeParam(c)
	if !ok {
		return
	}

	qty, err := h.stock.CheckStock(c.Request.Context(), productID, size)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stockResponse{ProductID: productID, Size: size, Quantity: qty})
}

type availabilityResponse struct {
	ProductID int64                     `json:"product_id"`
	Status    domain.AvailabilityStatus `json:"status"`
	Sizes     map[int]int               `json:"sizes"`
}

func (h *Handler) getAvailability(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	status, err := h.stock.Availability(ctx, productID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	sizes, err := h.stock.SizeQuantities(ctx, productID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, availabilityResponse{ProductID: productID, Status: status, Sizes: sizes})
}

type promoPreviewRequest struct {
	Code        string `json:"code" validate:"max=20"`
	AmountMinor int64  `json:"amount_minor" validate:"gte=0"`
}

type promoPreviewResponse struct {
	Code          string `json:"code"`
	AmountMinor   int64  `json:"amount_minor"`
	DiscountMinor int64  `json:"discount_minor"`
	TotalMinor    int64  `json:"total_minor"`
}

func (h *Handler) previewPromo(c *gin.Context) {
	var req promoPreviewRequest
	if !h.bind(c, &req) {
		return
	}

	discount, err := h.promos.Preview(c.Request.Context(), req.Code, req.AmountMinor)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, promoPreviewResponse{
		Code:          req.Code,
		AmountMinor:   req.AmountMinor,
		DiscountMinor: discount,
		TotalMinor:    req.AmountMinor - discount,
	})
}

func (h *Handler) getOrder(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toOrderView(order))
}

// bind разбирает JSON и прогоняет validate-теги. При ошибке ответ уже записан.
func (h *Handler) bind(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{Error: "invalid_request_body", Message: err.Error()})
		return false
	}
	if err := h.validate.Struct(out); err != nil {
		writeValidationError(c, err)
		return false
	}
	return true
}

func productIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{Error: "invalid_product_id", Message: "product_id must be a positive integer"})
		return 0, false
	}
	return id, true
}

func sizeParam(c *gin.Context) (int, bool) {
	size, err := strconv.Atoi(c.Param("size"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{Error: "invalid_size", Message: "size must be an integer"})
		return 0, false
	}
	return size, true
}

func idempotencyKey(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(IdempotencyHeader))
}
