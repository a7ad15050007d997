package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// errorBody — тело ответа при ошибке. Line задаётся для ошибок конкретной строки корзины.
type errorBody struct {
	Error     string            `json:"error"`
	Message   string            `json:"message,omitempty"`
	Line      *int              `json:"line,omitempty"`
	ProductID int64             `json:"product_id,omitempty"`
	Size      int               `json:"size,omitempty"`
	Requested int               `json:"requested,omitempty"`
	Available *int              `json:"available,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}

type errorMapping struct {
	target error
	status int
	code   string
}

// Порядок важен: первая подходящая запись определяет ответ.
var errorMappings = []errorMapping{
	{domain.ErrInsufficientStock, http.StatusConflict, "insufficient_stock"},
	{domain.ErrInvalidAmount, http.StatusBadRequest, "invalid_amount"},
	{domain.ErrInvalidSize, http.StatusBadRequest, "invalid_size"},
	{domain.ErrBasketEmpty, http.StatusBadRequest, "basket_empty"},
	{domain.ErrRecipientRequired, http.StatusBadRequest, "recipient_required"},
	{domain.ErrIdempotencyKeyRequired, http.StatusBadRequest, "idempotency_key_required"},
	{domain.ErrCodeInactive, http.StatusUnprocessableEntity, "promo_code_inactive"},
	{domain.ErrCodeExpired, http.StatusUnprocessableEntity, "promo_code_expired"},
	{domain.ErrCodeExhausted, http.StatusUnprocessableEntity, "promo_code_exhausted"},
	{domain.ErrPromoNotFound, http.StatusUnprocessableEntity, "promo_code_not_found"},
	{domain.ErrIdempotencyHashMismatch, http.StatusUnprocessableEntity, "idempotency_key_reused"},
	{domain.ErrProductNotFound, http.StatusNotFound, "product_not_found"},
	{domain.ErrOrderNotFound, http.StatusNotFound, "order_not_found"},
	{domain.ErrCheckoutInProgress, http.StatusConflict, "checkout_in_progress"},
	{context.Canceled, 499, "request_canceled"},
}

// writeError переводит ошибку домена в HTTP-ответ. Всё, что не распознано,
// отдаётся как 503 с Retry-After: это сбой хранилища или брокера.
func writeError(c *gin.Context, logger *log.Entry, err error) {
	body := errorBody{Error: "unavailable", Message: "service temporarily unavailable, retry later"}
	code := http.StatusServiceUnavailable

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			code = m.status
			body = errorBody{Error: m.code, Message: err.Error()}
			break
		}
	}

	var lineErr *domain.LineError
	if errors.As(err, &lineErr) {
		line := lineErr.Line
		body.Line = &line
	}
	var stockErr *domain.InsufficientStockError
	if errors.As(err, &stockErr) {
		available := stockErr.Available
		body.ProductID = stockErr.ProductID
		body.Size = stockErr.Size
		body.Requested = stockErr.Requested
		body.Available = &available
	}

	entry := logger.WithError(err).WithFields(log.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
		"status": code,
	})
	if code == http.StatusServiceUnavailable {
		entry.Error("request failed")
		c.Header("Retry-After", "1")
	} else {
		entry.Debug("request rejected")
	}
	c.AbortWithStatusJSON(code, body)
}

func writeValidationError(c *gin.Context, err error) {
	fields := map[string]string{}
	var ve validatorv10.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Namespace()] = fe.Tag()
		}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{
		Error:   "validation_failed",
		Message: err.Error(),
		Fields:  fields,
	})
}
