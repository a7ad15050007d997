package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// failurePayload — сохранённая ошибка оформления; по ней повтор с тем же ключом
// восстанавливает исходную ошибку.
type failurePayload struct {
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Line      *int   `json:"line,omitempty"`
	ProductID int64  `json:"product_id,omitempty"`
	Size      int    `json:"size,omitempty"`
	Requested int    `json:"requested,omitempty"`
	Available int    `json:"available,omitempty"`
}

var failureKinds = map[string]error{
	"invalid_amount":     domain.ErrInvalidAmount,
	"invalid_size":       domain.ErrInvalidSize,
	"product_not_found":  domain.ErrProductNotFound,
	"code_inactive":      domain.ErrCodeInactive,
	"code_expired":       domain.ErrCodeExpired,
	"code_exhausted":     domain.ErrCodeExhausted,
	"promo_not_found":    domain.ErrPromoNotFound,
	"basket_empty":       domain.ErrBasketEmpty,
	"recipient_required": domain.ErrRecipientRequired,
}

func (c *Coordinator) withIdempotency(ctx context.Context, req Request) (Result, error) {
	key := strings.TrimSpace(req.IdempotencyKey)
	hash, err := requestHash(req)
	if err != nil {
		return Result{}, fmt.Errorf("idempotency request hash: %w", err)
	}

	record, err := c.idem.CreateProcessing(ctx, key, hash, c.now().Add(c.cfg.IdempotencyTTL))
	if err != nil {
		return c.replay(err, record)
	}

	res, runErr := c.checkout(ctx, req)
	// Результат сохраняем даже если клиент уже ушёл.
	storeCtx := context.WithoutCancel(ctx)
	if runErr != nil {
		if transientFailure(runErr) {
			c.releaseKey(storeCtx, key, runErr)
		} else {
			c.storeFailure(storeCtx, key, runErr)
		}
		return Result{}, runErr
	}

	body, err := json.Marshal(res)
	if err == nil {
		err = c.idem.MarkDone(storeCtx, key, body, http.StatusCreated)
	}
	if err != nil {
		c.logger.WithError(err).WithField("idempotency_key", key).Warn("failed to store idempotent checkout result")
	}
	return res, nil
}

func (c *Coordinator) replay(createErr error, record domain.IdempotencyRecord) (Result, error) {
	switch {
	case errors.Is(createErr, domain.ErrIdempotencyHashMismatch):
		return Result{}, createErr
	case errors.Is(createErr, domain.ErrIdempotencyKeyAlreadyExists):
		switch record.Status {
		case domain.IdempotencyStatusDone:
			var res Result
			if err := json.Unmarshal(record.ResponseBody, &res); err != nil {
				return Result{}, fmt.Errorf("decode stored checkout result: %w", err)
			}
			return res, nil
		case domain.IdempotencyStatusProcessing:
			return Result{}, domain.ErrCheckoutInProgress
		case domain.IdempotencyStatusFailed:
			return Result{}, decodeFailure(record.ResponseBody)
		default:
			return Result{}, fmt.Errorf("unknown idempotency record status %q", record.Status)
		}
	default:
		return Result{}, fmt.Errorf("create idempotency record: %w", createErr)
	}
}

// releaseKey снимает ключ после сбоя инфраструктуры: повтор с тем же ключом
// выполнит оформление заново, а не вернёт сохранённую ошибку.
func (c *Coordinator) releaseKey(ctx context.Context, key string, runErr error) {
	if err := c.idem.Delete(ctx, key); err != nil && !errors.Is(err, domain.ErrIdempotencyKeyNotFound) {
		c.logger.WithError(err).WithFields(log.Fields{
			"idempotency_key": key,
			"cause":           runErr.Error(),
		}).Warn("failed to release idempotency key")
	}
}

func (c *Coordinator) storeFailure(ctx context.Context, key string, runErr error) {
	payload := encodeFailure(runErr)
	body, err := json.Marshal(payload)
	if err != nil {
		c.logger.WithError(err).WithField("idempotency_key", key).Warn("failed to encode checkout failure")
		body = nil
	}
	if err := c.idem.MarkFailed(ctx, key, body, failureStatus(runErr)); err != nil {
		c.logger.WithError(err).WithFields(log.Fields{
			"idempotency_key": key,
		}).Warn("failed to store checkout failure")
	}
}

func encodeFailure(err error) failurePayload {
	payload := failurePayload{Kind: "internal", Message: err.Error()}

	var lineErr *domain.LineError
	if errors.As(err, &lineErr) {
		line := lineErr.Line
		payload.Line = &line
	}

	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		payload.Kind = "insufficient_stock"
		payload.ProductID = insufficient.ProductID
		payload.Size = insufficient.Size
		payload.Requested = insufficient.Requested
		payload.Available = insufficient.Available
		return payload
	}
	for kind, sentinel := range failureKinds {
		if errors.Is(err, sentinel) {
			payload.Kind = kind
			break
		}
	}
	return payload
}

func decodeFailure(body []byte) error {
	var payload failurePayload
	if len(body) == 0 || json.Unmarshal(body, &payload) != nil {
		return errors.New("previous checkout with the same idempotency key failed")
	}

	var err error
	switch payload.Kind {
	case "insufficient_stock":
		err = &domain.InsufficientStockError{
			ProductID: payload.ProductID,
			Size:      payload.Size,
			Requested: payload.Requested,
			Available: payload.Available,
		}
	default:
		sentinel, ok := failureKinds[payload.Kind]
		if !ok {
			return fmt.Errorf("previous checkout with the same idempotency key failed: %s", payload.Message)
		}
		err = sentinel
	}
	if payload.Line != nil {
		return &domain.LineError{Line: *payload.Line, Err: err}
	}
	return err
}

// failureStatus — HTTP-код, с которым завершился запрос; хранится рядом с ответом.
func failureStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict
	case domain.IsPromoRejection(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidSize),
		errors.Is(err, domain.ErrBasketEmpty),
		errors.Is(err, domain.ErrRecipientRequired):
		return http.StatusBadRequest
	default:
		return http.StatusServiceUnavailable
	}
}

// transientFailure — ошибка, которую не запоминаем под ключом идемпотентности.
func transientFailure(err error) bool {
	return failureStatus(err) == http.StatusServiceUnavailable
}

// requestHash — отпечаток тела запроса без ключа идемпотентности.
// Для корзины сессии позиции не учитываются: после успеха корзина очищена.
func requestHash(req Request) (string, error) {
	if req.SessionID != "" {
		req.Lines = nil
	}
	data, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	return domain.RequestFingerprint("checkout", data), nil
}
