package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// DefaultIdempotencyTTL — срок хранения ключа, если вызывающий его не указал.
const DefaultIdempotencyTTL = 24 * time.Hour

// IdempotencyStatus — стадия оформления заказа, запущенного с Idempotency-Key.
type IdempotencyStatus string

const (
	// IdempotencyStatusProcessing: оформление запущено и ещё не завершилось.
	IdempotencyStatusProcessing IdempotencyStatus = "processing"
	// IdempotencyStatusDone: заказ оформлен, в записи лежит результат checkout.
	IdempotencyStatusDone IdempotencyStatus = "done"
	// IdempotencyStatusFailed: оформление отклонено, в записи лежит закодированная ошибка.
	IdempotencyStatusFailed IdempotencyStatus = "failed"
)

// Valid проверяет, что статус относится к поддерживаемым значениям.
func (s IdempotencyStatus) Valid() bool {
	switch s {
	case IdempotencyStatusProcessing, IdempotencyStatusDone, IdempotencyStatusFailed:
		return true
	default:
		return false
	}
}

// Terminal сообщает, что ответ зафиксирован и повтор можно воспроизвести.
func (s IdempotencyStatus) Terminal() bool {
	return s == IdempotencyStatusDone || s == IdempotencyStatusFailed
}

// IdempotencyRecord связывает ключ клиента с отпечатком тела оформления
// и сохранённым ответом.
type IdempotencyRecord struct {
	Key          string
	RequestHash  string
	ResponseBody []byte
	HTTPStatus   int
	Status       IdempotencyStatus
	TTLAt        time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewIdempotencyRecord нормализует ключ и отпечаток и возвращает запись
// в статусе processing. Нулевой ttlAt заменяется на now+DefaultIdempotencyTTL.
func NewIdempotencyRecord(key, requestHash string, ttlAt, now time.Time) (IdempotencyRecord, error) {
	key = strings.TrimSpace(key)
	requestHash = strings.TrimSpace(requestHash)
	if key == "" {
		return IdempotencyRecord{}, ErrIdempotencyKeyRequired
	}
	if requestHash == "" {
		return IdempotencyRecord{}, ErrIdempotencyRequestHashRequired
	}

	now = now.UTC()
	if ttlAt.IsZero() {
		ttlAt = now.Add(DefaultIdempotencyTTL)
	}
	return IdempotencyRecord{
		Key:         key,
		RequestHash: requestHash,
		Status:      IdempotencyStatusProcessing,
		TTLAt:       ttlAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Expired: срок хранения истёк к моменту now, ключ можно занять заново.
func (r IdempotencyRecord) Expired(now time.Time) bool {
	return !r.TTLAt.After(now)
}

// Conflict возвращает ошибку для повторного запроса с тем же ключом:
// ErrIdempotencyHashMismatch при другом теле, иначе ErrIdempotencyKeyAlreadyExists.
func (r IdempotencyRecord) Conflict(requestHash string) error {
	if r.RequestHash != strings.TrimSpace(requestHash) {
		return ErrIdempotencyHashMismatch
	}
	return ErrIdempotencyKeyAlreadyExists
}

// Complete фиксирует ответ. Допустимы только терминальные статусы.
func (r *IdempotencyRecord) Complete(status IdempotencyStatus, body []byte, httpStatus int, now time.Time) error {
	if !status.Terminal() {
		return ErrInvalidIdempotencyStatus
	}
	r.Status = status
	r.ResponseBody = append([]byte(nil), body...)
	r.HTTPStatus = httpStatus
	r.UpdatedAt = now.UTC()
	return nil
}

// RequestFingerprint — sha256 тела запроса с префиксом области, в hex.
// Область разделяет отпечатки разных операций с одинаковым телом.
func RequestFingerprint(scope string, body []byte) string {
	h := sha256.New()
	h.Write([]byte(scope))
	h.Write([]byte(":"))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}
