package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount — отрицательное количество/цена или нулевое количество там, где нужно положительное.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidSize — размер не входит в набор продаваемых размеров товара.
	ErrInvalidSize = errors.New("size is not sellable for product")
	// ErrInsufficientStock — на складе меньше единиц, чем запрошено.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrStockReleased — единица заказа уже возвращена на склад, повторное списание запрещено.
	ErrStockReleased = errors.New("order stock already released")
	// ErrProductNotFound возвращается каталогом, если товара нет.
	ErrProductNotFound = errors.New("product not found")

	// ErrPromoNotFound — промокод не зарегистрирован.
	ErrPromoNotFound = errors.New("promo code not found")
	// ErrPromoAlreadyExists — промокод с таким кодом уже создан.
	ErrPromoAlreadyExists = errors.New("promo code already exists")
	// ErrInvalidPromo — некорректные параметры промокода при создании.
	ErrInvalidPromo = errors.New("invalid promo code")
	// ErrCodeInactive — промокод выключен администратором.
	ErrCodeInactive = errors.New("promo code is inactive")
	// ErrCodeExpired — срок действия промокода истёк.
	ErrCodeExpired = errors.New("promo code is expired")
	// ErrCodeExhausted — лимит использований исчерпан.
	ErrCodeExhausted = errors.New("promo code usage limit reached")

	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderAlreadyExists — номер заказа уже занят.
	ErrOrderAlreadyExists = errors.New("order already exists")
	// ErrOrderVersionConflict сигнализирует о конфликте версий при сохранении.
	ErrOrderVersionConflict = errors.New("order version conflict")
	// ErrInvalidStatus — неизвестный статус заказа.
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrInvalidQuery — некорректный фильтр, сортировка или пагинация.
	ErrInvalidQuery = errors.New("invalid order query")
	// ErrCommentRequired — пустой текст или автор комментария.
	ErrCommentRequired = errors.New("comment author and text are required")
	// ErrBasketEmpty — в корзине нет ни одной позиции.
	ErrBasketEmpty = errors.New("basket is empty")
	// ErrRecipientRequired — не заполнены данные получателя.
	ErrRecipientRequired = errors.New("recipient name is required")
	// ErrInvalidTimelineEvent — у события истории нет номера заказа или типа.
	ErrInvalidTimelineEvent = errors.New("timeline event requires order number and type")
	// ErrCheckoutInProgress — оформление с тем же ключом ещё выполняется.
	ErrCheckoutInProgress = errors.New("checkout is already in progress")
	// ErrCheckoutRolledBack — заказ откатили параллельно, пока шло оформление.
	ErrCheckoutRolledBack = errors.New("order was rolled back during checkout")
	// ErrRollbackNotAllowed — заказ ушёл из статуса created, автоматический откат запрещён.
	ErrRollbackNotAllowed = errors.New("order left created status, rollback requires manual review")

	// Ошибки хранилища idempotency-key.
	ErrIdempotencyKeyRequired         = errors.New("idempotency key is required")
	ErrIdempotencyRequestHashRequired = errors.New("idempotency request hash is required")
	ErrIdempotencyKeyAlreadyExists    = errors.New("idempotency key already exists")
	ErrIdempotencyHashMismatch        = errors.New("idempotency key reused with different request")
	ErrIdempotencyKeyNotFound         = errors.New("idempotency key not found")
	ErrInvalidIdempotencyStatus       = errors.New("invalid idempotency status")

	// ErrOutboxPublish — ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
	// ErrInvalidOutboxMessage — у события нет типа или агрегата.
	ErrInvalidOutboxMessage = errors.New("outbox message requires aggregate id and event type")
	// ErrOutboxMessageNotFound — отметка для неизвестного сообщения.
	ErrOutboxMessageNotFound = errors.New("outbox message not found")
)

// InsufficientStockError несёт запрошенное и фактически доступное количество.
// errors.Is(err, ErrInsufficientStock) возвращает true.
type InsufficientStockError struct {
	ProductID int64
	Size      int
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d size %d: requested %d, available %d",
		e.ProductID, e.Size, e.Requested, e.Available)
}

// Is позволяет сравнивать ошибку с ErrInsufficientStock.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// LineError привязывает ошибку к строке корзины (индекс с нуля).
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("basket line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// IsVersionConflict проверяет, является ли ошибка конфликтом версий.
func IsVersionConflict(err error) bool {
	return errors.Is(err, ErrOrderVersionConflict)
}

// IsIdempotencyConflict сообщает о повторном использовании ключа.
func IsIdempotencyConflict(err error) bool {
	return errors.Is(err, ErrIdempotencyKeyAlreadyExists) || errors.Is(err, ErrIdempotencyHashMismatch)
}

// IsPromoRejection возвращает true для бизнес-отказов промокода.
func IsPromoRejection(err error) bool {
	return errors.Is(err, ErrCodeInactive) ||
		errors.Is(err, ErrCodeExpired) ||
		errors.Is(err, ErrCodeExhausted) ||
		errors.Is(err, ErrPromoNotFound)
}
