package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/service/checkout"
)

type recipientBody struct {
	Name    string `json:"name" validate:"max=200"`
	Address string `json:"address" validate:"max=500"`
	Phone   string `json:"phone" validate:"max=32"`
}

// orderForm — общие поля оформления для прямого запроса и для корзины.
// Количество и размеры проверяет оформление, чтобы ошибка указывала строку корзины.
type orderForm struct {
	CustomerID     string        `json:"customer_id" validate:"max=64"`
	Recipient      recipientBody `json:"recipient"`
	PromoCode      string        `json:"promo_code" validate:"max=20"`
	Comment        string        `json:"comment" validate:"max=1000"`
	PaymentType    string        `json:"payment_type" validate:"max=64"`
	DeliveryType   string        `json:"delivery_type" validate:"max=64"`
	Source         string        `json:"source" validate:"omitempty,oneof=site bot admin"`
	ExternalUserID string        `json:"external_user_id" validate:"max=64"`
}

type lineBody struct {
	ProductID int64 `json:"product_id" validate:"gt=0"`
	Size      int   `json:"size"`
	Quantity  int   `json:"quantity"`
}

type checkoutRequest struct {
	orderForm
	Lines []lineBody `json:"lines" validate:"dive"`
}

func (f orderForm) toRequest(key string) checkout.Request {
	return checkout.Request{
		IdempotencyKey: key,
		CustomerID:     f.CustomerID,
		Recipient: domain.Recipient{
			Name:    f.Recipient.Name,
			Address: f.Recipient.Address,
			Phone:   f.Recipient.Phone,
		},
		PromoCode:      f.PromoCode,
		Comment:        f.Comment,
		PaymentType:    f.PaymentType,
		DeliveryType:   f.DeliveryType,
		Source:         domain.OrderSource(f.Source),
		ExternalUserID: f.ExternalUserID,
	}
}

func (h *Handler) postCheckout(c *gin.Context) {
	var body checkoutRequest
	if !h.bind(c, &body) {
		return
	}

	req := body.toRequest(idempotencyKey(c))
	req.Lines = make([]domain.BasketLine, 0, len(body.Lines))
	for _, l := range body.Lines {
		req.Lines = append(req.Lines, domain.BasketLine{ProductID: l.ProductID, Size: l.Size, Quantity: l.Quantity})
	}

	res, err := h.checkout.Checkout(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	writeCheckoutResult(c, res)
}

func (h *Handler) postBasketCheckout(c *gin.Context) {
	var body orderForm
	if !h.bind(c, &body) {
		return
	}

	res, err := h.checkout.CheckoutBasket(c.Request.Context(), c.Param("session_id"), body.toRequest(idempotencyKey(c)))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	writeCheckoutResult(c, res)
}

func writeCheckoutResult(c *gin.Context, res checkout.Result) {
	c.Header("Location", "/api/v1/orders/"+res.OrderNumber)
	c.JSON(http.StatusCreated, res)
}
