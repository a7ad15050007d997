package httpapi

import (
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// orderView — заказ глазами покупателя: без комментариев администратора и служебных полей.
type orderView struct {
	Number        string        `json:"number"`
	Status        string        `json:"status"`
	Recipient     recipientBody `json:"recipient"`
	Details       []detailView  `json:"details"`
	PaymentType   string        `json:"payment_type,omitempty"`
	PaymentDate   *time.Time    `json:"payment_date,omitempty"`
	DeliveryType  string        `json:"delivery_type,omitempty"`
	PromoCode     string        `json:"promo_code,omitempty"`
	SubtotalMinor int64         `json:"subtotal_minor"`
	DiscountMinor int64         `json:"discount_minor"`
	TotalMinor    int64         `json:"total_minor"`
	CreatedAt     time.Time     `json:"created_at"`
}

type detailView struct {
	ProductID  int64  `json:"product_id"`
	Name       string `json:"name"`
	ImagePath  string `json:"image_path,omitempty"`
	PriceMinor int64  `json:"price_minor"`
	Size       int    `json:"size"`
}

func toOrderView(o domain.Order) orderView {
	details := make([]detailView, 0, len(o.Details))
	for _, d := range o.Details {
		details = append(details, detailView{
			ProductID:  d.ProductID,
			Name:       d.Name,
			ImagePath:  d.ImagePath,
			PriceMinor: d.PriceMinor,
			Size:       d.Size,
		})
	}
	return orderView{
		Number: o.Number,
		Status: string(o.Status),
		Recipient: recipientBody{
			Name:    o.Recipient.Name,
			Address: o.Recipient.Address,
			Phone:   o.Recipient.Phone,
		},
		Details:       details,
		PaymentType:   o.PaymentType,
		PaymentDate:   o.PaymentDate,
		DeliveryType:  o.DeliveryType,
		PromoCode:     o.PromoCode,
		SubtotalMinor: o.SubtotalMinor,
		DiscountMinor: o.DiscountMinor,
		TotalMinor:    o.TotalMinor,
		CreatedAt:     o.CreatedAt,
	}
}
